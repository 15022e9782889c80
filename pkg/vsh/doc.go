// Package vsh holds the public contract shared by the vsh packages:
// sentinel errors, exit codes, path constants and the Logger interface.
package vsh
