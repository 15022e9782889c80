// Package config loads the optional vsh.yaml file and merges it with
// environment variables and command-line flags into Settings.
package config
