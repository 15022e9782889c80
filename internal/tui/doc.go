// Package tui renders a shell session in the terminal.
//
// Interactive terminals get the bubbletea Shell model: a styled prompt with
// history navigation and tab completion. Everything else (pipes, CI, dumb
// terminals) gets RunPlain, a line-at-a-time loop over the same Session.
package tui
