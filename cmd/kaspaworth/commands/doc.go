// Package commands defines the kaspaworth CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve   Run the widget over HTTP with a periodic price refresh
//   - show    Run one price cycle and print the widget to the terminal
//
// The root command loads configuration before any subcommand runs. Each
// subcommand then builds its own widget from it with newApp.
package commands
