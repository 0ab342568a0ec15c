// Package commands defines the proton-call CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - run     Launch a program under a resolved Proton installation
//   - list    Print the installed versions found in the common directory
//   - config  Print the effective configuration
//
// # Implementation
//
// The root command loads the config file and sets up logging before any
// subcommand runs, so handlers share one app context. The installations
// index is built on first use; custom-mode runs never touch it.
package commands
