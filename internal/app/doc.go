// Package app wires application dependencies for the CLI.
//
// It loads the configuration and exposes the installation index, built on
// first use, for commands to share.
package app
