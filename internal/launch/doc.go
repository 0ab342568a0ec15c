// Package launch prepares the compatibility-data directory and runs the
// target program under a resolved Proton installation, forwarding the
// child's exit status.
package launch
