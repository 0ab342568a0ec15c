// Package resolve decides which Proton installation a run uses: the
// compiled-in default, an exact requested version, or a caller-supplied
// custom directory.
package resolve
