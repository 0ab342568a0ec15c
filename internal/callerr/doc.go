// Package callerr is the error taxonomy every fallible step reports
// through. Kinds map to exit classes at the top level.
package callerr
