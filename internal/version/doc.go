// Package version parses, formats, and orders Proton version identifiers.
// Parsing operates on single tokens so directory names are split by the
// callers that own the filesystem layout.
package version
