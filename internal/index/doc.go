// Package index builds the per-run catalogue of installed Proton versions
// from the steamapps common directory.
package index
