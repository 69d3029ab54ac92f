// Package stash hides, reveals and strips payload chunks in PNG files.
//
// It is the file-facing layer over internal/png: it reads inputs under
// configured limits, applies optional payload compression and writes
// results to an explicit output path.
package stash
