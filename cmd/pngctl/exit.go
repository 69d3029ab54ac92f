package main

import (
	"errors"

	"github.com/danmuck/pngctl/internal/png"
)

// Process exit codes.
const (
	_ = iota
	exitInternal
	exitMalformedInput
	exitChunkNotFound
	exitMalformedTag
	exitInvalidText
)

// exitCode maps an error to the process exit status.
//
//	0 if nil
//	1 if untyped
//	2 if the input is not a well-formed PNG container
//	3 if [png.ErrChunkNotFound]
//	4 if [png.ErrMalformedTag]
//	5 if [png.ErrInvalidText]
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, png.ErrBadSignature),
		errors.Is(err, png.ErrTruncated),
		errors.Is(err, png.ErrChecksumMismatch):
		return exitMalformedInput
	case errors.Is(err, png.ErrChunkNotFound):
		return exitChunkNotFound
	case errors.Is(err, png.ErrMalformedTag):
		return exitMalformedTag
	case errors.Is(err, png.ErrInvalidText):
		return exitInvalidText
	default:
		return exitInternal
	}
}
