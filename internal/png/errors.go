package png

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTag     = errors.New("png: malformed chunk type")
	ErrTruncated        = errors.New("png: truncated chunk")
	ErrChecksumMismatch = errors.New("png: checksum mismatch")
	ErrBadSignature     = errors.New("png: bad signature")
	ErrChunkNotFound    = errors.New("png: chunk not found")
	ErrInvalidText      = errors.New("png: chunk data is not valid utf-8")
)

// TruncatedError reports which chunk field ran past the end of the input.
type TruncatedError struct {
	Field string
	Need  uint64
	Have  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("png: truncated chunk %s: need %d bytes, have %d", e.Field, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// ChecksumError carries the stored and recomputed CRC of a corrupted chunk.
type ChecksumError struct {
	Type     ChunkType
	Stored   uint32
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("png: checksum mismatch in %q chunk: stored %08x, computed %08x", e.Type.String(), e.Stored, e.Computed)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }
