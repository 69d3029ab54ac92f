package png

import (
	"fmt"
	"strings"
)

// ChunkTypeLen is the size of a chunk type tag on the wire.
const ChunkTypeLen = 4

// Property bit of each type byte (bit 5, the ASCII case bit).
const propertyBit byte = 1 << 5

// Byte index of each property within the tag.
const (
	ancillaryByte = 0
	privateByte   = 1
	reservedByte  = 2
	safeCopyByte  = 3
)

// ChunkType is the 4-byte chunk type tag. Comparison with == is byte-wise.
type ChunkType [ChunkTypeLen]byte

// ChunkTypeFromBytes stores b as-is. Letter validity is reported by
// IsValid, not enforced here.
func ChunkTypeFromBytes(b [ChunkTypeLen]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType builds a tag from exactly four ASCII letters.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != ChunkTypeLen {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes, want %d", ErrMalformedTag, s, len(s), ChunkTypeLen)
	}
	var b [ChunkTypeLen]byte
	copy(b[:], s)
	for i, c := range b {
		if !isLetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %q byte %d (0x%02x) is not an ascii letter", ErrMalformedTag, s, i, c)
		}
	}
	return ChunkTypeFromBytes(b), nil
}

func (t ChunkType) Bytes() [ChunkTypeLen]byte {
	return t
}

// IsCritical reports whether decoders must understand the chunk.
func (t ChunkType) IsCritical() bool {
	return t[ancillaryByte]&propertyBit == 0
}

func (t ChunkType) IsPublic() bool {
	return t[privateByte]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit is clear, as the
// current PNG revision requires.
func (t ChunkType) IsReservedBitValid() bool {
	return t[reservedByte]&propertyBit == 0
}

func (t ChunkType) IsSafeToCopy() bool {
	return t[safeCopyByte]&propertyBit != 0
}

// IsValid reports whether all bytes are ASCII letters and the reserved
// bit is clear.
func (t ChunkType) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// String renders the tag as text. Invalid UTF-8 is replaced with U+FFFD.
func (t ChunkType) String() string {
	return strings.ToValidUTF8(string(t[:]), "\uFFFD")
}

func (t ChunkType) matches(s string) bool {
	return len(s) == ChunkTypeLen && string(t[:]) == s
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
