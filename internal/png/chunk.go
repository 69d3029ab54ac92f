package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthFieldLen = 4
	crcFieldLen    = 4

	// ChunkOverhead is the number of bytes a chunk adds around its data.
	ChunkOverhead = lengthFieldLen + ChunkTypeLen + crcFieldLen
)

// Chunk is one length-prefixed, checksummed record. It is immutable:
// the constructor copies data and Data returns a copy.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk and computes its CRC.
func NewChunk(typ ChunkType, data []byte) Chunk {
	data = bytes.Clone(data)
	if data == nil {
		data = []byte{}
	}
	return Chunk{typ: typ, data: data, crc: checksum(typ, data)}
}

// DecodeChunk reads one chunk from the head of b. Bytes past the chunk
// are ignored.
func DecodeChunk(b []byte) (Chunk, error) {
	off := 0
	if len(b) < lengthFieldLen {
		return Chunk{}, &TruncatedError{Field: "length", Need: lengthFieldLen, Have: len(b)}
	}
	n := binary.BigEndian.Uint32(b[off:])
	off += lengthFieldLen

	if len(b)-off < ChunkTypeLen {
		return Chunk{}, &TruncatedError{Field: "type", Need: ChunkTypeLen, Have: len(b) - off}
	}
	var typ ChunkType
	copy(typ[:], b[off:off+ChunkTypeLen])
	off += ChunkTypeLen

	if uint64(len(b)-off) < uint64(n) {
		return Chunk{}, &TruncatedError{Field: "data", Need: uint64(n), Have: len(b) - off}
	}
	data := make([]byte, n)
	copy(data, b[off:off+int(n)])
	off += int(n)

	if len(b)-off < crcFieldLen {
		return Chunk{}, &TruncatedError{Field: "crc", Need: crcFieldLen, Have: len(b) - off}
	}
	stored := binary.BigEndian.Uint32(b[off:])

	if computed := checksum(typ, data); computed != stored {
		return Chunk{}, &ChecksumError{Type: typ, Stored: stored, Computed: computed}
	}
	return Chunk{typ: typ, data: data, crc: stored}, nil
}

// Length is the declared data length.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

func (c Chunk) Type() ChunkType {
	return c.typ
}

func (c Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

func (c Chunk) CRC() uint32 {
	return c.crc
}

// EncodedLen is the size of the chunk on the wire.
func (c Chunk) EncodedLen() int {
	return ChunkOverhead + len(c.data)
}

// DataAsString returns the data as text if it is valid UTF-8.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %q chunk", ErrInvalidText, c.typ.String())
	}
	return string(c.data), nil
}

// Encode returns length ++ type ++ data ++ crc.
func (c Chunk) Encode() []byte {
	return c.AppendEncoded(make([]byte, 0, c.EncodedLen()))
}

// AppendEncoded appends the wire form of c to dst.
func (c Chunk) AppendEncoded(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Length())
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s: %d[bytes], crc %08x", c.typ, len(c.data), c.crc)
}

func checksum(typ ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
