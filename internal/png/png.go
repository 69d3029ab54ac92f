package png

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// SignatureLen is the size of the fixed file signature.
const SignatureLen = 8

// Signature opens every PNG datastream.
var Signature = [SignatureLen]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Png is the signature followed by an ordered chunk sequence. Order is
// kept as given; IHDR-first and IEND-last are not enforced.
type Png struct {
	chunks []Chunk
}

func FromChunks(chunks []Chunk) *Png {
	return &Png{chunks: append([]Chunk(nil), chunks...)}
}

// Decode parses a whole buffer. Any chunk error aborts the decode and no
// container is returned.
func Decode(b []byte) (*Png, error) {
	if len(b) < SignatureLen {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrBadSignature, len(b), SignatureLen)
	}
	if !bytes.Equal(b[:SignatureLen], Signature[:]) {
		return nil, fmt.Errorf("%w: % x", ErrBadSignature, b[:SignatureLen])
	}

	p := &Png{chunks: make([]Chunk, 0, 8)}
	for offset := SignatureLen; offset < len(b); {
		c, err := DecodeChunk(b[offset:])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), offset, err)
		}
		p.chunks = append(p.chunks, c)
		offset += c.EncodedLen()
	}
	return p, nil
}

// Read decodes everything r yields.
func Read(r io.Reader) (*Png, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Header returns the fixed signature.
func (p *Png) Header() [SignatureLen]byte {
	return Signature
}

// Chunks returns a copy of the chunk sequence.
func (p *Png) Chunks() []Chunk {
	return append([]Chunk(nil), p.chunks...)
}

func (p *Png) Len() int {
	return len(p.chunks)
}

// EncodedLen is the size of the serialized container.
func (p *Png) EncodedLen() int {
	n := SignatureLen
	for _, c := range p.chunks {
		n += c.EncodedLen()
	}
	return n
}

// Encode is the inverse of Decode.
func (p *Png) Encode() []byte {
	out := make([]byte, 0, p.EncodedLen())
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = c.AppendEncoded(out)
	}
	return out
}

// WriteTo writes the encoded container to w.
func (p *Png) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Encode())
	return int64(n), err
}

// AppendChunk adds c after the last chunk, including after an IEND
// already present. Callers that need IEND last must manage order.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type equals chunkType.
func (p *Png) ChunkByType(chunkType string) (Chunk, bool) {
	if i := p.index(chunkType); i >= 0 {
		return p.chunks[i], true
	}
	return Chunk{}, false
}

// RemoveFirstChunk removes and returns the first chunk whose type equals
// chunkType. The sequence is unchanged on error.
func (p *Png) RemoveFirstChunk(chunkType string) (Chunk, error) {
	i := p.index(chunkType)
	if i < 0 {
		return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, chunkType)
	}
	c := p.chunks[i]
	p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
	return c, nil
}

func (p *Png) index(chunkType string) int {
	for i, c := range p.chunks {
		if c.typ.matches(chunkType) {
			return i
		}
	}
	return -1
}

// String lists one chunk per line in sequence order.
func (p *Png) String() string {
	var b strings.Builder
	for _, c := range p.chunks {
		fmt.Fprintf(&b, "%s (%d bytes)\n", c.typ, len(c.data))
	}
	return b.String()
}
