package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func testChunkType(t *testing.T, s string) ChunkType {
	t.Helper()
	ct, err := ParseChunkType(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ct
}

// rawChunk builds wire bytes without going through NewChunk.
func rawChunk(typ string, data []byte, crc uint32) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	out = append(out, typ...)
	out = append(out, data...)
	return binary.BigEndian.AppendUint32(out, crc)
}

func TestNewChunkComputesKnownCRC(t *testing.T) {
	c := NewChunk(testChunkType(t, "RuSt"), []byte("This is where your secret message will be!"))
	if c.Length() != 42 {
		t.Fatalf("unexpected length: %d", c.Length())
	}
	if c.CRC() != 2882656334 {
		t.Fatalf("unexpected crc: %d", c.CRC())
	}
	if c.EncodedLen() != 54 || len(c.Encode()) != 54 {
		t.Fatalf("unexpected encoded length: %d/%d", c.EncodedLen(), len(c.Encode()))
	}
}

func TestNewChunkIEND(t *testing.T) {
	c := NewChunk(testChunkType(t, "IEND"), nil)
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xae, 0x42, 0x60, 0x82}
	if !bytes.Equal(c.Encode(), want) {
		t.Fatalf("unexpected IEND bytes: % x", c.Encode())
	}
}

func TestChunkRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("hello"),
		bytes.Repeat([]byte{0x00, 0xff}, 4096),
	}
	for _, data := range payloads {
		in := NewChunk(testChunkType(t, "ruSt"), data)
		out, err := DecodeChunk(in.Encode())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Type() != in.Type() || out.CRC() != in.CRC() || out.Length() != in.Length() {
			t.Fatalf("chunk mismatch: got=%v want=%v", out, in)
		}
		if !bytes.Equal(out.Data(), in.Data()) {
			t.Fatalf("data mismatch")
		}
	}
}

func TestDecodeChunkIgnoresTrailingBytes(t *testing.T) {
	in := NewChunk(testChunkType(t, "RuSt"), []byte("abc"))
	buf := append(in.Encode(), 1, 2, 3, 4, 5)
	out, err := DecodeChunk(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out.Data()) != "abc" {
		t.Fatalf("unexpected data: %q", out.Data())
	}
}

func TestDecodeChunkTruncatedFields(t *testing.T) {
	full := NewChunk(testChunkType(t, "RuSt"), []byte("payload")).Encode()
	cases := []struct {
		n     int
		field string
	}{
		{n: 0, field: "length"},
		{n: 3, field: "length"},
		{n: 6, field: "type"},
		{n: 10, field: "data"},
		{n: len(full) - 1, field: "crc"},
	}
	for _, tc := range cases {
		_, err := DecodeChunk(full[:tc.n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("n=%d: expected ErrTruncated, got %v", tc.n, err)
		}
		var te *TruncatedError
		if !errors.As(err, &te) || te.Field != tc.field {
			t.Fatalf("n=%d: expected truncated %s, got %v", tc.n, tc.field, err)
		}
	}
}

func TestDecodeChunkHugeDeclaredLength(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff, 'R', 'u', 'S', 't', 1, 2, 3}
	if _, err := DecodeChunk(buf); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeChunkBadCRC(t *testing.T) {
	buf := rawChunk("RuSt", []byte("This is where your secret message will be!"), 2882656333)
	_, err := DecodeChunk(buf)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ChecksumError, got %T", err)
	}
	if ce.Stored != 2882656333 || ce.Computed != 2882656334 {
		t.Fatalf("unexpected checksums: %+v", ce)
	}
}

func TestDecodeChunkSingleBitFlips(t *testing.T) {
	full := NewChunk(testChunkType(t, "RuSt"), []byte("flip me")).Encode()
	// data starts at 8, crc covers the last 4 bytes
	for i := 8; i < len(full); i++ {
		for bit := 0; bit < 8; bit++ {
			buf := bytes.Clone(full)
			buf[i] ^= 1 << bit
			if _, err := DecodeChunk(buf); !errors.Is(err, ErrChecksumMismatch) {
				t.Fatalf("byte %d bit %d: expected ErrChecksumMismatch, got %v", i, bit, err)
			}
		}
	}
}

func TestChunkDataAsString(t *testing.T) {
	c := NewChunk(testChunkType(t, "RuSt"), []byte("secret"))
	s, err := c.DataAsString()
	if err != nil {
		t.Fatalf("data as string: %v", err)
	}
	if s != "secret" {
		t.Fatalf("unexpected text: %q", s)
	}

	bad := NewChunk(testChunkType(t, "RuSt"), []byte{0xff, 0xfe, 0xfd})
	if _, err := bad.DataAsString(); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
}

func TestChunkIsImmutable(t *testing.T) {
	data := []byte("abc")
	c := NewChunk(testChunkType(t, "RuSt"), data)
	data[0] = 'x'
	got := c.Data()
	got[1] = 'y'
	if string(c.Data()) != "abc" {
		t.Fatalf("chunk data mutated: %q", c.Data())
	}
	if _, err := DecodeChunk(c.Encode()); err != nil {
		t.Fatalf("crc no longer matches: %v", err)
	}
}
