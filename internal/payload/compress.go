package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// PrefixLength is the length of the zstd frame magic.
const PrefixLength = 4

// zstdFrameMagic opens every zstd frame.
var zstdFrameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ErrSizeExceeded is returned when a frame would decode past MaxDecodedBytes.
var ErrSizeExceeded = errors.New("payload: decoded size exceeds limit")

// Codec compresses hidden payloads. Decompression is always available so
// compressed payloads can be read regardless of Enabled.
type Codec struct {
	Enabled bool
	// MaxDecodedBytes caps decompressed output. Zero keeps the zstd default.
	MaxDecodedBytes uint64

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Init initializes compression routines.
func (c *Codec) Init() error {
	var err error

	if c.Enabled {
		c.encoder, err = zstd.NewWriter(nil)
		if err != nil {
			return err
		}
	}

	var opts []zstd.DOption
	if c.MaxDecodedBytes > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(c.MaxDecodedBytes))
	}
	c.decoder, err = zstd.NewReader(nil, opts...)
	return err
}

// IsCompressed checks whether data starts with the zstd magic.
func (c *Codec) IsCompressed(data []byte) bool {
	return len(data) >= PrefixLength && bytes.Equal(data[:PrefixLength], zstdFrameMagic)
}

// Compress returns data compressed when enabled and untouched otherwise.
func (c *Codec) Compress(data []byte) []byte {
	if c == nil || !c.Enabled {
		return data
	}
	maxSize := c.encoder.MaxEncodedSize(len(data))
	return c.encoder.EncodeAll(data, make([]byte, 0, maxSize))
}

// Decompress decompresses data if it starts with the magic and returns
// data untouched otherwise.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if !c.IsCompressed(data) {
		return data, nil
	}
	out, err := c.decoder.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, fmt.Errorf("%w (%d bytes): %w", ErrSizeExceeded, c.MaxDecodedBytes, err)
	}
	return out, err
}

// Close releases the encoder and decoder.
func (c *Codec) Close() error {
	var err error
	if c.encoder != nil {
		err = c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
	return err
}
