package stash

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/pngctl/internal/payload"
	"github.com/danmuck/pngctl/internal/png"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrPayloadTooLarge = errors.New("stash: payload too large")
	ErrInputTooLarge   = errors.New("stash: input too large")
	// ErrAmbiguousPayload rejects an uncompressed message that would be
	// mistaken for a zstd frame when revealed.
	ErrAmbiguousPayload = errors.New("stash: uncompressed message starts with zstd magic")
)

// Service runs stash operations against byte buffers and files.
type Service struct {
	cfg   ServiceConfig
	codec *payload.Codec
	log   zerolog.Logger
}

// Stash service constructor using default config.
func NewService() (*Service, error) {
	return NewServiceWithConfig(DefaultServiceConfig())
}

// Stash service constructor using explicit config.
func NewServiceWithConfig(cfg ServiceConfig) (*Service, error) {
	cfg = cfg.WithDefaults()
	codec := &payload.Codec{
		Enabled:         cfg.Compress,
		MaxDecodedBytes: uint64(cfg.MaxPayloadBytes),
	}
	if err := codec.Init(); err != nil {
		return nil, fmt.Errorf("init payload codec: %w", err)
	}
	return &Service{
		cfg:   cfg,
		codec: codec,
		log:   log.Logger.With().Str("component", "stash").Logger(),
	}, nil
}

func (s *Service) Config() ServiceConfig {
	return s.cfg
}

func (s *Service) Close() error {
	return s.codec.Close()
}

// Hide appends a chunk carrying message to the PNG in src and returns the
// re-encoded file.
func (s *Service) Hide(src []byte, chunkType, message string) ([]byte, error) {
	typ, err := png.ParseChunkType(chunkType)
	if err != nil {
		return nil, err
	}
	if len(message) > s.cfg.MaxPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(message), s.cfg.MaxPayloadBytes)
	}
	if !s.cfg.Compress && s.codec.IsCompressed([]byte(message)) {
		return nil, fmt.Errorf("%w; enable compression to store it", ErrAmbiguousPayload)
	}
	if !typ.IsReservedBitValid() {
		s.log.Warn().Str("chunk", chunkType).Msg("reserved bit set; strict decoders will reject this chunk type")
	}
	if typ.IsCritical() {
		s.log.Warn().Str("chunk", chunkType).Msg("critical chunk type; image viewers may refuse the file")
	}

	p, err := png.Decode(src)
	if err != nil {
		return nil, err
	}
	data := s.codec.Compress([]byte(message))
	p.AppendChunk(png.NewChunk(typ, data))
	s.log.Debug().
		Str("chunk", chunkType).
		Int("message_bytes", len(message)).
		Int("stored_bytes", len(data)).
		Int("chunks", p.Len()).
		Msg("chunk appended")
	return p.Encode(), nil
}

// Reveal returns the payload of the first chunkType chunk in src,
// decompressing it when it carries the zstd magic.
func (s *Service) Reveal(src []byte, chunkType string, format payload.Format) (string, error) {
	p, err := png.Decode(src)
	if err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(chunkType)
	if !ok {
		return "", fmt.Errorf("%w: %q", png.ErrChunkNotFound, chunkType)
	}

	raw := c.Data()
	if !s.codec.IsCompressed(raw) {
		if format == payload.FormatText || format == "" {
			return c.DataAsString()
		}
		return payload.Render(raw, format)
	}

	plain, err := s.codec.Decompress(raw)
	if errors.Is(err, payload.ErrSizeExceeded) {
		return "", fmt.Errorf("%w: %q chunk: %w", ErrPayloadTooLarge, chunkType, err)
	}
	if err != nil {
		return "", fmt.Errorf("decompress %q chunk: %w", chunkType, err)
	}
	if len(plain) > s.cfg.MaxPayloadBytes {
		return "", fmt.Errorf("%w: %q chunk decodes to %d bytes, limit %d", ErrPayloadTooLarge, chunkType, len(plain), s.cfg.MaxPayloadBytes)
	}
	s.log.Debug().Str("chunk", chunkType).Int("stored_bytes", len(raw)).Int("plain_bytes", len(plain)).Msg("payload decompressed")
	return payload.Render(plain, format)
}

// Strip removes the first chunkType chunk from src and returns the
// re-encoded file with the removed chunk.
func (s *Service) Strip(src []byte, chunkType string) ([]byte, png.Chunk, error) {
	p, err := png.Decode(src)
	if err != nil {
		return nil, png.Chunk{}, err
	}
	removed, err := p.RemoveFirstChunk(chunkType)
	if err != nil {
		return nil, png.Chunk{}, err
	}
	s.log.Debug().Str("chunk", chunkType).Uint32("length", removed.Length()).Int("chunks", p.Len()).Msg("chunk removed")
	return p.Encode(), removed, nil
}

// EncodeFile hides message in the PNG at path and writes the result to
// output, or to the configured output when empty. It returns the path
// written.
func (s *Service) EncodeFile(path, chunkType, message, output string) (string, error) {
	src, err := s.readInput(path)
	if err != nil {
		return "", err
	}
	out, err := s.Hide(src, chunkType, message)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return s.writeOutput(output, out)
}

// DecodeFile reveals the chunkType payload of the PNG at path.
func (s *Service) DecodeFile(path, chunkType string, format payload.Format) (string, error) {
	src, err := s.readInput(path)
	if err != nil {
		return "", err
	}
	msg, err := s.Reveal(src, chunkType, format)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return msg, nil
}

// RemoveFile strips the first chunkType chunk of the PNG at path and
// writes the result to output, or to the configured output when empty.
func (s *Service) RemoveFile(path, chunkType, output string) (string, png.Chunk, error) {
	src, err := s.readInput(path)
	if err != nil {
		return "", png.Chunk{}, err
	}
	out, removed, err := s.Strip(src, chunkType)
	if err != nil {
		return "", png.Chunk{}, fmt.Errorf("remove from %s: %w", path, err)
	}
	written, err := s.writeOutput(output, out)
	if err != nil {
		return "", png.Chunk{}, err
	}
	return written, removed, nil
}

// LoadFile decodes the PNG at path.
func (s *Service) LoadFile(path string) (*png.Png, error) {
	src, err := s.readInput(path)
	if err != nil {
		return nil, err
	}
	p, err := png.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.log.Debug().Str("path", path).Int("chunks", p.Len()).Msg("png loaded")
	return p, nil
}

func (s *Service) readInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > s.cfg.MaxInputBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInputTooLarge, path, info.Size(), s.cfg.MaxInputBytes)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("path", path).Int("bytes", len(b)).Msg("input read")
	return b, nil
}

func (s *Service) writeOutput(output string, b []byte) (string, error) {
	if output == "" {
		output = s.cfg.Output
	}
	if err := os.WriteFile(output, b, s.cfg.FileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", output, err)
	}
	s.log.Info().Str("path", output).Int("bytes", len(b)).Msg("png written")
	return output, nil
}
