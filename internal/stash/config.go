package stash

import (
	"os"

	"github.com/danmuck/pngctl/internal/payload"
)

// ServiceConfig configures stash operations.
type ServiceConfig struct {
	Output          string
	Compress        bool
	Format          payload.Format
	MaxPayloadBytes int
	MaxInputBytes   int64
	FileMode        os.FileMode
}

// Stash defaults for standalone CLI use.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Output:          "result.png",
		Compress:        false,
		Format:          payload.FormatText,
		MaxPayloadBytes: 8 * 1024 * 1024,
		MaxInputBytes:   64 * 1024 * 1024,
		FileMode:        0o644,
	}
}

// WithDefaults fills zero fields from DefaultServiceConfig.
func (c ServiceConfig) WithDefaults() ServiceConfig {
	def := DefaultServiceConfig()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.MaxPayloadBytes <= 0 {
		c.MaxPayloadBytes = def.MaxPayloadBytes
	}
	if c.MaxInputBytes <= 0 {
		c.MaxInputBytes = def.MaxInputBytes
	}
	if c.FileMode == 0 {
		c.FileMode = def.FileMode
	}
	return c
}
