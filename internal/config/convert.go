package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/danmuck/pngctl/internal/stash"
)

func FromService(cfg stash.ServiceConfig) File {
	return File{
		Output:          cfg.Output,
		Compress:        cfg.Compress,
		Format:          string(cfg.Format),
		MaxPayloadBytes: cfg.MaxPayloadBytes,
		MaxInputBytes:   cfg.MaxInputBytes,
		FileMode:        fmt.Sprintf("%04o", uint32(cfg.FileMode.Perm())),
	}
}

// ParseFileMode parses an octal permission string such as "0644".
func ParseFileMode(raw string) (os.FileMode, error) {
	v, err := strconv.ParseUint(raw, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parse file_mode %q: %w", raw, err)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("parse file_mode %q: not a permission mode", raw)
	}
	return os.FileMode(v), nil
}
