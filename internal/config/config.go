package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "PNGCTL_CONFIG"

// File is the on-disk TOML shape of the pngctl config.
type File struct {
	Output          string `toml:"output"`
	Compress        bool   `toml:"compress"`
	Format          string `toml:"format"`
	MaxPayloadBytes int    `toml:"max_payload_bytes"`
	MaxInputBytes   int64  `toml:"max_input_bytes"`
	FileMode        string `toml:"file_mode"`
}

// DefaultPath is ~/.config/pngctl/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pngctl", "config.toml"), nil
}

// ExpandPath resolves a leading ~ in path.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// Render encodes f as TOML.
func Render(f File) (string, error) {
	b, err := toml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(b), nil
}
