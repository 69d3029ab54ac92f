package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/pngctl/internal/config"
	"github.com/danmuck/pngctl/internal/payload"
	"github.com/danmuck/pngctl/internal/stash"
	"github.com/rs/zerolog/log"
)

// resolveConfigPath picks the --config flag, then $PNGCTL_CONFIG, then
// the default path. Only an explicitly named file is required to exist.
func resolveConfigPath(flagPath string) (string, error) {
	explicit := strings.TrimSpace(flagPath)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(config.EnvConfigPath))
	}
	if explicit != "" {
		return config.ExpandPath(explicit)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	return path, nil
}

func loadServiceConfig(path string) (stash.ServiceConfig, error) {
	cfg := stash.DefaultServiceConfig()

	var raw config.File
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return stash.ServiceConfig{}, fmt.Errorf("load pngctl config: %w", err)
	}

	if meta.IsDefined("output") {
		out := strings.TrimSpace(raw.Output)
		if out != "" {
			expanded, err := config.ExpandPath(out)
			if err != nil {
				return stash.ServiceConfig{}, fmt.Errorf("parse output: %w", err)
			}
			cfg.Output = expanded
		}
	}

	if meta.IsDefined("compress") {
		cfg.Compress = raw.Compress
	}

	if meta.IsDefined("format") {
		f, err := payload.ParseFormat(raw.Format)
		if err != nil {
			return stash.ServiceConfig{}, fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = f
	}

	if meta.IsDefined("max_payload_bytes") {
		if raw.MaxPayloadBytes <= 0 {
			return stash.ServiceConfig{}, fmt.Errorf("max_payload_bytes must be positive: %d", raw.MaxPayloadBytes)
		}
		cfg.MaxPayloadBytes = raw.MaxPayloadBytes
	}

	if meta.IsDefined("max_input_bytes") {
		if raw.MaxInputBytes <= 0 {
			return stash.ServiceConfig{}, fmt.Errorf("max_input_bytes must be positive: %d", raw.MaxInputBytes)
		}
		cfg.MaxInputBytes = raw.MaxInputBytes
	}

	if meta.IsDefined("file_mode") {
		mode, err := config.ParseFileMode(strings.TrimSpace(raw.FileMode))
		if err != nil {
			return stash.ServiceConfig{}, err
		}
		cfg.FileMode = mode
	}

	for _, key := range meta.Undecoded() {
		log.Warn().Str("path", path).Str("key", key.String()).Msg("unknown config key ignored")
	}

	return cfg, nil
}
