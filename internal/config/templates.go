package config

import (
	"fmt"
	"os"
	"path/filepath"
)

func Template() string {
	return template
}

// WriteTemplate writes the commented default config to path, creating
// parent directories.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# pngctl configuration

# Default path for files written by encode and remove.
output = "result.png"

# Compress hidden payloads with zstd. decode detects compressed payloads
# regardless of this setting.
compress = false

# Output format for decode: text, hex or base58.
format = "text"

# Largest message encode will hide.
max_payload_bytes = 8388608

# Largest PNG file any command will read.
max_input_bytes = 67108864

# Permissions of written files.
file_mode = "0644"
`
