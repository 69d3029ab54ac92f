package payload

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danmuck/pngctl/internal/png"
	"github.com/mr-tron/base58"
)

var (
	ErrUnknownFormat = errors.New("payload: unknown output format")
	// ErrNotText matches png.ErrInvalidText.
	ErrNotText = fmt.Errorf("payload: %w", png.ErrInvalidText)
)

// Format selects how a revealed payload is rendered.
type Format string

const (
	FormatText   Format = "text"
	FormatHex    Format = "hex"
	FormatBase58 Format = "base58"
)

// ParseFormat accepts the names above, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FormatText, FormatHex, FormatBase58:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Render formats data for display.
func Render(data []byte, f Format) (string, error) {
	switch f {
	case FormatText, "":
		if !utf8.Valid(data) {
			return "", ErrNotText
		}
		return string(data), nil
	case FormatHex:
		return hex.EncodeToString(data), nil
	case FormatBase58:
		return base58.Encode(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
