package stash

import "github.com/danmuck/pngctl/internal/png"

// ChunkSummary is one row of a chunk listing.
type ChunkSummary struct {
	Index      int
	Type       string
	Length     uint32
	CRC        uint32
	Critical   bool
	Public     bool
	ReservedOK bool
	SafeToCopy bool
}

// Summarize describes every chunk of p in sequence order.
func Summarize(p *png.Png) []ChunkSummary {
	chunks := p.Chunks()
	out := make([]ChunkSummary, 0, len(chunks))
	for i, c := range chunks {
		typ := c.Type()
		out = append(out, ChunkSummary{
			Index:      i,
			Type:       typ.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   typ.IsCritical(),
			Public:     typ.IsPublic(),
			ReservedOK: typ.IsReservedBitValid(),
			SafeToCopy: typ.IsSafeToCopy(),
		})
	}
	return out
}
