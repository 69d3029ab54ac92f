package stash

import (
	"testing"

	"github.com/danmuck/pngctl/internal/png"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	p, err := png.Decode(samplePNG(t))
	require.NoError(t, err)
	p.AppendChunk(png.NewChunk(mustType(t, "ruSt"), []byte("x")))

	rows := Summarize(p)
	require.Len(t, rows, 4)

	require.Equal(t, "IHDR", rows[0].Type)
	require.Equal(t, uint32(13), rows[0].Length)
	require.True(t, rows[0].Critical)
	require.True(t, rows[0].Public)
	require.False(t, rows[0].SafeToCopy)

	last := rows[3]
	require.Equal(t, 3, last.Index)
	require.Equal(t, "ruSt", last.Type)
	require.False(t, last.Critical)
	require.False(t, last.Public)
	require.True(t, last.ReservedOK)
	require.True(t, last.SafeToCopy)
	require.Equal(t, png.NewChunk(mustType(t, "ruSt"), []byte("x")).CRC(), last.CRC)
}
