package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func TestBeatGridRoundTrip(t *testing.T) {
	grid := &BeatGrid{
		Unknown1: 0,
		Unknown2: 0x00800000,
		Beats: []Beat{
			{BeatNumber: 1, Tempo: 12000, Time: 0},
			{BeatNumber: 2, Tempo: 12000, Time: 500},
		},
	}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, grid.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readBeatGrid(r)
	require.NoError(t, err)
	require.Equal(t, grid, got)
}
