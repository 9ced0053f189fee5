package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/colorindex"
	"rekordcrate/internal/storage"
)

func TestCueListRoundTrip(t *testing.T) {
	list := &CueList{
		ListType:    HotCues,
		MemoryCount: 0,
		Cues: []Cue{
			{
				Header:     Header{Kind: KindCue, Size: 12, TotalSize: 12 + 36},
				HotCue:     1,
				Unknown1:   0x00100000,
				OrderFirst: 0xFFFF,
				OrderLast:  1,
				CueType:    CuePoint,
				Unknown3:   0x03E8,
				Time:       1000,
			},
		},
	}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, list.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readCueList(r)
	require.NoError(t, err)
	require.Equal(t, list, got)
}

func TestExtendedCueRoundTrip(t *testing.T) {
	cue := ExtendedCue{
		Header:          Header{Kind: KindExtendedCue, Size: 12, TotalSize: 12 + 52 + 8},
		HotCue:          1,
		CueType:         CueLoop,
		Unknown2:        0x03E8,
		Time:            2000,
		LoopTime:        4000,
		Color:           colorindex.Blue,
		LoopNumerator:   1,
		LoopDenominator: 1,
		Comment:         "drop",
		HotCueColorRGB:  [3]uint8{0x30, 0x5a, 0xff},
	}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, cue.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readExtendedCue(r)
	require.NoError(t, err)
	require.Equal(t, cue, got)
}
