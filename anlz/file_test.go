package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

// buildSection serializes a header plus an already-length-correct content
// writer into a standalone section's bytes.
func buildSection(t *testing.T, header Header, write func(w *storage.Writer) error) []byte {
	t.Helper()
	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, header.Write(w))
	require.NoError(t, write(w))
	return buf.Bytes()
}

func TestFileRoundTripWithUnknownSection(t *testing.T) {
	grid := &BeatGrid{Unknown2: 0x00800000, Beats: []Beat{{BeatNumber: 1, Tempo: 12000, Time: 0}}}
	gridBody := &seekBuffer{}
	require.NoError(t, grid.write(storage.NewWriter(gridBody)))
	gridHeader := Header{Kind: KindBeatGrid, Size: 12, TotalSize: 12 + uint32(len(gridBody.Bytes()))}
	gridSection := buildSection(t, gridHeader, grid.write)

	unknownHeader := Header{Kind: NewUnknownKind(kindCode("PWV6")), Size: 12, TotalSize: 12 + 4}
	unknownSection := buildSection(t, unknownHeader, func(w *storage.Writer) error {
		return w.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	})

	content := append(append([]byte{}, gridSection...), unknownSection...)
	outerHeader := Header{Kind: KindFile, Size: 12, TotalSize: 12 + uint32(len(content))}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, outerHeader.Write(w))
	require.NoError(t, w.WriteBytes(content))

	f, err := Open(&seekBuffer{buf: buf.Bytes()})
	require.NoError(t, err)
	require.Len(t, f.Sections, 2)

	gotGrid, ok := f.Sections[0].Content.(*BeatGrid)
	require.True(t, ok)
	require.Equal(t, grid, gotGrid)

	gotUnknown, ok := f.Sections[1].Content.(*Unknown)
	require.True(t, ok)
	require.True(t, gotUnknown.Kind.IsUnknown())
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, gotUnknown.ContentData)

	out := &seekBuffer{}
	require.NoError(t, f.Write(out))
	require.Equal(t, buf.Bytes(), out.Bytes())
}
