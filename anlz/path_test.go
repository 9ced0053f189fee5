package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func TestPathRoundTrip(t *testing.T) {
	p := &Path{Value: "/PIONEER/USBANLZ/P001/track.mp3"}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, p.write(w))

	header := Header{Kind: KindPath, Size: 12, TotalSize: 12 + uint32(len(buf.Bytes())) - 4}

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readPath(r, header)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestVBRRoundTrip(t *testing.T) {
	v := &VBR{Unknown1: 0, Unknown2: []byte{1, 2, 3, 4}}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, v.write(w))

	header := Header{Kind: KindVBR, Size: 12, TotalSize: 12 + uint32(len(v.Unknown2))}

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readVBR(r, header)
	require.NoError(t, err)
	require.Equal(t, v, got)
}
