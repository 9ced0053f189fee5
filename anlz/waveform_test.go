package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func TestWaveformPreviewColumnRoundTrip(t *testing.T) {
	c := WaveformPreviewColumn{Height: 31, Whiteness: 5}
	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, c.write(w))
	require.Equal(t, []byte{0xFD}, buf.Bytes())

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readWaveformPreviewColumn(r)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestTinyWaveformPreviewColumnRoundTrip(t *testing.T) {
	c := TinyWaveformPreviewColumn{Height: 9}
	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, c.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readTinyWaveformPreviewColumn(r)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestWaveformColorDetailColumnRoundTrip(t *testing.T) {
	c := WaveformColorDetailColumn{Red: 5, Green: 3, Blue: 7, Height: 17}
	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, c.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readWaveformColorDetailColumn(r)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestWaveformPreviewRoundTrip(t *testing.T) {
	data := []WaveformPreviewColumn{{Height: 10, Whiteness: 1}, {Height: 20, Whiteness: 2}}
	header := Header{Kind: KindWaveformPreview, Size: 12, TotalSize: 12 + uint32(len(data))}
	p := &WaveformPreview{Unknown: 0x00100000, Data: data}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, p.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readWaveformPreview(r, header)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestWaveformColorDetailRoundTrip(t *testing.T) {
	data := []WaveformColorDetailColumn{{Red: 1, Green: 2, Blue: 3, Height: 4}}
	header := Header{Kind: KindWaveformColorDetail, Size: 12, TotalSize: 12 + uint32(len(data))*2}
	d := &WaveformColorDetail{Unknown: 0, Data: data}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, d.write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readWaveformColorDetail(r, header)
	require.NoError(t, err)
	require.Equal(t, d, got)
}
