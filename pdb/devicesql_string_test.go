package pdb

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func readString(t *testing.T, raw []byte) DeviceSQLString {
	t.Helper()
	r := storage.NewReader(bytes.NewReader(raw))
	s, err := ReadDeviceSQLString(r)
	require.NoError(t, err)
	return s
}

func writeString(t *testing.T, s DeviceSQLString) []byte {
	t.Helper()
	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, s.Write(w))
	return buf.Bytes()
}

func TestShortASCIIRoundTrip(t *testing.T) {
	raw := []byte{0x09, 0x66, 0x6F, 0x6F} // "foo"
	s := readString(t, raw)
	require.Equal(t, "foo", s.Value)
	require.Equal(t, raw, writeString(t, s))
}

func TestEmptyStringEncodesAsShortZero(t *testing.T) {
	s := NewDeviceSQLString("")
	require.Equal(t, []byte{0x03}, writeString(t, s))
}

func TestUCS2RoundTrip(t *testing.T) {
	raw := []byte{
		0x90, 0x14, 0x00, 0x00,
		0x49, 0x00, 0x20, 0x00, 0x64, 0x27, 0x20, 0x00,
		0x52, 0x00, 0x75, 0x00, 0x73, 0x00, 0x74, 0x00,
	}
	s := readString(t, raw)
	require.Equal(t, "I ❤ Rust", s.Value)
	require.Equal(t, raw, writeString(t, s))
}

func TestLongASCIIRoundTrip(t *testing.T) {
	content := strings.Repeat("lorem ipsum dolor sit amet ", 10)
	s := NewDeviceSQLString(content)
	raw := writeString(t, s)
	require.Equal(t, uint8(longFlagASCII), raw[0])

	decoded := readString(t, raw)
	require.Equal(t, content, decoded.Value)
}

func TestISRCEncoding(t *testing.T) {
	want := []byte{
		0x90, 0x12, 0x00, 0x00, 0x03,
		0x47, 0x42, 0x41, 0x59, 0x45, 0x36, 0x37, 0x30, 0x30, 0x31, 0x34, 0x39,
		0x00,
	}
	s := NewISRCString("GBAYE6700149")
	require.Equal(t, want, writeString(t, s))

	decoded := readString(t, want)
	require.Equal(t, "GBAYE6700149", decoded.Value)
}

func TestInvalidISRCRejected(t *testing.T) {
	s := NewISRCString("TOO-SHORT")
	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.Error(t, s.Write(w))
}

func TestShortASCIISelectedForShortContent(t *testing.T) {
	s := NewDeviceSQLString(strings.Repeat("a", maxShortStringLen))
	require.Equal(t, formShortASCII, s.form)
}

// growBuffer is a minimal io.WriteSeeker over a growable in-memory slice,
// used only by this package's own tests.
type growBuffer struct {
	buf []byte
	pos int64
}

func newGrowBuffer() *growBuffer { return &growBuffer{} }

func (b *growBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.buf)) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *growBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		b.pos = offset
	case 1:
		b.pos += offset
	case 2:
		b.pos = int64(len(b.buf)) + offset
	}
	if b.pos > int64(len(b.buf)) {
		grown := make([]byte, b.pos)
		copy(grown, b.buf)
		b.buf = grown
	}
	return b.pos, nil
}

func (b *growBuffer) Bytes() []byte { return b.buf }
