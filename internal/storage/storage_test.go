package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type seekBuffer struct {
	*bytes.Reader
}

func newSeekBuffer(b []byte) *seekBuffer { return &seekBuffer{bytes.NewReader(b)} }

func TestAlignBy(t *testing.T) {
	tests := []struct {
		name      string
		alignment int
		offset    int
		want      int
	}{
		{"already aligned", 4, 8, 8},
		{"needs one byte", 4, 9, 12},
		{"needs three bytes", 4, 1, 4},
		{"alignment of one is a no-op", 1, 7, 7},
		{"alignment of two", 2, 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AlignBy(tt.alignment, tt.offset))
		})
	}
}

func TestReaderPeekDoesNotConsume(t *testing.T) {
	r := NewReader(newSeekBuffer([]byte{0x01, 0x02, 0x03, 0x04}))

	peeked, err := r.PeekBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, peeked)
	require.Equal(t, int64(0), r.Pos())

	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), b)
}

func TestReaderEndianness(t *testing.T) {
	r := NewReader(newSeekBuffer([]byte{0x01, 0x02, 0x03, 0x04}))

	le, err := r.ReadUint16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), le)

	be, err := r.ReadUint16BE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0304), be)
}

func TestExpectMagicMismatch(t *testing.T) {
	r := NewReader(newSeekBuffer([]byte{0xDE, 0xAD}))
	err := r.ExpectMagic([]byte{0xBE, 0xEF})
	require.Error(t, err)
}

func TestWriterRoundTrip(t *testing.T) {
	buf := &seekWriteBuffer{}
	w := NewWriter(buf)
	require.NoError(t, w.WriteUint32LE(0xCAFEBABE))
	require.NoError(t, w.WriteUint32BE(0xCAFEBABE))

	r := NewReader(newSeekBuffer(buf.Bytes()))
	le, err := r.ReadUint32LE()
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFEBABE), le)

	be, err := r.ReadUint32BE()
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFEBABE), be)
}

// seekWriteBuffer is a minimal io.WriteSeeker over an in-memory slice, used
// only by this package's own tests.
type seekWriteBuffer struct {
	buf []byte
	pos int64
}

func (b *seekWriteBuffer) Write(p []byte) (int, error) {
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

func (b *seekWriteBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		b.pos = offset
	case 1:
		b.pos += offset
	case 2:
		b.pos = int64(len(b.buf)) + offset
	}
	return b.pos, nil
}

func (b *seekWriteBuffer) Bytes() []byte { return b.buf }
