package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Kind: KindBeatGrid, Size: 12, TotalSize: 44}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, h.Write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := ReadHeader(r)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, uint32(0), got.RemainingSize())
	require.Equal(t, uint32(32), got.ContentSize())
}

func TestUnknownContentKindRoundTrip(t *testing.T) {
	h := Header{Kind: NewUnknownKind(kindCode("XXXX")), Size: 12, TotalSize: 12}
	require.True(t, h.Kind.IsUnknown())
	require.Equal(t, "XXXX", h.Kind.String())

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, h.Write(w))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := ReadHeader(r)
	require.NoError(t, err)
	require.True(t, got.Kind.IsUnknown())
	require.Equal(t, h.Kind.Code(), got.Kind.Code())
}
