package pdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func TestOffsetArrayContainerNearOffsets(t *testing.T) {
	// Two 8-bit offsets pointing immediately after the 2-byte offset
	// table: "a" at offset 2, "bb" at offset 4.
	raw := []byte{
		0x02, 0x04, // offsets
		0x05, 0x61, // short string "a"
		0x07, 0x62, 0x62, // short string "bb"
	}
	r := storage.NewReader(bytes.NewReader(raw))
	c, err := ReadOffsetArrayContainer(r, 2, OffsetWidth8, 0)
	require.NoError(t, err)
	require.Equal(t, "a", c.Strings[0].Value)
	require.Equal(t, "bb", c.Strings[1].Value)

	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, c.Write(w, 0))
	require.Equal(t, raw, buf.Bytes())
}

func TestOffsetArrayContainerSwitchedOrdering(t *testing.T) {
	// Offset table lists the second string's slot (offset 4) ahead of
	// the first's (offset 6): offsets may point out of order relative
	// to each other and must round-trip exactly as given.
	raw := []byte{
		0x06, 0x04, // offsets: slot 0 -> 6, slot 1 -> 4
		0x00, 0x00, // filler
		0x05, 0x78, // short string "x" at offset 4
		0x03, // short string "" at offset 6
	}
	r := storage.NewReader(bytes.NewReader(raw))
	c, err := ReadOffsetArrayContainer(r, 2, OffsetWidth8, 0)
	require.NoError(t, err)
	require.Equal(t, "", c.Strings[0].Value)
	require.Equal(t, "x", c.Strings[1].Value)
}

func TestOffsetArrayContainerEmpty(t *testing.T) {
	r := storage.NewReader(bytes.NewReader(nil))
	c, err := ReadOffsetArrayContainer(r, 0, OffsetWidth8, 0)
	require.NoError(t, err)
	require.Empty(t, c.Offsets)
	require.Empty(t, c.Strings)
}

func TestOffsetArrayContainerExternalOffset(t *testing.T) {
	// The container starts at absolute stream position 10, but
	// external_offset = 8 models fixed fields placed ahead of the
	// container, so base = 10 - 8 = 2 and the single offset (value 2)
	// addresses absolute position 4 -- before the container itself.
	raw := []byte{
		0x00, 0x00, 0x00, 0x00, // idx 0-3: unrelated leading bytes
		0x07, 0x68, 0x69, // idx 4-6: short string "hi"
		0x00, 0x00, 0x00, // idx 7-9: filler up to the container start
		0x02, 0x00, // idx 10-11: the container's single 16-bit offset, value 2
	}
	r := storage.NewReader(bytes.NewReader(raw))
	_, err := r.Seek(10, 0)
	require.NoError(t, err)
	c, err := ReadOffsetArrayContainer(r, 1, OffsetWidth16, 8)
	require.NoError(t, err)
	require.Equal(t, "hi", c.Strings[0].Value)
}

func TestOffsetArrayContainerAliasing(t *testing.T) {
	// Two offsets point at the same location; on write, the
	// later-indexed string wins.
	c := &OffsetArrayContainer{
		Width:   OffsetWidth8,
		Offsets: []uint32{2, 2},
		Strings: []DeviceSQLString{NewDeviceSQLString("first"), NewDeviceSQLString("second")},
	}
	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, c.Write(w, 0))

	r := storage.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.SeekTo(2))
	s, err := ReadDeviceSQLString(r)
	require.NoError(t, err)
	require.Equal(t, "second", s.Value)
}
