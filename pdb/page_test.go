package pdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func buildGenrePage(t *testing.T, pageSize uint32) *Page {
	t.Helper()
	page := &Page{
		Header: PageHeader{
			Index:        3,
			Type:         NewPlainPageType(PlainGenres),
			NextPage:     4,
			NumRowsSmall: 2,
			Flags:        PageFlags(0x24),
		},
	}
	group := &RowGroup{Unknown: 0}
	require.NoError(t, group.AddRow(&Genre{ID: 1, Name: NewDeviceSQLString("House")}))
	require.NoError(t, group.AddRow(&Genre{ID: 2, Name: NewDeviceSQLString("Techno")}))
	page.RowGroups = []*RowGroup{group}
	return page
}

func TestPageRoundTrip(t *testing.T) {
	const pageSize = 512

	page := buildGenrePage(t, pageSize)

	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, page.Write(w, pageSize))
	require.Len(t, buf.Bytes(), pageSize)

	r := storage.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadPage(r, pageSize, DatabaseTypePlain)
	require.NoError(t, err)

	require.Equal(t, PageIndex(3), got.Header.Index)
	require.Equal(t, NewPlainPageType(PlainGenres), got.Header.Type)
	require.True(t, got.HasData())
	require.Equal(t, uint16(2), got.Header.NumRows())
	require.Len(t, got.RowGroups, 1)
	require.Len(t, got.RowGroups[0].Rows, 2)

	first := got.RowGroups[0].Rows[0].(*Genre)
	second := got.RowGroups[0].Rows[1].(*Genre)
	require.Equal(t, "House", first.Name.Value)
	require.Equal(t, "Techno", second.Name.Value)
}

func TestPageWithoutDataSkipsFooter(t *testing.T) {
	const pageSize = 256
	page := &Page{
		Header: PageHeader{
			Index: 9,
			Type:  NewPlainPageType(PlainTracks),
			Flags: PageFlags(0x44), // bit 0x40 set: page has no data
		},
	}

	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, page.Write(w, pageSize))

	r := storage.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadPage(r, pageSize, DatabaseTypePlain)
	require.NoError(t, err)
	require.False(t, got.HasData())
	require.Empty(t, got.RowGroups)
}

func TestCalculateNumRowsSentinel(t *testing.T) {
	cases := []struct {
		small uint8
		large uint16
		want  uint16
	}{
		{small: 5, large: 0, want: 5},
		{small: 5, large: 3, want: 5},
		{small: 5, large: 200, want: 200},
		{small: 5, large: 0x1fff, want: 5},
	}
	for _, tc := range cases {
		h := PageHeader{NumRowsSmall: tc.small, NumRowsLarge: tc.large}
		require.Equal(t, tc.want, h.NumRows())
	}
}
