package pdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

// buildDatabaseBytes assembles a minimal in-memory database with one Genres
// table spanning a header page and a single data page.
func buildDatabaseBytes(t *testing.T) []byte {
	t.Helper()
	const pageSize = 256

	buf := newGrowBuffer()
	w := storage.NewWriter(buf)

	// Header page.
	require.NoError(t, w.WriteUint32LE(0))
	require.NoError(t, w.WriteUint32LE(pageSize))
	require.NoError(t, w.WriteUint32LE(1)) // num_tables
	require.NoError(t, w.WriteUint32LE(2)) // next_unused_page
	require.NoError(t, w.WriteUint32LE(0)) // unknown
	require.NoError(t, w.WriteUint32LE(7)) // sequence
	require.NoError(t, w.WriteUint32LE(0)) // gap
	require.NoError(t, w.WriteUint32LE(uint32(PlainGenres)))
	require.NoError(t, w.WriteUint32LE(0)) // empty_candidate
	require.NoError(t, w.WriteUint32LE(1)) // first_page
	require.NoError(t, w.WriteUint32LE(1)) // last_page
	require.NoError(t, w.SeekTo(pageSize))

	page := &Page{
		Header: PageHeader{
			Index:        1,
			Type:         NewPlainPageType(PlainGenres),
			NextPage:     1,
			NumRowsSmall: 1,
			Flags:        PageFlags(0x24),
		},
	}
	group := &RowGroup{}
	require.NoError(t, group.AddRow(&Genre{ID: 9, Name: NewDeviceSQLString("Dub")}))
	page.RowGroups = []*RowGroup{group}
	require.NoError(t, page.Write(w, pageSize))

	return buf.Bytes()
}

func TestDatabaseOpenAndRows(t *testing.T) {
	raw := buildDatabaseBytes(t)
	db, err := Open(bytes.NewReader(raw), DatabaseTypePlain)
	require.NoError(t, err)

	require.Equal(t, uint32(256), db.Header().PageSize)
	require.Equal(t, uint32(7), db.Header().Sequence)

	table, ok := db.Table(NewPlainPageType(PlainGenres))
	require.True(t, ok)
	require.Equal(t, PageIndex(1), table.FirstPage)

	rows, err := db.Rows(table)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Dub", rows[0].(*Genre).Name.Value)
}

func TestDatabaseFlushPreservesUntouchedPages(t *testing.T) {
	raw := buildDatabaseBytes(t)
	src := bytes.NewReader(raw)
	db, err := Open(src, DatabaseTypePlain)
	require.NoError(t, err)

	out := newGrowBuffer()
	require.NoError(t, db.Flush(out))
	require.Equal(t, raw, out.Bytes())
}

func TestDatabaseCyclicChainIsRejected(t *testing.T) {
	const pageSize = 128
	buf := newGrowBuffer()
	w := storage.NewWriter(buf)
	require.NoError(t, w.WriteUint32LE(0))
	require.NoError(t, w.WriteUint32LE(pageSize))
	require.NoError(t, w.WriteUint32LE(1))
	require.NoError(t, w.WriteUint32LE(2))
	require.NoError(t, w.WriteUint32LE(0))
	require.NoError(t, w.WriteUint32LE(1))
	require.NoError(t, w.WriteUint32LE(0))
	require.NoError(t, w.WriteUint32LE(uint32(PlainGenres)))
	require.NoError(t, w.WriteUint32LE(0))
	require.NoError(t, w.WriteUint32LE(1))
	require.NoError(t, w.WriteUint32LE(2)) // last_page = 2, never reached
	require.NoError(t, w.SeekTo(pageSize))

	page := &Page{Header: PageHeader{Index: 1, Type: NewPlainPageType(PlainGenres), NextPage: 1, Flags: PageFlags(0x44)}}
	require.NoError(t, page.Write(w, pageSize))

	db, err := Open(bytes.NewReader(buf.Bytes()), DatabaseTypePlain)
	require.NoError(t, err)
	table, _ := db.Table(NewPlainPageType(PlainGenres))
	_, err = db.Pages(table)
	require.Error(t, err)
}
