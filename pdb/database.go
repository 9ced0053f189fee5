package pdb

import (
	"io"

	"rekordcrate/internal/pageset"
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Table is a linked list of pages, all belonging to a single page type.
type Table struct {
	Type           PageType
	EmptyCandidate uint32
	FirstPage      PageIndex
	LastPage       PageIndex
}

// Header is the database's leading metadata: page geometry and the table
// directory every row lookup starts from. It physically occupies the
// start of the database's first page; the remainder of that page, after
// the table directory, is opaque padding this module preserves verbatim
// rather than re-deriving.
type Header struct {
	PageSize       uint32
	NextUnusedPage PageIndex
	Unknown        uint32
	Sequence       uint32
	Tables         []Table

	headerPagePadding []byte
}

// Database is a paged DeviceSQL database opened from a seekable source.
// Pages are loaded lazily and cached; Flush rewrites loaded pages and
// copies any page that was never touched straight from the source,
// verbatim, so an untouched database round-trips byte-for-byte.
type Database struct {
	dbType DatabaseType
	src    io.ReadSeeker
	header Header
	cache  map[PageIndex]*Page
}

// Open parses the header of a database from src. Pages are not read until
// requested.
func Open(src io.ReadSeeker, dbType DatabaseType) (*Database, error) {
	r := storage.NewReader(src)

	if err := r.ExpectMagic([]byte{0, 0, 0, 0}); err != nil {
		return nil, err
	}
	pageSize, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	numTables, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	nextUnusedPage, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	sequence, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	if err := r.ExpectMagic([]byte{0, 0, 0, 0}); err != nil {
		return nil, err
	}

	tables := make([]Table, numTables)
	for i := range tables {
		typeCode, err := r.ReadUint32LE()
		if err != nil {
			return nil, err
		}
		emptyCandidate, err := r.ReadUint32LE()
		if err != nil {
			return nil, err
		}
		firstPage, err := r.ReadUint32LE()
		if err != nil {
			return nil, err
		}
		lastPage, err := r.ReadUint32LE()
		if err != nil {
			return nil, err
		}
		tables[i] = Table{
			Type:           decodePageType(dbType, typeCode),
			EmptyCandidate: emptyCandidate,
			FirstPage:      PageIndex(firstPage),
			LastPage:       PageIndex(lastPage),
		}
	}

	headerEnd := r.Pos()
	padding := make([]byte, int64(pageSize)-headerEnd)
	if len(padding) > 0 {
		if err := r.ReadFull(padding); err != nil {
			return nil, err
		}
	}

	header := Header{
		PageSize:          pageSize,
		NextUnusedPage:    PageIndex(nextUnusedPage),
		Unknown:           unknown,
		Sequence:          sequence,
		Tables:            tables,
		headerPagePadding: padding,
	}

	return &Database{dbType: dbType, src: src, header: header, cache: map[PageIndex]*Page{}}, nil
}

// Header returns the parsed database header.
func (d *Database) Header() Header { return d.header }

// Table returns the table directory entry for the given page type, if the
// database has one.
func (d *Database) Table(pt PageType) (Table, bool) {
	for _, t := range d.header.Tables {
		if t.Type == pt {
			return t, true
		}
	}
	return Table{}, false
}

// LoadPage returns the page at idx, reading and caching it on first
// access.
func (d *Database) LoadPage(idx PageIndex) (*Page, error) {
	if p, ok := d.cache[idx]; ok {
		return p, nil
	}
	if _, err := d.src.Seek(idx.Offset(d.header.PageSize), io.SeekStart); err != nil {
		return nil, rberr.WrapAt(rberr.KindIO, err, idx.Offset(d.header.PageSize), "seek to page %d", idx)
	}
	r := storage.NewReader(d.src)
	p, err := ReadPage(r, d.header.PageSize, d.dbType)
	if err != nil {
		return nil, err
	}
	d.cache[idx] = p
	return p, nil
}

// Pages walks a table's page chain, following each page's NextPage link
// until the table's last page is reached, with cycle detection guarding
// against a corrupt chain that never terminates.
func (d *Database) Pages(t Table) ([]*Page, error) {
	var pages []*Page
	seen := &pageset.Set{}
	idx := t.FirstPage
	for {
		if seen.Insert(uint32(idx)) {
			return nil, rberr.New(rberr.KindIntegrity, "page chain for table %v revisits page %d", t.Type, idx)
		}
		page, err := d.LoadPage(idx)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)

		if idx == t.LastPage {
			break
		}
		idx = page.Header.NextPage
	}
	return pages, nil
}

// Rows returns every row stored across a table's pages, in page and
// row-group order. Pages without data (page_flags bit 0x40 set) are
// skipped, and History/Unknown page types yield one content-less
// UnknownRow per present row, since their format is not interpreted.
func (d *Database) Rows(t Table) ([]Row, error) {
	pages, err := d.Pages(t)
	if err != nil {
		return nil, err
	}
	var rows []Row
	for _, page := range pages {
		if !page.HasData() {
			continue
		}
		for _, group := range page.RowGroups {
			rows = append(rows, group.Rows...)
		}
	}
	return rows, nil
}

// Flush writes the complete database to w: the header page (header fields
// plus its preserved trailing padding), followed by every data page. A
// page that was loaded through LoadPage (and potentially mutated by the
// caller) is re-serialized; any page never loaded is copied from the
// source verbatim, so a database nothing ever touched round-trips
// byte-for-byte.
func (d *Database) Flush(w io.WriteSeeker) error {
	sw := storage.NewWriter(w)

	if err := sw.WriteUint32LE(0); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(d.header.PageSize); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(uint32(len(d.header.Tables))); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(uint32(d.header.NextUnusedPage)); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(d.header.Unknown); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(d.header.Sequence); err != nil {
		return err
	}
	if err := sw.WriteUint32LE(0); err != nil {
		return err
	}
	for _, t := range d.header.Tables {
		if err := sw.WriteUint32LE(t.Type.Code()); err != nil {
			return err
		}
		if err := sw.WriteUint32LE(t.EmptyCandidate); err != nil {
			return err
		}
		if err := sw.WriteUint32LE(uint32(t.FirstPage)); err != nil {
			return err
		}
		if err := sw.WriteUint32LE(uint32(t.LastPage)); err != nil {
			return err
		}
	}
	if err := sw.WriteBytes(d.header.headerPagePadding); err != nil {
		return err
	}

	totalPages, err := d.pageCount()
	if err != nil {
		return err
	}

	for idx := PageIndex(1); int64(idx) < totalPages; idx++ {
		if page, ok := d.cache[idx]; ok {
			if err := sw.SeekTo(idx.Offset(d.header.PageSize)); err != nil {
				return err
			}
			if err := page.Write(sw, d.header.PageSize); err != nil {
				return err
			}
			continue
		}
		if err := d.copyRawPage(sw, idx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) pageCount() (int64, error) {
	size, err := d.src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, rberr.Wrap(rberr.KindIO, err, "seek to end of database source")
	}
	return size / int64(d.header.PageSize), nil
}

func (d *Database) copyRawPage(w *storage.Writer, idx PageIndex) error {
	offset := idx.Offset(d.header.PageSize)
	if _, err := d.src.Seek(offset, io.SeekStart); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, offset, "seek to page %d for verbatim copy", idx)
	}
	buf := make([]byte, d.header.PageSize)
	if _, err := io.ReadFull(d.src, buf); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, offset, "read page %d for verbatim copy", idx)
	}
	if err := w.SeekTo(offset); err != nil {
		return err
	}
	return w.WriteBytes(buf)
}
