package pdb

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// pageHeaderSize is the fixed size of a page header in bytes.
const pageHeaderSize = 0x28

// rowGroupMaxRows is the number of row slots a single row group holds.
const rowGroupMaxRows = 16

// rowGroupBinarySize is the on-disk size of a row group: 16 offsets of
// two bytes each, plus a presence bitmask and an unknown field.
const rowGroupBinarySize = rowGroupMaxRows*2 + 4

// invalidRowOffset marks an empty row slot.
const invalidRowOffset = 0xFFFF

// PageFlags is the single status byte in a page header.
type PageFlags uint8

// HasData reports whether the page's data section actually holds rows.
func (f PageFlags) HasData() bool { return f&0x40 == 0 }

// PageHeader is the fixed 0x28-byte header every page begins with.
type PageHeader struct {
	Index        PageIndex
	Type         PageType
	NextPage     PageIndex
	Unknown1     uint32
	Unknown2     uint32
	NumRowsSmall uint8
	Unknown3     uint8
	Unknown4     uint8
	Flags        PageFlags
	FreeSize     uint16
	UsedSize     uint16
	Unknown5     uint16
	NumRowsLarge uint16
	Unknown6     uint16
	Unknown7     uint16
}

// NumRows resolves the page's row count from its two redundant encodings:
// the 16-bit count wins over the 8-bit one only when it is both larger and
// not the sentinel value 0x1FFF, matching the format's own disambiguation
// rule.
func (h PageHeader) NumRows() uint16 {
	if h.NumRowsLarge > uint16(h.NumRowsSmall) && h.NumRowsLarge != 0x1fff {
		return h.NumRowsLarge
	}
	return uint16(h.NumRowsSmall)
}

func (h PageHeader) numRowGroups() uint16 {
	n := h.NumRows()
	return (n + rowGroupMaxRows - 1) / rowGroupMaxRows
}

// heapPaddingSize is the gap between the end of the header and the start
// of the row-group footer: whatever of the page is neither header nor
// footer is either live heap data or unused space, and this module never
// needs to distinguish the two since the footer's own offsets locate every
// row directly.
func heapPaddingSize(pageSize uint32, numRowGroups uint16) uint32 {
	footerSize := uint32(numRowGroups) * rowGroupBinarySize
	return pageSize - pageHeaderSize - footerSize
}

// RowGroup holds up to sixteen rows built from the offsets stored at the
// end of a page. Rows are kept in the order they were added; a row group
// never has gaps between its present rows, matching the closed
// construction path this module's Write exposes (AddRow only).
type RowGroup struct {
	Rows    []Row
	Unknown uint16
}

// Page is a single fixed-size page of the paged database: a header,
// followed (when the page actually carries data) by the row groups that
// index its rows.
type Page struct {
	Header    PageHeader
	RowGroups []*RowGroup
}

// HasData reports whether this page's flags mark it as data-bearing.
func (p *Page) HasData() bool { return p.Header.Flags.HasData() }

func decodePageType(dbType DatabaseType, code uint32) PageType {
	if dbType == DatabaseTypeExt {
		return PageType{DBType: DatabaseTypeExt, Ext: ExtPageType(code)}
	}
	return PageType{DBType: DatabaseTypePlain, Plain: PlainPageType(code)}
}

// ReadPage reads one page at the reader's current position. pageSize is
// the database's fixed page size (from the file header) and dbType
// selects which page-type code space this page's type field is decoded
// against.
func ReadPage(r *storage.Reader, pageSize uint32, dbType DatabaseType) (*Page, error) {
	pageStart := r.Pos()

	if err := r.ExpectMagic([]byte{0, 0, 0, 0}); err != nil {
		return nil, err
	}
	index, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	typeCode, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	nextPage, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown1, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown2, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	numRowsSmall, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	unknown3, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	unknown4, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	freeSize, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	usedSize, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown5, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	numRowsLarge, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown6, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown7, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}

	header := PageHeader{
		Index:        PageIndex(index),
		Type:         decodePageType(dbType, typeCode),
		NextPage:     PageIndex(nextPage),
		Unknown1:     unknown1,
		Unknown2:     unknown2,
		NumRowsSmall: numRowsSmall,
		Unknown3:     unknown3,
		Unknown4:     unknown4,
		Flags:        PageFlags(flags),
		FreeSize:     freeSize,
		UsedSize:     usedSize,
		Unknown5:     unknown5,
		NumRowsLarge: numRowsLarge,
		Unknown6:     unknown6,
		Unknown7:     unknown7,
	}

	page := &Page{Header: header}

	numRowGroups := header.numRowGroups()
	if numRowGroups > 0 && header.Flags.HasData() {
		padding := heapPaddingSize(pageSize, numRowGroups)
		heapOffset := pageStart + int64(pageHeaderSize)
		if err := r.SeekTo(heapOffset + int64(padding)); err != nil {
			return nil, err
		}

		groups := make([]*RowGroup, numRowGroups)
		for i := range groups {
			g, err := readRowGroup(r, header.Type, heapOffset)
			if err != nil {
				return nil, err
			}
			groups[i] = g
		}
		// Row groups are stored in reverse order at the page's end.
		for l, rr := 0, len(groups)-1; l < rr; l, rr = l+1, rr-1 {
			groups[l], groups[rr] = groups[rr], groups[l]
		}
		page.RowGroups = groups
	}

	return page, nil
}

func readRowGroup(r *storage.Reader, pageType PageType, heapOffset int64) (*RowGroup, error) {
	var fileOffsets [rowGroupMaxRows]uint16
	for i := range fileOffsets {
		v, err := r.ReadUint16LE()
		if err != nil {
			return nil, err
		}
		fileOffsets[i] = v
	}
	presence, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	resumeAt := r.Pos()

	// The array is stored back-to-front: file slot 0 holds logical row
	// 15's offset, file slot 15 holds logical row 0's.
	var logicalOffsets [rowGroupMaxRows]uint16
	for i := 0; i < rowGroupMaxRows; i++ {
		logicalOffsets[i] = fileOffsets[rowGroupMaxRows-1-i]
	}

	var rows []Row
	for i := 0; i < rowGroupMaxRows; i++ {
		if presence&(1<<uint(i)) == 0 {
			continue
		}
		off := logicalOffsets[i]
		if err := r.SeekTo(heapOffset + int64(off)); err != nil {
			return nil, err
		}
		row, err := ReadRow(r, pageType)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := r.SeekTo(resumeAt); err != nil {
		return nil, err
	}

	return &RowGroup{Rows: rows, Unknown: unknown}, nil
}

// AddRow appends row to the group. It reports an error once the group
// already holds the maximum of sixteen rows.
func (g *RowGroup) AddRow(row Row) error {
	if len(g.Rows) >= rowGroupMaxRows {
		return rberr.New(rberr.KindStructural, "row group already holds the maximum of %d rows", rowGroupMaxRows)
	}
	g.Rows = append(g.Rows, row)
	return nil
}

// Write serializes the full page, including its header and footer, at the
// writer's current position. The writer must already be positioned at the
// start of a pageSize-sized region; Write leaves the cursor at the start
// of the next page.
func (p *Page) Write(w *storage.Writer, pageSize uint32) error {
	pageStart := w.Pos()

	if err := w.WriteUint32LE(0); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(p.Header.Index)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.Header.Type.Code()); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(p.Header.NextPage)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.Header.Unknown1); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.Header.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint8(p.Header.NumRowsSmall); err != nil {
		return err
	}
	if err := w.WriteUint8(p.Header.Unknown3); err != nil {
		return err
	}
	if err := w.WriteUint8(p.Header.Unknown4); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(p.Header.Flags)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.FreeSize); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.UsedSize); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.Unknown5); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.NumRowsLarge); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.Unknown6); err != nil {
		return err
	}
	if err := w.WriteUint16LE(p.Header.Unknown7); err != nil {
		return err
	}

	heapOffset := pageStart + int64(pageHeaderSize)
	numRowGroups := uint16(len(p.RowGroups))
	if numRowGroups == 0 {
		return w.SeekTo(pageStart + int64(pageSize))
	}

	// The first row group in logical order occupies the footer slot
	// closest to the end of the page; each subsequent group works
	// backwards towards the heap. Start at the very end of the page and
	// let writeRowGroup back the cursor up by one slot per call.
	if err := w.SeekTo(pageStart + int64(pageSize)); err != nil {
		return err
	}

	var relativeRowOffset int64
	for i := 0; i < len(p.RowGroups); i++ {
		next, err := writeRowGroup(w, p.RowGroups[i], heapOffset, relativeRowOffset)
		if err != nil {
			return err
		}
		relativeRowOffset = next
	}

	return w.SeekTo(pageStart + int64(pageSize))
}

func writeRowGroup(w *storage.Writer, g *RowGroup, heapOffset int64, relativeRowOffset int64) (int64, error) {
	groupStart := w.Pos() - rowGroupBinarySize

	var offsets [rowGroupMaxRows]uint16
	for i := range offsets {
		offsets[i] = invalidRowOffset
	}

	freeSpaceStart := heapOffset + relativeRowOffset
	if err := w.SeekTo(freeSpaceStart); err != nil {
		return 0, err
	}
	for i, row := range g.Rows {
		pos := w.Pos()
		aligned := int64(row.AlignedEnd(int(pos)))
		if err := w.SeekTo(aligned); err != nil {
			return 0, err
		}
		if err := row.Write(w); err != nil {
			return 0, err
		}
		offsets[i] = uint16(aligned - heapOffset)
	}
	writtenEnd := w.Pos()

	if err := w.SeekTo(groupStart); err != nil {
		return 0, err
	}
	for i := rowGroupMaxRows - 1; i >= 0; i-- {
		if offsets[i] == invalidRowOffset {
			if _, err := w.Seek(2, 1); err != nil {
				return 0, err
			}
			continue
		}
		if err := w.WriteUint16LE(offsets[i]); err != nil {
			return 0, err
		}
	}

	var presence uint16
	for i := range g.Rows {
		presence |= 1 << uint(i)
	}
	if err := w.WriteUint16LE(presence); err != nil {
		return 0, err
	}
	if err := w.WriteUint16LE(g.Unknown); err != nil {
		return 0, err
	}

	if err := w.SeekTo(groupStart); err != nil {
		return 0, err
	}

	return writtenEnd - heapOffset, nil
}
