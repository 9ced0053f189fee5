// Package pdb implements the paged DeviceSQL database engine used by
// Rekordbox's export.pdb and exportExt.pdb: fixed-size pages, a footer
// row-group index, offset-array containers for trailing strings, and the
// Plain/Ext row schema dialects that share the same paging machinery.
package pdb

import "rekordcrate/internal/colorindex"

// PageIndex addresses a page within a database. A page's byte offset is
// Index * pageSize.
type PageIndex uint32

// Offset returns the byte offset of the page within the file, given the
// database's page size.
func (p PageIndex) Offset(pageSize uint32) int64 {
	return int64(p) * int64(pageSize)
}

// RowID is a 32-bit identifier scoped to a row kind (Track, Artist, Album,
// ...). Zero signals absence when a row references another row.
type RowID uint32

// Present reports whether id refers to an actual row rather than "none".
func (id RowID) Present() bool { return id != 0 }

// Subtype is attached to string-bearing rows. Bit 0x04 selects the width
// of the trailing offset array: clear means 8-bit offsets, set means
// 16-bit offsets.
type Subtype uint16

// OffsetWidth is the physical width of entries in an offset-array
// container.
type OffsetWidth int

const (
	// OffsetWidth8 selects 8-bit offset entries.
	OffsetWidth8 OffsetWidth = 1
	// OffsetWidth16 selects 16-bit offset entries.
	OffsetWidth16 OffsetWidth = 2
)

const subtypeWideOffsetBit = 0x04

// OffsetWidth reports which offset width this subtype selects.
func (s Subtype) OffsetWidth() OffsetWidth {
	if s&subtypeWideOffsetBit != 0 {
		return OffsetWidth16
	}
	return OffsetWidth8
}

// PlainPageType enumerates the page types found in export.pdb.
type PlainPageType uint32

const (
	PlainTracks           PlainPageType = 0
	PlainGenres           PlainPageType = 1
	PlainArtists          PlainPageType = 2
	PlainAlbums           PlainPageType = 3
	PlainLabels           PlainPageType = 4
	PlainKeys             PlainPageType = 5
	PlainColors           PlainPageType = 6
	PlainPlaylistTree     PlainPageType = 7
	PlainPlaylistEntries  PlainPageType = 8
	PlainHistoryPlaylists PlainPageType = 11
	PlainHistoryEntries   PlainPageType = 12
	PlainArtwork          PlainPageType = 13
	PlainColumns          PlainPageType = 16
	PlainHistory          PlainPageType = 19
)

// ExtPageType enumerates the page types found in exportExt.pdb.
type ExtPageType uint32

const (
	ExtTag      ExtPageType = 3
	ExtTrackTag ExtPageType = 4
)

// DatabaseType distinguishes the two schema dialects that reuse the same
// paging machinery.
type DatabaseType int

const (
	// DatabaseTypePlain is the export.pdb dialect.
	DatabaseTypePlain DatabaseType = iota
	// DatabaseTypeExt is the exportExt.pdb dialect.
	DatabaseTypeExt
)

// PageType is the two-level tag on a page: either a Plain or an Ext page
// type code, both stored on disk as a little-endian uint32.
type PageType struct {
	DBType DatabaseType
	Plain  PlainPageType
	Ext    ExtPageType
}

// Code returns the raw on-disk page type value.
func (t PageType) Code() uint32 {
	if t.DBType == DatabaseTypeExt {
		return uint32(t.Ext)
	}
	return uint32(t.Plain)
}

// NewPlainPageType builds a PageType tagged as a Plain variant.
func NewPlainPageType(p PlainPageType) PageType {
	return PageType{DBType: DatabaseTypePlain, Plain: p}
}

// NewExtPageType builds a PageType tagged as an Ext variant.
func NewExtPageType(e ExtPageType) PageType {
	return PageType{DBType: DatabaseTypeExt, Ext: e}
}

// TableIndex identifies one entry in the database header's table
// directory, by position rather than by page type.
type TableIndex int

// ColorIndex is the closed eight-colors-plus-none enum used by Color rows
// and by Track.Color, shared with the anlz ExtendedCue color field.
type ColorIndex = colorindex.ColorIndex

const (
	ColorNone   = colorindex.None
	ColorPink   = colorindex.Pink
	ColorRed    = colorindex.Red
	ColorOrange = colorindex.Orange
	ColorYellow = colorindex.Yellow
	ColorGreen  = colorindex.Green
	ColorAqua   = colorindex.Aqua
	ColorBlue   = colorindex.Blue
	ColorPurple = colorindex.Purple
)

// FileType is a decode-only convenience classification of a raw file-type
// byte; Track has no field of this type, and nothing in parsing or
// serializing uses it, per the "no guessing at reserved semantics" rule.
type FileType uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeMP3
	FileTypeM4A
	FileTypeFLAC
	FileTypeWAV
	FileTypeAIFF
	FileTypeOther
)

// ClassifyFileType maps a raw file-type byte to the closed
// FileType enum, for display purposes only.
func ClassifyFileType(raw uint8) FileType {
	switch raw {
	case 1:
		return FileTypeMP3
	case 4:
		return FileTypeM4A
	case 5, 0xA:
		return FileTypeFLAC
	case 0xB:
		return FileTypeWAV
	case 0xC:
		return FileTypeAIFF
	default:
		return FileTypeOther
	}
}
