package pdb

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Row is the closed tagged union of every Plain and Ext row variant, plus
// the Unknown fallback that preserves unrecognized or deliberately opaque
// page types verbatim. This is the direct analogue of the teacher's Block
// interface in tzx.go: one constructor switch keyed on page type, with an
// Unknown arm absorbing everything the switch does not recognize.
type Row interface {
	// Write serializes the row at the writer's current position.
	Write(w *storage.Writer) error
	// AlignedEnd returns the stream offset the row's first byte must be
	// aligned to before writing, given the current unaligned stream
	// offset, per §4.1's alignment rule.
	AlignedEnd(offset int) int
}

// ExplicitPadding captures the opaque padding bytes trailing a row
// variant's fixed fields, sized by a per-variant alignment rule the
// implementation reproduces without attempting to derive it from field
// parity (§9, "row padding bytes").
type ExplicitPadding struct {
	Bytes []byte
}

// ReadExplicitPadding reads enough bytes to align the stream to the next
// multiple of alignment relative to rowStart.
func ReadExplicitPadding(r *storage.Reader, rowStart int64, alignment int) (ExplicitPadding, error) {
	pos := r.Pos()
	aligned := int64(rowStart) + int64(storage.AlignBy(alignment, int(pos-rowStart)))
	n := aligned - pos
	if n < 0 {
		return ExplicitPadding{}, rberr.At(rberr.KindStructural, pos, "row overruns its own alignment boundary")
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return ExplicitPadding{}, err
	}
	return ExplicitPadding{Bytes: buf}, nil
}

// Write emits the padding bytes verbatim.
func (p ExplicitPadding) Write(w *storage.Writer) error {
	return w.WriteBytes(p.Bytes)
}

// ReadRow dispatches to the matching row variant's reader based on the
// enclosing page's page type. History pages and any page type this module
// does not recognize carry a row format this module cannot interpret; it
// decodes to an UnknownRow marker that consumes no bytes, exactly as the
// row format's own reference engine treats them (their shape, and
// therefore their size, is unknown).
func ReadRow(r *storage.Reader, pt PageType) (Row, error) {
	if pt.DBType == DatabaseTypeExt {
		switch pt.Ext {
		case ExtTag:
			return ReadTagOrCategory(r)
		case ExtTrackTag:
			return ReadTrackTag(r)
		default:
			return &UnknownRow{}, nil
		}
	}

	switch pt.Plain {
	case PlainTracks:
		return ReadTrack(r)
	case PlainGenres:
		return ReadGenre(r)
	case PlainArtists:
		return ReadArtist(r)
	case PlainAlbums:
		return ReadAlbum(r)
	case PlainLabels:
		return ReadLabel(r)
	case PlainKeys:
		return ReadKey(r)
	case PlainColors:
		return ReadColor(r)
	case PlainPlaylistTree:
		return ReadPlaylistTreeNode(r)
	case PlainPlaylistEntries:
		return ReadPlaylistEntry(r)
	case PlainHistoryPlaylists:
		return ReadHistoryPlaylist(r)
	case PlainHistoryEntries:
		return ReadHistoryEntry(r)
	case PlainArtwork:
		return ReadArtwork(r)
	case PlainColumns:
		return ReadColumnEntry(r)
	default:
		return &UnknownRow{}, nil
	}
}

// UnknownRow marks a row at a page type this module does not (or
// deliberately does not, e.g. History) interpret. It carries no bytes: the
// reference engine this module follows never attempts to parse or
// round-trip such a row's content either.
type UnknownRow struct{}

func (u *UnknownRow) Write(w *storage.Writer) error { return nil }

func (u *UnknownRow) AlignedEnd(offset int) int { return offset }
