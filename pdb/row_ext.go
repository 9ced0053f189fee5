package pdb

import (
	"rekordcrate/internal/storage"
)

// TagOrCategory is the Ext-dialect row shared by tag and tag-category rows
// in exportExt.pdb: a two-slot offset array (name, plus an unused sibling
// slot mirroring Artist/Album's layout) with an optional parent reference.
type TagOrCategory struct {
	ParentID RowID
	Unknown  uint32
	Subtype  Subtype
	SortOrder uint32
	ID        RowID
	Offsets   *OffsetArrayContainer
	Padding   ExplicitPadding
}

const tagOrCategoryOffsetExternalOffset = 0x1C
const tagOrCategoryPaddingAlignment = 11

func ReadTagOrCategory(r *storage.Reader) (*TagOrCategory, error) {
	rowStart := r.Pos()
	parentID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	subtype, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	sortOrder, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}

	offsetsStart := r.Pos()
	width := Subtype(subtype).OffsetWidth()
	offsets, err := ReadOffsetArrayContainer(r, 2, width, offsetsStart-rowStart-tagOrCategoryOffsetExternalOffset)
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(offsetsStart + int64(offsets.EncodedSize())); err != nil {
		return nil, err
	}

	padding, err := ReadExplicitPadding(r, rowStart, tagOrCategoryPaddingAlignment)
	if err != nil {
		return nil, err
	}

	return &TagOrCategory{
		ParentID:  RowID(parentID),
		Unknown:   unknown,
		Subtype:   Subtype(subtype),
		SortOrder: sortOrder,
		ID:        RowID(id),
		Offsets:   offsets,
		Padding:   padding,
	}, nil
}

func (t *TagOrCategory) Write(w *storage.Writer) error {
	rowStart := w.Pos()
	if err := w.WriteUint32LE(uint32(t.ParentID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.Unknown); err != nil {
		return err
	}
	if err := w.WriteUint16LE(uint16(t.Subtype)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.SortOrder); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.ID)); err != nil {
		return err
	}

	offsetsStart := w.Pos()
	base := offsetsStart - rowStart - tagOrCategoryOffsetExternalOffset
	if err := t.Offsets.Write(w, base); err != nil {
		return err
	}
	if err := w.SeekTo(offsetsStart + int64(t.Offsets.EncodedSize())); err != nil {
		return err
	}
	return t.Padding.Write(w)
}

// AlignedEnd leaves the row's start position unaligned, mirroring the
// Plain dialect's Album/Artist rows: this row's own trailing
// ExplicitPadding is what keeps the heap aligned, not a pre-write
// alignment of its start.
func (t *TagOrCategory) AlignedEnd(offset int) int { return offset }

// TrackTag associates a track with a tag, within the Ext dialect. A fixed
// zero-value marker precedes the track/tag pair, and a trailing constant
// (observed as 3 in every captured sample) follows it; both are preserved
// verbatim rather than interpreted.
type TrackTag struct {
	Marker  uint32
	TrackID RowID
	TagID   RowID
	Const3  uint32
}

func ReadTrackTag(r *storage.Reader) (*TrackTag, error) {
	marker, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	trackID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	tagID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	const3, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	return &TrackTag{Marker: marker, TrackID: RowID(trackID), TagID: RowID(tagID), Const3: const3}, nil
}

func (t *TrackTag) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(t.Marker); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.TrackID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.TagID)); err != nil {
		return err
	}
	return w.WriteUint32LE(t.Const3)
}

func (t *TrackTag) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }
