package pdb

import (
	"rekordcrate/internal/storage"
)

// Genre names a musical genre, referenced by Track.GenreID.
type Genre struct {
	ID   RowID
	Name DeviceSQLString
}

func ReadGenre(r *storage.Reader) (*Genre, error) {
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &Genre{ID: RowID(id), Name: name}, nil
}

func (g *Genre) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(g.ID)); err != nil {
		return err
	}
	return g.Name.Write(w)
}

func (g *Genre) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// Label names a record label, referenced by Track.LabelID.
type Label struct {
	ID   RowID
	Name DeviceSQLString
}

func ReadLabel(r *storage.Reader) (*Label, error) {
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &Label{ID: RowID(id), Name: name}, nil
}

func (l *Label) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(l.ID)); err != nil {
		return err
	}
	return l.Name.Write(w)
}

func (l *Label) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// Key names a musical key, referenced by Track.KeyID. ID2 is an observed
// duplicate of ID whose purpose is unknown; it is preserved verbatim.
type Key struct {
	ID   RowID
	ID2  uint32
	Name DeviceSQLString
}

func ReadKey(r *storage.Reader) (*Key, error) {
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	id2, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &Key{ID: RowID(id), ID2: id2, Name: name}, nil
}

func (k *Key) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(k.ID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(k.ID2); err != nil {
		return err
	}
	return k.Name.Write(w)
}

func (k *Key) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// Color names one of the eight closed color-index values (or none).
type Color struct {
	Unknown1 uint32
	Unknown2 uint8
	Index    ColorIndex
	Unknown3 uint16
	Name     DeviceSQLString
}

func ReadColor(r *storage.Reader) (*Color, error) {
	u1, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	u2, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	idx, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	u3, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &Color{Unknown1: u1, Unknown2: u2, Index: ColorIndex(idx), Unknown3: u3, Name: name}, nil
}

func (c *Color) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(c.Unknown1); err != nil {
		return err
	}
	if err := w.WriteUint8(c.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.Index)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(c.Unknown3); err != nil {
		return err
	}
	return c.Name.Write(w)
}

func (c *Color) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// Artwork associates an artwork ID with the path to its image file.
type Artwork struct {
	ID   RowID
	Path DeviceSQLString
}

func ReadArtwork(r *storage.Reader) (*Artwork, error) {
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	path, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &Artwork{ID: RowID(id), Path: path}, nil
}

func (a *Artwork) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(a.ID)); err != nil {
		return err
	}
	return a.Path.Write(w)
}

func (a *Artwork) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// HistoryPlaylist names a playlist captured in the on-device play history.
type HistoryPlaylist struct {
	ID   RowID
	Name DeviceSQLString
}

func ReadHistoryPlaylist(r *storage.Reader) (*HistoryPlaylist, error) {
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &HistoryPlaylist{ID: RowID(id), Name: name}, nil
}

func (h *HistoryPlaylist) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(h.ID)); err != nil {
		return err
	}
	return h.Name.Write(w)
}

func (h *HistoryPlaylist) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// HistoryEntry places a track at a position within a history playlist.
type HistoryEntry struct {
	TrackID    RowID
	PlaylistID RowID
	EntryIndex uint32
}

func ReadHistoryEntry(r *storage.Reader) (*HistoryEntry, error) {
	trackID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	playlistID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	entryIndex, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	return &HistoryEntry{TrackID: RowID(trackID), PlaylistID: RowID(playlistID), EntryIndex: entryIndex}, nil
}

func (h *HistoryEntry) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(h.TrackID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(h.PlaylistID)); err != nil {
		return err
	}
	return w.WriteUint32LE(h.EntryIndex)
}

func (h *HistoryEntry) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// PlaylistTreeNode is either a folder or a playlist within the playlist
// tree shown on the player's menu.
type PlaylistTreeNode struct {
	ParentID    RowID
	Unknown     uint32
	SortOrder   uint32
	ID          RowID
	NodeIsFolder uint32
	Name        DeviceSQLString
}

// IsFolder reports whether this node is a folder rather than a leaf
// playlist, matching the source's "non-zero if it's a leaf node" comment
// inversion verbatim: NodeIsFolder non-zero means folder in this codebase.
func (p *PlaylistTreeNode) IsFolder() bool { return p.NodeIsFolder > 0 }

func ReadPlaylistTreeNode(r *storage.Reader) (*PlaylistTreeNode, error) {
	parentID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint32LE()
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
	isFolder, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &PlaylistTreeNode{
		ParentID:     RowID(parentID),
		Unknown:      unknown,
		SortOrder:    sortOrder,
		ID:           RowID(id),
		NodeIsFolder: isFolder,
		Name:         name,
	}, nil
}

func (p *PlaylistTreeNode) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(uint32(p.ParentID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.Unknown); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.SortOrder); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(p.ID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(p.NodeIsFolder); err != nil {
		return err
	}
	return p.Name.Write(w)
}

func (p *PlaylistTreeNode) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// PlaylistEntry places a track at a position within a playlist.
type PlaylistEntry struct {
	EntryIndex uint32
	TrackID    RowID
	PlaylistID RowID
}

func ReadPlaylistEntry(r *storage.Reader) (*PlaylistEntry, error) {
	entryIndex, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	trackID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	playlistID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	return &PlaylistEntry{EntryIndex: entryIndex, TrackID: RowID(trackID), PlaylistID: RowID(playlistID)}, nil
}

func (p *PlaylistEntry) Write(w *storage.Writer) error {
	if err := w.WriteUint32LE(p.EntryIndex); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(p.TrackID)); err != nil {
		return err
	}
	return w.WriteUint32LE(uint32(p.PlaylistID))
}

func (p *PlaylistEntry) AlignedEnd(offset int) int { return storage.AlignBy(4, offset) }

// ColumnEntry names one of the metadata categories tracks can be browsed
// by on CDJs (Artist, Album, Genre, ...).
type ColumnEntry struct {
	ID         uint16
	Unknown0   uint16
	ColumnName DeviceSQLString
}

func ReadColumnEntry(r *storage.Reader) (*ColumnEntry, error) {
	id, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown0, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	name, err := ReadDeviceSQLString(r)
	if err != nil {
		return nil, err
	}
	return &ColumnEntry{ID: id, Unknown0: unknown0, ColumnName: name}, nil
}

func (c *ColumnEntry) Write(w *storage.Writer) error {
	if err := w.WriteUint16LE(c.ID); err != nil {
		return err
	}
	if err := w.WriteUint16LE(c.Unknown0); err != nil {
		return err
	}
	return c.ColumnName.Write(w)
}

// ColumnEntry aligns to 2 bytes, narrower than the usual 4-byte row
// alignment, matching §4.5's note that ColumnEntry uses alignment 2.
func (c *ColumnEntry) AlignedEnd(offset int) int { return storage.AlignBy(2, offset) }

// Album contains an album name and the ID of its associated artist.
type Album struct {
	Subtype    Subtype
	IndexShift uint16
	Unknown2   uint32
	ArtistID   RowID
	ID         RowID
	Unknown3   uint32
	Offsets    *OffsetArrayContainer
	Padding    ExplicitPadding
}

// albumOffsetExternalOffset is the byte offset of the offset-array
// container from the start of an Album row (20, per the source).
const albumOffsetExternalOffset = 20

// albumPaddingAlignment is this module's chosen constant for Album's
// explicit padding; the source's own ExplicitPadding arguments for Album
// were not present in the retrieved reference, so this mirrors Artist's
// sibling pattern (offset-array row, 0x30) rather than inventing new
// semantics (see DESIGN.md, "pdb row variants (Plain dialect)").
const albumPaddingAlignment = 0x30

func ReadAlbum(r *storage.Reader) (*Album, error) {
	rowStart := r.Pos()
	subtype, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	indexShift, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown2, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	artistID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown3, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}

	offsetsStart := r.Pos()
	width := Subtype(subtype).OffsetWidth()
	offsets, err := ReadOffsetArrayContainer(r, 2, width, albumOffsetExternalOffset)
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(offsetsStart + int64(offsets.EncodedSize())); err != nil {
		return nil, err
	}

	padding, err := ReadExplicitPadding(r, rowStart, albumPaddingAlignment)
	if err != nil {
		return nil, err
	}

	return &Album{
		Subtype:    Subtype(subtype),
		IndexShift: indexShift,
		Unknown2:   unknown2,
		ArtistID:   RowID(artistID),
		ID:         RowID(id),
		Unknown3:   unknown3,
		Offsets:    offsets,
		Padding:    padding,
	}, nil
}

func (a *Album) Write(w *storage.Writer) error {
	rowStart := w.Pos()
	if err := w.WriteUint16LE(uint16(a.Subtype)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(a.IndexShift); err != nil {
		return err
	}
	if err := w.WriteUint32LE(a.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(a.ArtistID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(a.ID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(a.Unknown3); err != nil {
		return err
	}

	offsetsStart := w.Pos()
	base := rowStart
	if err := a.Offsets.Write(w, base); err != nil {
		return err
	}
	if err := w.SeekTo(offsetsStart + int64(a.Offsets.EncodedSize())); err != nil {
		return err
	}
	return a.Padding.Write(w)
}

// AlignedEnd leaves the row's start position unaligned: Album's own
// trailing ExplicitPadding handles alignment instead, matching the
// source's row-dispatch rule that offset-array-bearing rows are not
// pre-aligned before writing.
func (a *Album) AlignedEnd(offset int) int { return offset }

// Artist contains an artist's name and ID.
type Artist struct {
	Subtype    Subtype
	IndexShift uint16
	ID         RowID
	Offsets    *OffsetArrayContainer
	Padding    ExplicitPadding
}

const artistOffsetExternalOffset = 8
const artistPaddingAlignment = 0x30

func ReadArtist(r *storage.Reader) (*Artist, error) {
	rowStart := r.Pos()
	subtype, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	indexShift, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}

	offsetsStart := r.Pos()
	width := Subtype(subtype).OffsetWidth()
	offsets, err := ReadOffsetArrayContainer(r, 2, width, artistOffsetExternalOffset)
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(offsetsStart + int64(offsets.EncodedSize())); err != nil {
		return nil, err
	}

	padding, err := ReadExplicitPadding(r, rowStart, artistPaddingAlignment)
	if err != nil {
		return nil, err
	}

	return &Artist{
		Subtype:    Subtype(subtype),
		IndexShift: indexShift,
		ID:         RowID(id),
		Offsets:    offsets,
		Padding:    padding,
	}, nil
}

func (a *Artist) Write(w *storage.Writer) error {
	rowStart := w.Pos()
	if err := w.WriteUint16LE(uint16(a.Subtype)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(a.IndexShift); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(a.ID)); err != nil {
		return err
	}

	offsetsStart := w.Pos()
	base := rowStart
	if err := a.Offsets.Write(w, base); err != nil {
		return err
	}
	if err := w.SeekTo(offsetsStart + int64(a.Offsets.EncodedSize())); err != nil {
		return err
	}
	return a.Padding.Write(w)
}

// AlignedEnd leaves the row's start position unaligned, for the same
// reason as Album.AlignedEnd.
func (a *Artist) AlignedEnd(offset int) int { return offset }

// Track is the richest row variant: the metadata record for one track in
// the collection, with up to 23 trailing strings addressed through an
// offset-array container.
type Track struct {
	Subtype      Subtype
	IndexShift   uint16
	Bitmask      uint32
	SampleRate   uint32
	ComposerID   RowID
	FileSize     uint32
	Unknown2     uint32
	Unknown3     uint16
	Unknown4     uint16
	ArtworkID    RowID
	KeyID        RowID
	OrigArtistID RowID
	LabelID      RowID
	RemixerID    RowID
	Bitrate      uint32
	TrackNumber  uint32
	Tempo        uint32
	GenreID      RowID
	AlbumID      RowID
	ArtistID     RowID
	ID           RowID
	DiscNumber   uint16
	PlayCount    uint16
	Year         uint16
	SampleDepth  uint16
	Duration     uint16
	Unknown5     uint16
	Color        ColorIndex
	Rating       uint8
	Offsets      *OffsetArrayContainer
	Padding      ExplicitPadding
}

const trackOffsetExternalOffset = 0x5A
const trackPaddingAlignment = 0x40

// TrackStringSlot names the 23 offset-array slots of a Track row, in
// the same order the source assigns them, for callers that want named
// string access instead of positional indexing into Offsets.Strings.
type TrackStringSlot int

const (
	TrackStringUnused0 TrackStringSlot = iota
	TrackStringUnused1
	TrackStringISRC
	TrackStringUnknown1
	TrackStringUnknown2
	TrackStringUnknown3
	TrackStringUnknown4
	TrackStringMessage
	TrackStringKuvoPublic
	TrackStringAutoloadHotcues
	TrackStringUnknown5
	TrackStringUnknown6
	TrackStringDateAdded
	TrackStringReleaseDate
	TrackStringMixName
	TrackStringUnknown7
	TrackStringAnalyzePath
	TrackStringAnalyzeDate
	TrackStringComment
	TrackStringTitle
	TrackStringUnknown8
	TrackStringFilename
	TrackStringFilePath
)

// String returns the string stored in the named slot.
func (t *Track) String(slot TrackStringSlot) DeviceSQLString {
	return t.Offsets.Strings[slot]
}

func ReadTrack(r *storage.Reader) (*Track, error) {
	rowStart := r.Pos()
	subtype, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	indexShift, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	bitmask, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	sampleRate, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	composerID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	fileSize, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown2, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	unknown3, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown4, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	artworkID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	keyID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	origArtistID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	labelID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	remixerID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	bitrate, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	trackNumber, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	tempo, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	genreID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	albumID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	artistID, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	discNumber, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	playCount, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	year, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	sampleDepth, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	duration, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown5, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	color, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	rating, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	offsetsStart := r.Pos()
	width := Subtype(subtype).OffsetWidth()
	offsets, err := ReadOffsetArrayContainer(r, 23, width, trackOffsetExternalOffset)
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(offsetsStart + int64(offsets.EncodedSize())); err != nil {
		return nil, err
	}

	padding, err := ReadExplicitPadding(r, rowStart, trackPaddingAlignment)
	if err != nil {
		return nil, err
	}

	return &Track{
		Subtype: Subtype(subtype), IndexShift: indexShift, Bitmask: bitmask,
		SampleRate: sampleRate, ComposerID: RowID(composerID), FileSize: fileSize,
		Unknown2: unknown2, Unknown3: unknown3, Unknown4: unknown4,
		ArtworkID: RowID(artworkID), KeyID: RowID(keyID), OrigArtistID: RowID(origArtistID),
		LabelID: RowID(labelID), RemixerID: RowID(remixerID), Bitrate: bitrate,
		TrackNumber: trackNumber, Tempo: tempo, GenreID: RowID(genreID),
		AlbumID: RowID(albumID), ArtistID: RowID(artistID), ID: RowID(id),
		DiscNumber: discNumber, PlayCount: playCount, Year: year,
		SampleDepth: sampleDepth, Duration: duration, Unknown5: unknown5,
		Color: ColorIndex(color), Rating: rating, Offsets: offsets, Padding: padding,
	}, nil
}

func (t *Track) Write(w *storage.Writer) error {
	rowStart := w.Pos()
	if err := w.WriteUint16LE(uint16(t.Subtype)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.IndexShift); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.Bitmask); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.SampleRate); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.ComposerID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.FileSize); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.Unknown3); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.Unknown4); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.ArtworkID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.KeyID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.OrigArtistID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.LabelID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.RemixerID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.Bitrate); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.TrackNumber); err != nil {
		return err
	}
	if err := w.WriteUint32LE(t.Tempo); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.GenreID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.AlbumID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.ArtistID)); err != nil {
		return err
	}
	if err := w.WriteUint32LE(uint32(t.ID)); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.DiscNumber); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.PlayCount); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.Year); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.SampleDepth); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.Duration); err != nil {
		return err
	}
	if err := w.WriteUint16LE(t.Unknown5); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(t.Color)); err != nil {
		return err
	}
	if err := w.WriteUint8(t.Rating); err != nil {
		return err
	}

	offsetsStart := w.Pos()
	base := rowStart
	if err := t.Offsets.Write(w, base); err != nil {
		return err
	}
	if err := w.SeekTo(offsetsStart + int64(t.Offsets.EncodedSize())); err != nil {
		return err
	}
	return t.Padding.Write(w)
}

// AlignedEnd leaves the row's start position unaligned; Track's own
// trailing ExplicitPadding, not a pre-write alignment of its start
// position, is what keeps successive tracks aligned on disk.
func (t *Track) AlignedEnd(offset int) int { return offset }
