package pdb

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// OffsetArrayContainer is the self-describing table of N offsets (8- or
// 16-bit) into a trailing heap that every string-bearing row variant uses
// for its variable-length tail data, per §4.3.
//
// Offsets are addressed relative to a caller-supplied base, computed as
// containerStart - externalOffset, which lets the same container be
// addressed from before its own start when the enclosing row places fixed
// fields ahead of it (§9, "self-referential offset arrays"). Offsets are
// preserved exactly as read, including arbitrary ordering and aliasing;
// this module never compacts or renumbers them on write.
type OffsetArrayContainer struct {
	Width   OffsetWidth
	Offsets []uint32
	Strings []DeviceSQLString
}

// ReadOffsetArrayContainer reads n offsets of the given width starting at
// the stream's current position, then reads one DeviceSQLString per
// offset relative to base = containerStart - externalOffset. The stream
// is left at an unspecified position after the last string read; the
// caller is responsible for seeking back to resume parsing the enclosing
// row, exactly as specified in §4.3.
func ReadOffsetArrayContainer(r *storage.Reader, n int, width OffsetWidth, externalOffset int64) (*OffsetArrayContainer, error) {
	start := r.Pos()
	offsets := make([]uint32, n)
	for i := range offsets {
		switch width {
		case OffsetWidth8:
			v, err := r.ReadUint8()
			if err != nil {
				return nil, err
			}
			offsets[i] = uint32(v)
		case OffsetWidth16:
			v, err := r.ReadUint16LE()
			if err != nil {
				return nil, err
			}
			offsets[i] = uint32(v)
		default:
			return nil, rberr.New(rberr.KindStructural, "unknown offset width %d", width)
		}
	}

	base := start - externalOffset

	strs := make([]DeviceSQLString, n)
	for i, off := range offsets {
		if err := r.SeekTo(base + int64(off)); err != nil {
			return nil, err
		}
		s, err := ReadDeviceSQLString(r)
		if err != nil {
			return nil, err
		}
		strs[i] = s
	}

	return &OffsetArrayContainer{Width: width, Offsets: offsets, Strings: strs}, nil
}

// Write emits the container's offsets at the stream's current position,
// then writes each string at base + offset[i]. If two offsets alias, the
// later-indexed string wins, matching the source semantics. The stream is
// left at an unspecified position after the last string write; the
// caller repositions the cursor to resume writing the enclosing row.
func (c *OffsetArrayContainer) Write(w *storage.Writer, base int64) error {
	for _, off := range c.Offsets {
		switch c.Width {
		case OffsetWidth8:
			if err := w.WriteUint8(uint8(off)); err != nil {
				return err
			}
		case OffsetWidth16:
			if err := w.WriteUint16LE(uint16(off)); err != nil {
				return err
			}
		default:
			return rberr.New(rberr.KindStructural, "unknown offset width %d", c.Width)
		}
	}

	for i, s := range c.Strings {
		if err := w.SeekTo(base + int64(c.Offsets[i])); err != nil {
			return err
		}
		if err := s.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// EncodedSize returns the number of bytes the offset slots themselves
// occupy (not including the strings they point at).
func (c *OffsetArrayContainer) EncodedSize() int {
	if c.Width == OffsetWidth16 {
		return len(c.Offsets) * 2
	}
	return len(c.Offsets)
}
