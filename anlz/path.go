package anlz

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Path holds the absolute path of the audio file this analysis belongs
// to, as a big-endian UTF-16 string.
type Path struct {
	Value string
}

func readPath(r *storage.Reader, header Header) (*Path, error) {
	lenPath, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenPath != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "path length %d does not match section content size %d", lenPath, header.ContentSize())
	}
	value, err := readWideString(r, lenPath)
	if err != nil {
		return nil, err
	}
	return &Path{Value: value}, nil
}

func (p *Path) write(w *storage.Writer) error {
	lenPos := w.Pos()
	if err := w.WriteUint32BE(0); err != nil {
		return err
	}
	n, err := writeWideString(w, p.Value)
	if err != nil {
		return err
	}
	end := w.Pos()
	if err := w.SeekTo(lenPos); err != nil {
		return err
	}
	if err := w.WriteUint32BE(n); err != nil {
		return err
	}
	return w.SeekTo(end)
}

func (p *Path) kind() ContentKind { return KindPath }

// VBR carries opaque seek information for variable bitrate files.
type VBR struct {
	Unknown1 uint32
	Unknown2 []byte
}

func readVBR(r *storage.Reader, header Header) (*VBR, error) {
	unknown1, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	unknown2 := make([]byte, header.ContentSize())
	if err := r.ReadFull(unknown2); err != nil {
		return nil, err
	}
	return &VBR{Unknown1: unknown1, Unknown2: unknown2}, nil
}

func (v *VBR) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(v.Unknown1); err != nil {
		return err
	}
	return w.WriteBytes(v.Unknown2)
}

func (v *VBR) kind() ContentKind { return KindVBR }
