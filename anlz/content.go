package anlz

import "rekordcrate/internal/storage"

// Content is the section-kind-specific payload of a Section. Sections
// whose kind this module does not recognize decode to *Unknown, which
// keeps their raw bytes so later sections in the file remain reachable.
type Content interface {
	write(w *storage.Writer) error
	kind() ContentKind
}

// Unknown preserves a section whose kind was not recognized: the header
// remainder and content bytes are captured verbatim and re-emitted as-is.
type Unknown struct {
	Kind       ContentKind
	HeaderData []byte
	ContentData []byte
}

func readUnknown(r *storage.Reader, header Header) (*Unknown, error) {
	headerData := make([]byte, header.RemainingSize())
	if err := r.ReadFull(headerData); err != nil {
		return nil, err
	}
	contentData := make([]byte, header.ContentSize())
	if err := r.ReadFull(contentData); err != nil {
		return nil, err
	}
	return &Unknown{Kind: header.Kind, HeaderData: headerData, ContentData: contentData}, nil
}

func (u *Unknown) write(w *storage.Writer) error {
	if err := w.WriteBytes(u.HeaderData); err != nil {
		return err
	}
	return w.WriteBytes(u.ContentData)
}

func (u *Unknown) kind() ContentKind { return u.Kind }

// readContent dispatches on header.Kind to decode the section body that
// follows the header.
func readContent(r *storage.Reader, header Header) (Content, error) {
	switch header.Kind {
	case KindBeatGrid:
		return readBeatGrid(r)
	case KindCueList:
		return readCueList(r)
	case KindExtendedCueList:
		return readExtendedCueList(r)
	case KindPath:
		return readPath(r, header)
	case KindVBR:
		return readVBR(r, header)
	case KindWaveformPreview:
		return readWaveformPreview(r, header)
	case KindTinyWaveformPreview:
		return readTinyWaveformPreview(r, header)
	case KindWaveformDetail:
		return readWaveformDetail(r, header)
	case KindWaveformColorPreview:
		return readWaveformColorPreview(r, header)
	case KindWaveformColorDetail:
		return readWaveformColorDetail(r, header)
	case KindSongStructure:
		return readSongStructure(r, header)
	default:
		return readUnknown(r, header)
	}
}
