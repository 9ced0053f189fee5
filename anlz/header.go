// Package anlz implements the tagged-section analysis file engine used by
// Rekordbox's ANLZ0000.DAT/.EXT/.2EX files: a leading "PMAI" file section
// wrapping a sequence of self-describing subsections (beat grids, cue
// lists, waveforms, song structure) that must remain individually
// addressable even when a subsection's kind is not recognized.
package anlz

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// ContentKind identifies the schema of a section's content by its 4-byte
// big-endian ASCII magic. Kinds this module does not recognize decode to
// Unknown, carrying the raw magic bytes so the section can still be
// skipped and re-emitted verbatim.
type ContentKind struct {
	code    uint32
	unknown bool
}

var (
	KindFile                 = ContentKind{code: kindCode("PMAI")}
	KindBeatGrid             = ContentKind{code: kindCode("PQTZ")}
	KindCueList              = ContentKind{code: kindCode("PCOB")}
	KindExtendedCueList      = ContentKind{code: kindCode("PCO2")}
	KindExtendedCue          = ContentKind{code: kindCode("PCP2")}
	KindCue                  = ContentKind{code: kindCode("PCPT")}
	KindPath                 = ContentKind{code: kindCode("PPTH")}
	KindVBR                  = ContentKind{code: kindCode("PVBR")}
	KindWaveformPreview      = ContentKind{code: kindCode("PWAV")}
	KindTinyWaveformPreview  = ContentKind{code: kindCode("PWV2")}
	KindWaveformDetail       = ContentKind{code: kindCode("PWV3")}
	KindWaveformColorPreview = ContentKind{code: kindCode("PWV4")}
	KindWaveformColorDetail  = ContentKind{code: kindCode("PWV5")}
	KindSongStructure        = ContentKind{code: kindCode("PSSI")}
)

func kindCode(magic string) uint32 {
	b := []byte(magic)
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// NewUnknownKind wraps a raw 4-byte magic that does not match any kind
// this module recognizes.
func NewUnknownKind(code uint32) ContentKind {
	return ContentKind{code: code, unknown: true}
}

// Code returns the kind's raw 4-byte magic as a big-endian uint32.
func (k ContentKind) Code() uint32 { return k.code }

// IsUnknown reports whether the kind fell through to the Unknown fallback.
func (k ContentKind) IsUnknown() bool { return k.unknown }

func (k ContentKind) String() string {
	b := []byte{byte(k.code >> 24), byte(k.code >> 16), byte(k.code >> 8), byte(k.code)}
	return string(b)
}

var knownKinds = map[uint32]ContentKind{
	KindFile.code:                 KindFile,
	KindBeatGrid.code:             KindBeatGrid,
	KindCueList.code:              KindCueList,
	KindExtendedCueList.code:      KindExtendedCueList,
	KindExtendedCue.code:          KindExtendedCue,
	KindCue.code:                  KindCue,
	KindPath.code:                 KindPath,
	KindVBR.code:                  KindVBR,
	KindWaveformPreview.code:      KindWaveformPreview,
	KindTinyWaveformPreview.code:  KindTinyWaveformPreview,
	KindWaveformDetail.code:       KindWaveformDetail,
	KindWaveformColorPreview.code: KindWaveformColorPreview,
	KindWaveformColorDetail.code:  KindWaveformColorDetail,
	KindSongStructure.code:        KindSongStructure,
}

func readContentKind(r *storage.Reader) (ContentKind, error) {
	code, err := r.ReadUint32BE()
	if err != nil {
		return ContentKind{}, err
	}
	if k, ok := knownKinds[code]; ok {
		return k, nil
	}
	return NewUnknownKind(code), nil
}

func (k ContentKind) write(w *storage.Writer) error {
	return w.WriteUint32BE(k.code)
}

// Header is the 12-byte leading header of every section: its kind, the
// length of the header itself (including kind/size/total_size), and the
// length of the whole section (header plus content).
type Header struct {
	Kind      ContentKind
	Size      uint32
	TotalSize uint32
}

// RemainingSize is the number of header bytes beyond the three fixed
// fields: opaque, kind-specific leading header data.
func (h Header) RemainingSize() uint32 { return h.Size - 12 }

// ContentSize is the number of bytes making up the section's content,
// following the header in full.
func (h Header) ContentSize() uint32 { return h.TotalSize - h.Size }

// ReadHeader reads a section header.
func ReadHeader(r *storage.Reader) (Header, error) {
	kind, err := readContentKind(r)
	if err != nil {
		return Header{}, err
	}
	size, err := r.ReadUint32BE()
	if err != nil {
		return Header{}, err
	}
	totalSize, err := r.ReadUint32BE()
	if err != nil {
		return Header{}, err
	}
	if size < 12 || totalSize < size {
		return Header{}, rberr.New(rberr.KindStructural, "section %v has implausible header/total size (%d/%d)", kind, size, totalSize)
	}
	return Header{Kind: kind, Size: size, TotalSize: totalSize}, nil
}

// Write writes a section header.
func (h Header) Write(w *storage.Writer) error {
	if err := h.Kind.write(w); err != nil {
		return err
	}
	if err := w.WriteUint32BE(h.Size); err != nil {
		return err
	}
	return w.WriteUint32BE(h.TotalSize)
}
