package anlz

import (
	"rekordcrate/internal/colorindex"
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// CueListType distinguishes memory cues/loops from hot cues/loops.
type CueListType uint32

const (
	MemoryCues CueListType = 0
	HotCues    CueListType = 1
)

// CueType distinguishes a single point cue from a loop.
type CueType uint8

const (
	CuePoint CueType = 1
	CueLoop  CueType = 2
)

func readCueType(r *storage.Reader) (CueType, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	if v != uint8(CuePoint) && v != uint8(CueLoop) {
		return 0, rberr.New(rberr.KindStructural, "unrecognized cue type %#x", v)
	}
	return CueType(v), nil
}

// Cue is a single memory or hot cue (or loop) entry inside a CueList
// section.
type Cue struct {
	Header     Header
	HotCue     uint32
	Status     uint32
	Unknown1   uint32 // seems to always be 0x00100000
	OrderFirst uint16
	OrderLast  uint16
	CueType    CueType
	Unknown2   uint8  // seems to always be 0
	Unknown3   uint16 // seems to always be 0x03E8
	Time       uint32
	LoopTime   uint32
	Unknown4   uint32
	Unknown5   uint32
	Unknown6   uint32
	Unknown7   uint32
}

func readCue(r *storage.Reader) (Cue, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return Cue{}, err
	}
	hotCue, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	status, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	unknown1, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	orderFirst, err := r.ReadUint16BE()
	if err != nil {
		return Cue{}, err
	}
	orderLast, err := r.ReadUint16BE()
	if err != nil {
		return Cue{}, err
	}
	cueType, err := readCueType(r)
	if err != nil {
		return Cue{}, err
	}
	unknown2, err := r.ReadUint8()
	if err != nil {
		return Cue{}, err
	}
	unknown3, err := r.ReadUint16BE()
	if err != nil {
		return Cue{}, err
	}
	time, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	loopTime, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	unknown4, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	unknown5, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	unknown6, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	unknown7, err := r.ReadUint32BE()
	if err != nil {
		return Cue{}, err
	}
	return Cue{
		Header: header, HotCue: hotCue, Status: status, Unknown1: unknown1,
		OrderFirst: orderFirst, OrderLast: orderLast, CueType: cueType,
		Unknown2: unknown2, Unknown3: unknown3, Time: time, LoopTime: loopTime,
		Unknown4: unknown4, Unknown5: unknown5, Unknown6: unknown6, Unknown7: unknown7,
	}, nil
}

func (c Cue) write(w *storage.Writer) error {
	if err := c.Header.Write(w); err != nil {
		return err
	}
	for _, v := range []uint32{c.HotCue, c.Status, c.Unknown1} {
		if err := w.WriteUint32BE(v); err != nil {
			return err
		}
	}
	if err := w.WriteUint16BE(c.OrderFirst); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.OrderLast); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.CueType)); err != nil {
		return err
	}
	if err := w.WriteUint8(c.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.Unknown3); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.Time); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.LoopTime); err != nil {
		return err
	}
	for _, v := range []uint32{c.Unknown4, c.Unknown5, c.Unknown6, c.Unknown7} {
		if err := w.WriteUint32BE(v); err != nil {
			return err
		}
	}
	return nil
}

// ExtendedCue is the Nexus-2-era cue entry carrying a comment, a color
// and an RGB triple in addition to the fields CueList's Cue already has.
type ExtendedCue struct {
	Header          Header
	HotCue          uint32
	CueType         CueType
	Unknown1        uint8  // seems to always be 0
	Unknown2        uint16 // seems to always be 0x03E8
	Time            uint32
	LoopTime        uint32
	Color           colorindex.ColorIndex
	Unknown3        uint8
	Unknown4        uint16
	Unknown5        uint32
	LoopNumerator   uint16
	LoopDenominator uint16
	Comment         string
	HotCueColorIndex uint8
	HotCueColorRGB  [3]uint8
	Unknown6        uint32
	Unknown7        uint32
	Unknown8        uint32
	Unknown9        uint32
	Unknown10       uint32
}

func readExtendedCue(r *storage.Reader) (ExtendedCue, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return ExtendedCue{}, err
	}
	hotCue, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	cueType, err := readCueType(r)
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown1, err := r.ReadUint8()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown2, err := r.ReadUint16BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	time, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	loopTime, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	color, err := r.ReadUint8()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown3, err := r.ReadUint8()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown4, err := r.ReadUint16BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown5, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	loopNumerator, err := r.ReadUint16BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	loopDenominator, err := r.ReadUint16BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	lenComment, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	comment, err := readWideString(r, lenComment)
	if err != nil {
		return ExtendedCue{}, err
	}
	hotCueColorIndex, err := r.ReadUint8()
	if err != nil {
		return ExtendedCue{}, err
	}
	var rgb [3]uint8
	for i := range rgb {
		rgb[i], err = r.ReadUint8()
		if err != nil {
			return ExtendedCue{}, err
		}
	}
	unknown6, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown7, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown8, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown9, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	unknown10, err := r.ReadUint32BE()
	if err != nil {
		return ExtendedCue{}, err
	}
	return ExtendedCue{
		Header: header, HotCue: hotCue, CueType: cueType, Unknown1: unknown1,
		Unknown2: unknown2, Time: time, LoopTime: loopTime, Color: colorindex.ColorIndex(color),
		Unknown3: unknown3, Unknown4: unknown4, Unknown5: unknown5,
		LoopNumerator: loopNumerator, LoopDenominator: loopDenominator, Comment: comment,
		HotCueColorIndex: hotCueColorIndex, HotCueColorRGB: rgb,
		Unknown6: unknown6, Unknown7: unknown7, Unknown8: unknown8, Unknown9: unknown9, Unknown10: unknown10,
	}, nil
}

func (c ExtendedCue) write(w *storage.Writer) error {
	if err := c.Header.Write(w); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.HotCue); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.CueType)); err != nil {
		return err
	}
	if err := w.WriteUint8(c.Unknown1); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.Unknown2); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.Time); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.LoopTime); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.Color)); err != nil {
		return err
	}
	if err := w.WriteUint8(c.Unknown3); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.Unknown4); err != nil {
		return err
	}
	if err := w.WriteUint32BE(c.Unknown5); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.LoopNumerator); err != nil {
		return err
	}
	if err := w.WriteUint16BE(c.LoopDenominator); err != nil {
		return err
	}
	lenPos := w.Pos()
	if err := w.WriteUint32BE(0); err != nil {
		return err
	}
	lenComment, err := writeWideString(w, c.Comment)
	if err != nil {
		return err
	}
	end := w.Pos()
	if err := w.SeekTo(lenPos); err != nil {
		return err
	}
	if err := w.WriteUint32BE(lenComment); err != nil {
		return err
	}
	if err := w.SeekTo(end); err != nil {
		return err
	}
	if err := w.WriteUint8(c.HotCueColorIndex); err != nil {
		return err
	}
	for _, v := range c.HotCueColorRGB {
		if err := w.WriteUint8(v); err != nil {
			return err
		}
	}
	for _, v := range []uint32{c.Unknown6, c.Unknown7, c.Unknown8, c.Unknown9, c.Unknown10} {
		if err := w.WriteUint32BE(v); err != nil {
			return err
		}
	}
	return nil
}

// CueList is a section listing memory or hot cues/loops in their
// original (non-extended) form.
type CueList struct {
	ListType    CueListType
	Unknown     uint16
	MemoryCount uint32
	Cues        []Cue
}

func readCueList(r *storage.Reader) (*CueList, error) {
	listType, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	lenCues, err := r.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	memoryCount, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	cues := make([]Cue, lenCues)
	for i := range cues {
		cues[i], err = readCue(r)
		if err != nil {
			return nil, err
		}
	}
	return &CueList{ListType: CueListType(listType), Unknown: unknown, MemoryCount: memoryCount, Cues: cues}, nil
}

func (l *CueList) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(uint32(l.ListType)); err != nil {
		return err
	}
	if err := w.WriteUint16BE(l.Unknown); err != nil {
		return err
	}
	if err := w.WriteUint16BE(uint16(len(l.Cues))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(l.MemoryCount); err != nil {
		return err
	}
	for _, c := range l.Cues {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (l *CueList) kind() ContentKind { return KindCueList }

// ExtendedCueList is the Nexus-2-era variant of CueList whose entries
// carry comments and colors.
type ExtendedCueList struct {
	ListType CueListType
	Unknown  uint16
	Cues     []ExtendedCue
}

func readExtendedCueList(r *storage.Reader) (*ExtendedCueList, error) {
	listType, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	lenCues, err := r.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	if unknown != 0 {
		return nil, rberr.New(rberr.KindStructural, "extended cue list reserved field is %#x, want 0", unknown)
	}
	cues := make([]ExtendedCue, lenCues)
	for i := range cues {
		cues[i], err = readExtendedCue(r)
		if err != nil {
			return nil, err
		}
	}
	return &ExtendedCueList{ListType: CueListType(listType), Unknown: unknown, Cues: cues}, nil
}

func (l *ExtendedCueList) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(uint32(l.ListType)); err != nil {
		return err
	}
	if err := w.WriteUint16BE(uint16(len(l.Cues))); err != nil {
		return err
	}
	if err := w.WriteUint16BE(l.Unknown); err != nil {
		return err
	}
	for _, c := range l.Cues {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (l *ExtendedCueList) kind() ContentKind { return KindExtendedCueList }
