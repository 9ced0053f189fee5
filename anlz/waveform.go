package anlz

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// WaveformPreviewColumn is one column of a fixed-width monochrome preview:
// a 5-bit pixel height packed with a 3-bit whiteness shade into a single
// byte (height in the high bits, whiteness in the low bits).
type WaveformPreviewColumn struct {
	Height    uint8 // 0-31
	Whiteness uint8 // 0-7
}

func readWaveformPreviewColumn(r *storage.Reader) (WaveformPreviewColumn, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return WaveformPreviewColumn{}, err
	}
	return WaveformPreviewColumn{Height: b >> 3, Whiteness: b & 0x07}, nil
}

func (c WaveformPreviewColumn) write(w *storage.Writer) error {
	return w.WriteUint8((c.Height&0x1F)<<3 | (c.Whiteness & 0x07))
}

// TinyWaveformPreviewColumn is one column of the smaller preview used by
// the CDJ-900: 4 unused high bits followed by a 4-bit pixel height.
type TinyWaveformPreviewColumn struct {
	Height uint8 // 0-15
}

func readTinyWaveformPreviewColumn(r *storage.Reader) (TinyWaveformPreviewColumn, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return TinyWaveformPreviewColumn{}, err
	}
	return TinyWaveformPreviewColumn{Height: b & 0x0F}, nil
}

func (c TinyWaveformPreviewColumn) write(w *storage.Writer) error {
	return w.WriteUint8(c.Height & 0x0F)
}

// WaveformColorPreviewColumn is one column of a colored preview: two
// unknown bytes that somehow encode whiteness, followed by four
// frequency-band energy levels.
type WaveformColorPreviewColumn struct {
	Unknown1            uint8
	Unknown2            uint8
	EnergyBottomHalf    uint8 // <10 KHz
	EnergyBottomThird   uint8
	EnergyMidThird      uint8
	EnergyTopThird      uint8
}

func readWaveformColorPreviewColumn(r *storage.Reader) (WaveformColorPreviewColumn, error) {
	var vals [6]uint8
	for i := range vals {
		v, err := r.ReadUint8()
		if err != nil {
			return WaveformColorPreviewColumn{}, err
		}
		vals[i] = v
	}
	return WaveformColorPreviewColumn{
		Unknown1: vals[0], Unknown2: vals[1],
		EnergyBottomHalf: vals[2], EnergyBottomThird: vals[3],
		EnergyMidThird: vals[4], EnergyTopThird: vals[5],
	}, nil
}

func (c WaveformColorPreviewColumn) write(w *storage.Writer) error {
	for _, v := range []uint8{c.Unknown1, c.Unknown2, c.EnergyBottomHalf, c.EnergyBottomThird, c.EnergyMidThird, c.EnergyTopThird} {
		if err := w.WriteUint8(v); err != nil {
			return err
		}
	}
	return nil
}

// WaveformColorDetailColumn is one column of a variable-width colored
// detail waveform: 3-bit R/G/B, a 5-bit height and 2 unused bits, packed
// big-endian MSB-first into a 16-bit word in that order.
type WaveformColorDetailColumn struct {
	Red    uint8 // 0-7
	Green  uint8 // 0-7
	Blue   uint8 // 0-7
	Height uint8 // 0-31
}

func readWaveformColorDetailColumn(r *storage.Reader) (WaveformColorDetailColumn, error) {
	v, err := r.ReadUint16BE()
	if err != nil {
		return WaveformColorDetailColumn{}, err
	}
	return WaveformColorDetailColumn{
		Red:    uint8(v>>13) & 0x07,
		Green:  uint8(v>>10) & 0x07,
		Blue:   uint8(v>>7) & 0x07,
		Height: uint8(v>>2) & 0x1F,
	}, nil
}

func (c WaveformColorDetailColumn) write(w *storage.Writer) error {
	v := uint16(c.Red&0x07)<<13 | uint16(c.Green&0x07)<<10 | uint16(c.Blue&0x07)<<7 | uint16(c.Height&0x1F)<<2
	return w.WriteUint16BE(v)
}

// WaveformPreview is the fixed-width monochrome preview waveform.
type WaveformPreview struct {
	Unknown uint32 // apparently always 0x00100000
	Data    []WaveformPreviewColumn
}

func readWaveformPreview(r *storage.Reader, header Header) (*WaveformPreview, error) {
	lenPreview, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenPreview != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "waveform preview length %d does not match content size %d", lenPreview, header.ContentSize())
	}
	unknown, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	data := make([]WaveformPreviewColumn, lenPreview)
	for i := range data {
		data[i], err = readWaveformPreviewColumn(r)
		if err != nil {
			return nil, err
		}
	}
	return &WaveformPreview{Unknown: unknown, Data: data}, nil
}

func (p *WaveformPreview) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(uint32(len(p.Data))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(p.Unknown); err != nil {
		return err
	}
	for _, c := range p.Data {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *WaveformPreview) kind() ContentKind { return KindWaveformPreview }

// TinyWaveformPreview is the smaller version of WaveformPreview used by
// the CDJ-900.
type TinyWaveformPreview struct {
	Unknown uint32
	Data    []TinyWaveformPreviewColumn
}

func readTinyWaveformPreview(r *storage.Reader, header Header) (*TinyWaveformPreview, error) {
	lenPreview, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenPreview != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "tiny waveform preview length %d does not match content size %d", lenPreview, header.ContentSize())
	}
	unknown, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	data := make([]TinyWaveformPreviewColumn, lenPreview)
	for i := range data {
		data[i], err = readTinyWaveformPreviewColumn(r)
		if err != nil {
			return nil, err
		}
	}
	return &TinyWaveformPreview{Unknown: unknown, Data: data}, nil
}

func (p *TinyWaveformPreview) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(uint32(len(p.Data))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(p.Unknown); err != nil {
		return err
	}
	for _, c := range p.Data {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *TinyWaveformPreview) kind() ContentKind { return KindTinyWaveformPreview }

// WaveformDetail is the variable-width large monochrome waveform used in
// .EXT files: one entry per half-frame of audio (150 entries/second).
type WaveformDetail struct {
	Unknown uint32 // apparently always 0x00960000
	Data    []WaveformPreviewColumn
}

func readWaveformDetail(r *storage.Reader, header Header) (*WaveformDetail, error) {
	lenEntryBytes, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes != 1 {
		return nil, rberr.New(rberr.KindStructural, "waveform detail entry size %d, want 1", lenEntryBytes)
	}
	lenEntries, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes*lenEntries != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "waveform detail entry count does not match content size")
	}
	unknown, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if unknown != 0x00960000 {
		return nil, rberr.New(rberr.KindStructural, "waveform detail unknown field is %#x, want 0x00960000", unknown)
	}
	data := make([]WaveformPreviewColumn, lenEntries)
	for i := range data {
		data[i], err = readWaveformPreviewColumn(r)
		if err != nil {
			return nil, err
		}
	}
	return &WaveformDetail{Unknown: unknown, Data: data}, nil
}

func (d *WaveformDetail) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(1); err != nil {
		return err
	}
	if err := w.WriteUint32BE(uint32(len(d.Data))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(d.Unknown); err != nil {
		return err
	}
	for _, c := range d.Data {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (d *WaveformDetail) kind() ContentKind { return KindWaveformDetail }

// WaveformColorPreview is the fixed-width colored preview waveform.
type WaveformColorPreview struct {
	Unknown uint32
	Data    []WaveformColorPreviewColumn
}

func readWaveformColorPreview(r *storage.Reader, header Header) (*WaveformColorPreview, error) {
	lenEntryBytes, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes != 6 {
		return nil, rberr.New(rberr.KindStructural, "waveform color preview entry size %d, want 6", lenEntryBytes)
	}
	lenEntries, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes*lenEntries != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "waveform color preview entry count does not match content size")
	}
	unknown, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	data := make([]WaveformColorPreviewColumn, lenEntries)
	for i := range data {
		data[i], err = readWaveformColorPreviewColumn(r)
		if err != nil {
			return nil, err
		}
	}
	return &WaveformColorPreview{Unknown: unknown, Data: data}, nil
}

func (p *WaveformColorPreview) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(6); err != nil {
		return err
	}
	if err := w.WriteUint32BE(uint32(len(p.Data))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(p.Unknown); err != nil {
		return err
	}
	for _, c := range p.Data {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *WaveformColorPreview) kind() ContentKind { return KindWaveformColorPreview }

// WaveformColorDetail is the variable-width large colored waveform used
// in .EXT files.
type WaveformColorDetail struct {
	Unknown uint32
	Data    []WaveformColorDetailColumn
}

func readWaveformColorDetail(r *storage.Reader, header Header) (*WaveformColorDetail, error) {
	lenEntryBytes, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes != 2 {
		return nil, rberr.New(rberr.KindStructural, "waveform color detail entry size %d, want 2", lenEntryBytes)
	}
	lenEntries, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes*lenEntries != header.ContentSize() {
		return nil, rberr.New(rberr.KindStructural, "waveform color detail entry count does not match content size")
	}
	unknown, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	data := make([]WaveformColorDetailColumn, lenEntries)
	for i := range data {
		data[i], err = readWaveformColorDetailColumn(r)
		if err != nil {
			return nil, err
		}
	}
	return &WaveformColorDetail{Unknown: unknown, Data: data}, nil
}

func (d *WaveformColorDetail) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(2); err != nil {
		return err
	}
	if err := w.WriteUint32BE(uint32(len(d.Data))); err != nil {
		return err
	}
	if err := w.WriteUint32BE(d.Unknown); err != nil {
		return err
	}
	for _, c := range d.Data {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return nil
}

func (d *WaveformColorDetail) kind() ContentKind { return KindWaveformColorDetail }
