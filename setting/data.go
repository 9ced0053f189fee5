package setting

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Dialect names which of the four `*SETTING.DAT` payload shapes a file
// holds. Unlike every other length-prefixed schema in this module, the
// payload's own byte length does not uniquely determine its dialect (the
// device-local and export-local "My Setting" payloads are both 40 bytes),
// so the caller must say which file it opened, mirroring Rekordbox's own
// filename-based convention (DEVSETTING.DAT, DJMMYSETTING.DAT,
// MYSETTING.DAT, MYSETTING2.DAT).
type Dialect int

const (
	DialectDevSetting Dialect = iota
	DialectDJMMySetting
	DialectMySetting
	DialectMySetting2
)

// SettingData is the dialect-specific payload of a Setting file.
type SettingData interface {
	write(w *storage.Writer) error
	size() uint32
	dialect() Dialect
}

var devSettingUnknown1 = [9]byte{0x78, 0x56, 0x34, 0x12, 0x01, 0x00, 0x00, 0x00, 0x01}

// DevSetting is the payload of a DEVSETTING.DAT file.
type DevSetting struct {
	OverviewWaveformType    OverviewWaveformType
	WaveformColor           WaveformColor
	KeyDisplayFormat        KeyDisplayFormat
	WaveformCurrentPosition WaveformCurrentPosition
}

// DefaultDevSetting matches Rekordbox 6.6.1's factory defaults.
func DefaultDevSetting() *DevSetting {
	return &DevSetting{
		OverviewWaveformType:    DefaultOverviewWaveformType,
		WaveformColor:           DefaultWaveformColor,
		KeyDisplayFormat:        DefaultKeyDisplayFormat,
		WaveformCurrentPosition: DefaultWaveformCurrentPosition,
	}
}

func readDevSetting(r *storage.Reader) (*DevSetting, error) {
	var unknown1 [9]byte
	if err := r.ReadFull(unknown1[:]); err != nil {
		return nil, err
	}
	if unknown1 != devSettingUnknown1 {
		return nil, rberr.New(rberr.KindStructural, "DevSetting unknown1 field mismatch: %x", unknown1)
	}
	overviewWaveformType, err := readEnum8(r, validOverviewWaveformType, "OverviewWaveformType")
	if err != nil {
		return nil, err
	}
	waveformColor, err := readEnum8(r, validWaveformColor, "WaveformColor")
	if err != nil {
		return nil, err
	}
	unknown2, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if unknown2 != 0x01 {
		return nil, rberr.New(rberr.KindStructural, "DevSetting unknown2 field is 0x%02x, want 0x01", unknown2)
	}
	keyDisplayFormat, err := readEnum8(r, validKeyDisplayFormat, "KeyDisplayFormat")
	if err != nil {
		return nil, err
	}
	waveformCurrentPosition, err := readEnum8(r, validWaveformCurrentPosition, "WaveformCurrentPosition")
	if err != nil {
		return nil, err
	}
	var unknown3 [18]byte
	if err := r.ReadFull(unknown3[:]); err != nil {
		return nil, err
	}
	if unknown3 != ([18]byte{}) {
		return nil, rberr.New(rberr.KindStructural, "DevSetting unknown3 field is not all zero: %x", unknown3)
	}
	return &DevSetting{
		OverviewWaveformType:    overviewWaveformType,
		WaveformColor:           waveformColor,
		KeyDisplayFormat:        keyDisplayFormat,
		WaveformCurrentPosition: waveformCurrentPosition,
	}, nil
}

func (d *DevSetting) write(w *storage.Writer) error {
	if err := w.WriteBytes(devSettingUnknown1[:]); err != nil {
		return err
	}
	if err := writeEnum8(w, d.OverviewWaveformType); err != nil {
		return err
	}
	if err := writeEnum8(w, d.WaveformColor); err != nil {
		return err
	}
	if err := w.WriteUint8(0x01); err != nil {
		return err
	}
	if err := writeEnum8(w, d.KeyDisplayFormat); err != nil {
		return err
	}
	if err := writeEnum8(w, d.WaveformCurrentPosition); err != nil {
		return err
	}
	return w.WriteBytes(make([]byte, 18))
}

func (d *DevSetting) size() uint32    { return 32 }
func (d *DevSetting) dialect() Dialect { return DialectDevSetting }

var djmMySettingUnknown1 = [12]byte{0x78, 0x56, 0x34, 0x12, 0x01, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00}

// DJMMySetting is the payload of a DJMMYSETTING.DAT file.
type DJMMySetting struct {
	ChannelFaderCurve           ChannelFaderCurve
	CrossfaderCurve             CrossfaderCurve
	HeadphonesPreEQ             HeadphonesPreEQ
	HeadphonesMonoSplit         HeadphonesMonoSplit
	BeatFXQuantize              BeatFXQuantize
	MicLowCut                   MicLowCut
	TalkOverMode                TalkOverMode
	TalkOverLevel               TalkOverLevel
	MidiChannel                 MidiChannel
	MidiButtonType              MidiButtonType
	DisplayBrightness           MixerDisplayBrightness
	IndicatorBrightness         MixerIndicatorBrightness
	ChannelFaderCurveLongFader  ChannelFaderCurveLongFader
}

// DefaultDJMMySetting matches Rekordbox 6.6.1's factory defaults.
func DefaultDJMMySetting() *DJMMySetting {
	return &DJMMySetting{
		ChannelFaderCurve:          DefaultChannelFaderCurve,
		CrossfaderCurve:            DefaultCrossfaderCurve,
		HeadphonesPreEQ:            DefaultHeadphonesPreEQ,
		HeadphonesMonoSplit:        DefaultHeadphonesMonoSplit,
		BeatFXQuantize:             DefaultBeatFXQuantize,
		MicLowCut:                  DefaultMicLowCut,
		TalkOverMode:               DefaultTalkOverMode,
		TalkOverLevel:              DefaultTalkOverLevel,
		MidiChannel:                DefaultMidiChannel,
		MidiButtonType:             DefaultMidiButtonType,
		DisplayBrightness:          DefaultMixerDisplayBrightness,
		IndicatorBrightness:        DefaultMixerIndicatorBrightness,
		ChannelFaderCurveLongFader: DefaultChannelFaderCurveLongFader,
	}
}

func readDJMMySetting(r *storage.Reader) (*DJMMySetting, error) {
	var unknown1 [12]byte
	if err := r.ReadFull(unknown1[:]); err != nil {
		return nil, err
	}
	d := &DJMMySetting{}
	var err error
	if d.ChannelFaderCurve, err = readEnum8(r, validChannelFaderCurve, "ChannelFaderCurve"); err != nil {
		return nil, err
	}
	if d.CrossfaderCurve, err = readEnum8(r, validCrossfaderCurve, "CrossfaderCurve"); err != nil {
		return nil, err
	}
	if d.HeadphonesPreEQ, err = readEnum8(r, validHeadphonesPreEQ, "HeadphonesPreEQ"); err != nil {
		return nil, err
	}
	if d.HeadphonesMonoSplit, err = readEnum8(r, validHeadphonesMonoSplit, "HeadphonesMonoSplit"); err != nil {
		return nil, err
	}
	if d.BeatFXQuantize, err = readEnum8(r, validBeatFXQuantize, "BeatFXQuantize"); err != nil {
		return nil, err
	}
	if d.MicLowCut, err = readEnum8(r, validMicLowCut, "MicLowCut"); err != nil {
		return nil, err
	}
	if d.TalkOverMode, err = readEnum8(r, validTalkOverMode, "TalkOverMode"); err != nil {
		return nil, err
	}
	if d.TalkOverLevel, err = readEnum8(r, validTalkOverLevel, "TalkOverLevel"); err != nil {
		return nil, err
	}
	if d.MidiChannel, err = readEnum8(r, validMidiChannel, "MidiChannel"); err != nil {
		return nil, err
	}
	if d.MidiButtonType, err = readEnum8(r, validMidiButtonType, "MidiButtonType"); err != nil {
		return nil, err
	}
	if d.DisplayBrightness, err = readEnum8(r, validMixerDisplayBrightness, "MixerDisplayBrightness"); err != nil {
		return nil, err
	}
	if d.IndicatorBrightness, err = readEnum8(r, validMixerIndicatorBrightness, "MixerIndicatorBrightness"); err != nil {
		return nil, err
	}
	if d.ChannelFaderCurveLongFader, err = readEnum8(r, validChannelFaderCurveLongFader, "ChannelFaderCurveLongFader"); err != nil {
		return nil, err
	}
	var unknown2 [27]byte
	if err := r.ReadFull(unknown2[:]); err != nil {
		return nil, err
	}
	if unknown2 != ([27]byte{}) {
		return nil, rberr.New(rberr.KindStructural, "DJMMySetting unknown2 field is not all zero: %x", unknown2)
	}
	return d, nil
}

func (d *DJMMySetting) write(w *storage.Writer) error {
	if err := w.WriteBytes(djmMySettingUnknown1[:]); err != nil {
		return err
	}
	for _, err := range []error{
		writeEnum8(w, d.ChannelFaderCurve),
		writeEnum8(w, d.CrossfaderCurve),
		writeEnum8(w, d.HeadphonesPreEQ),
		writeEnum8(w, d.HeadphonesMonoSplit),
		writeEnum8(w, d.BeatFXQuantize),
		writeEnum8(w, d.MicLowCut),
		writeEnum8(w, d.TalkOverMode),
		writeEnum8(w, d.TalkOverLevel),
		writeEnum8(w, d.MidiChannel),
		writeEnum8(w, d.MidiButtonType),
		writeEnum8(w, d.DisplayBrightness),
		writeEnum8(w, d.IndicatorBrightness),
		writeEnum8(w, d.ChannelFaderCurveLongFader),
	} {
		if err != nil {
			return err
		}
	}
	return w.WriteBytes(make([]byte, 27))
}

func (d *DJMMySetting) size() uint32    { return 52 }
func (d *DJMMySetting) dialect() Dialect { return DialectDJMMySetting }

// MySetting is the payload of a MYSETTING.DAT file.
type MySetting struct {
	OnAirDisplay         OnAirDisplay
	LCDBrightness        LCDBrightness
	Quantize             Quantize
	AutoCueLevel         AutoCueLevel
	Language             Language
	JogRingBrightness    JogRingBrightness
	JogRingIndicator     JogRingIndicator
	SlipFlashing         SlipFlashing
	DiscSlotIllumination DiscSlotIllumination
	EjectLock            EjectLock
	Sync                 Sync
	PlayMode             PlayMode
	QuantizeBeatValue    QuantizeBeatValue
	HotCueAutoLoad       HotCueAutoLoad
	HotCueColor          HotCueColor
	NeedleLock           NeedleLock
	TimeMode             TimeMode
	JogMode              JogMode
	AutoCue              AutoCue
	MasterTempo          MasterTempo
	TempoRange           TempoRange
	PhaseMeter           PhaseMeter
}

// DefaultMySetting matches Rekordbox 6.6.1's factory defaults.
func DefaultMySetting() *MySetting {
	return &MySetting{
		OnAirDisplay:         DefaultOnAirDisplay,
		LCDBrightness:        DefaultLCDBrightness,
		Quantize:             DefaultQuantize,
		AutoCueLevel:         DefaultAutoCueLevel,
		Language:             DefaultLanguage,
		JogRingBrightness:    DefaultJogRingBrightness,
		JogRingIndicator:     DefaultJogRingIndicator,
		SlipFlashing:         DefaultSlipFlashing,
		DiscSlotIllumination: DefaultDiscSlotIllumination,
		EjectLock:            DefaultEjectLock,
		Sync:                 DefaultSync,
		PlayMode:             DefaultPlayMode,
		QuantizeBeatValue:    DefaultQuantizeBeatValue,
		HotCueAutoLoad:       DefaultHotCueAutoLoad,
		HotCueColor:          DefaultHotCueColor,
		NeedleLock:           DefaultNeedleLock,
		TimeMode:             DefaultTimeMode,
		JogMode:              DefaultJogMode,
		AutoCue:              DefaultAutoCue,
		MasterTempo:          DefaultMasterTempo,
		TempoRange:           DefaultTempoRange,
		PhaseMeter:           DefaultPhaseMeter,
	}
}

func readMySetting(r *storage.Reader) (*MySetting, error) {
	var unknown1 [8]byte
	if err := r.ReadFull(unknown1[:]); err != nil {
		return nil, err
	}
	m := &MySetting{}
	var err error
	if m.OnAirDisplay, err = readEnum8(r, validOnAirDisplay, "OnAirDisplay"); err != nil {
		return nil, err
	}
	if m.LCDBrightness, err = readEnum8(r, validLCDBrightness, "LCDBrightness"); err != nil {
		return nil, err
	}
	if m.Quantize, err = readEnum8(r, validQuantize, "Quantize"); err != nil {
		return nil, err
	}
	if m.AutoCueLevel, err = readEnum8(r, validAutoCueLevel, "AutoCueLevel"); err != nil {
		return nil, err
	}
	if m.Language, err = readEnum8(r, validLanguage, "Language"); err != nil {
		return nil, err
	}
	if _, err = r.ReadUint8(); err != nil { // unknown2, unasserted
		return nil, err
	}
	if m.JogRingBrightness, err = readEnum8(r, validJogRingBrightness, "JogRingBrightness"); err != nil {
		return nil, err
	}
	if m.JogRingIndicator, err = readEnum8(r, validJogRingIndicator, "JogRingIndicator"); err != nil {
		return nil, err
	}
	if m.SlipFlashing, err = readEnum8(r, validSlipFlashing, "SlipFlashing"); err != nil {
		return nil, err
	}
	var unknown3 [3]byte
	if err := r.ReadFull(unknown3[:]); err != nil {
		return nil, err
	}
	if m.DiscSlotIllumination, err = readEnum8(r, validDiscSlotIllumination, "DiscSlotIllumination"); err != nil {
		return nil, err
	}
	if m.EjectLock, err = readEnum8(r, validEjectLock, "EjectLock"); err != nil {
		return nil, err
	}
	if m.Sync, err = readEnum8(r, validSync, "Sync"); err != nil {
		return nil, err
	}
	if m.PlayMode, err = readEnum8(r, validPlayMode, "PlayMode"); err != nil {
		return nil, err
	}
	if m.QuantizeBeatValue, err = readEnum8(r, validQuantizeBeatValue, "QuantizeBeatValue"); err != nil {
		return nil, err
	}
	if m.HotCueAutoLoad, err = readEnum8(r, validHotCueAutoLoad, "HotCueAutoLoad"); err != nil {
		return nil, err
	}
	if m.HotCueColor, err = readEnum8(r, validHotCueColor, "HotCueColor"); err != nil {
		return nil, err
	}
	unknown4, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	if unknown4 != 0 {
		return nil, rberr.New(rberr.KindStructural, "MySetting unknown4 field is 0x%04x, want 0", unknown4)
	}
	if m.NeedleLock, err = readEnum8(r, validNeedleLock, "NeedleLock"); err != nil {
		return nil, err
	}
	unknown5, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	if unknown5 != 0 {
		return nil, rberr.New(rberr.KindStructural, "MySetting unknown5 field is 0x%04x, want 0", unknown5)
	}
	if m.TimeMode, err = readEnum8(r, validTimeMode, "TimeMode"); err != nil {
		return nil, err
	}
	if m.JogMode, err = readEnum8(r, validJogMode, "JogMode"); err != nil {
		return nil, err
	}
	if m.AutoCue, err = readEnum8(r, validAutoCue, "AutoCue"); err != nil {
		return nil, err
	}
	if m.MasterTempo, err = readEnum8(r, validMasterTempo, "MasterTempo"); err != nil {
		return nil, err
	}
	if m.TempoRange, err = readEnum8(r, validTempoRange, "TempoRange"); err != nil {
		return nil, err
	}
	if m.PhaseMeter, err = readEnum8(r, validPhaseMeter, "PhaseMeter"); err != nil {
		return nil, err
	}
	unknown6, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	if unknown6 != 0 {
		return nil, rberr.New(rberr.KindStructural, "MySetting unknown6 field is 0x%04x, want 0", unknown6)
	}
	return m, nil
}

func (m *MySetting) write(w *storage.Writer) error {
	if err := w.WriteBytes([]byte{0x78, 0x56, 0x34, 0x12, 0x02, 0x00, 0x00, 0x00}); err != nil {
		return err
	}
	writers := []func() error{
		func() error { return writeEnum8(w, m.OnAirDisplay) },
		func() error { return writeEnum8(w, m.LCDBrightness) },
		func() error { return writeEnum8(w, m.Quantize) },
		func() error { return writeEnum8(w, m.AutoCueLevel) },
		func() error { return writeEnum8(w, m.Language) },
		func() error { return w.WriteUint8(0x01) },
		func() error { return writeEnum8(w, m.JogRingBrightness) },
		func() error { return writeEnum8(w, m.JogRingIndicator) },
		func() error { return writeEnum8(w, m.SlipFlashing) },
		func() error { return w.WriteBytes([]byte{0x01, 0x01, 0x01}) },
		func() error { return writeEnum8(w, m.DiscSlotIllumination) },
		func() error { return writeEnum8(w, m.EjectLock) },
		func() error { return writeEnum8(w, m.Sync) },
		func() error { return writeEnum8(w, m.PlayMode) },
		func() error { return writeEnum8(w, m.QuantizeBeatValue) },
		func() error { return writeEnum8(w, m.HotCueAutoLoad) },
		func() error { return writeEnum8(w, m.HotCueColor) },
		func() error { return w.WriteUint16LE(0) },
		func() error { return writeEnum8(w, m.NeedleLock) },
		func() error { return w.WriteUint16LE(0) },
		func() error { return writeEnum8(w, m.TimeMode) },
		func() error { return writeEnum8(w, m.JogMode) },
		func() error { return writeEnum8(w, m.AutoCue) },
		func() error { return writeEnum8(w, m.MasterTempo) },
		func() error { return writeEnum8(w, m.TempoRange) },
		func() error { return writeEnum8(w, m.PhaseMeter) },
		func() error { return w.WriteUint16LE(0) },
	}
	for _, wf := range writers {
		if err := wf(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MySetting) size() uint32    { return 40 }
func (m *MySetting) dialect() Dialect { return DialectMySetting }

// MySetting2 is the payload of a MYSETTING2.DAT file.
type MySetting2 struct {
	VinylSpeedAdjust   VinylSpeedAdjust
	JogDisplayMode     JogDisplayMode
	PadButtonBrightness PadButtonBrightness
	JogLCDBrightness   JogLCDBrightness
	WaveformDivisions  WaveformDivisions
	Waveform           Waveform
	BeatJumpBeatValue  BeatJumpBeatValue
}

// DefaultMySetting2 matches Rekordbox 6.6.1's factory defaults.
func DefaultMySetting2() *MySetting2 {
	return &MySetting2{
		VinylSpeedAdjust:    DefaultVinylSpeedAdjust,
		JogDisplayMode:      DefaultJogDisplayMode,
		PadButtonBrightness: DefaultPadButtonBrightness,
		JogLCDBrightness:    DefaultJogLCDBrightness,
		WaveformDivisions:   DefaultWaveformDivisions,
		Waveform:            DefaultWaveform,
		BeatJumpBeatValue:   DefaultBeatJumpBeatValue,
	}
}

func readMySetting2(r *storage.Reader) (*MySetting2, error) {
	m := &MySetting2{}
	var err error
	if m.VinylSpeedAdjust, err = readEnum8(r, validVinylSpeedAdjust, "VinylSpeedAdjust"); err != nil {
		return nil, err
	}
	if m.JogDisplayMode, err = readEnum8(r, validJogDisplayMode, "JogDisplayMode"); err != nil {
		return nil, err
	}
	if m.PadButtonBrightness, err = readEnum8(r, validPadButtonBrightness, "PadButtonBrightness"); err != nil {
		return nil, err
	}
	if m.JogLCDBrightness, err = readEnum8(r, validJogLCDBrightness, "JogLCDBrightness"); err != nil {
		return nil, err
	}
	if m.WaveformDivisions, err = readEnum8(r, validWaveformDivisions, "WaveformDivisions"); err != nil {
		return nil, err
	}
	var unknown1 [5]byte
	if err := r.ReadFull(unknown1[:]); err != nil {
		return nil, err
	}
	if unknown1 != ([5]byte{}) {
		return nil, rberr.New(rberr.KindStructural, "MySetting2 unknown1 field is not all zero: %x", unknown1)
	}
	if m.Waveform, err = readEnum8(r, validWaveform, "Waveform"); err != nil {
		return nil, err
	}
	if _, err = r.ReadUint8(); err != nil { // unknown2, unasserted
		return nil, err
	}
	if m.BeatJumpBeatValue, err = readEnum8(r, validBeatJumpBeatValue, "BeatJumpBeatValue"); err != nil {
		return nil, err
	}
	var unknown3 [27]byte
	if err := r.ReadFull(unknown3[:]); err != nil {
		return nil, err
	}
	if unknown3 != ([27]byte{}) {
		return nil, rberr.New(rberr.KindStructural, "MySetting2 unknown3 field is not all zero: %x", unknown3)
	}
	return m, nil
}

func (m *MySetting2) write(w *storage.Writer) error {
	for _, err := range []error{
		writeEnum8(w, m.VinylSpeedAdjust),
		writeEnum8(w, m.JogDisplayMode),
		writeEnum8(w, m.PadButtonBrightness),
		writeEnum8(w, m.JogLCDBrightness),
		writeEnum8(w, m.WaveformDivisions),
	} {
		if err != nil {
			return err
		}
	}
	if err := w.WriteBytes(make([]byte, 5)); err != nil {
		return err
	}
	if err := writeEnum8(w, m.Waveform); err != nil {
		return err
	}
	if err := w.WriteUint8(0x81); err != nil {
		return err
	}
	if err := writeEnum8(w, m.BeatJumpBeatValue); err != nil {
		return err
	}
	return w.WriteBytes(make([]byte, 27))
}

func (m *MySetting2) size() uint32    { return 40 }
func (m *MySetting2) dialect() Dialect { return DialectMySetting2 }

func readSettingData(r *storage.Reader, dialect Dialect, length uint32) (SettingData, error) {
	switch dialect {
	case DialectDevSetting:
		if length != 32 {
			return nil, rberr.New(rberr.KindStructural, "DevSetting data length is %d, want 32", length)
		}
		return readDevSetting(r)
	case DialectDJMMySetting:
		if length != 52 {
			return nil, rberr.New(rberr.KindStructural, "DJMMySetting data length is %d, want 52", length)
		}
		return readDJMMySetting(r)
	case DialectMySetting:
		if length != 40 {
			return nil, rberr.New(rberr.KindStructural, "MySetting data length is %d, want 40", length)
		}
		return readMySetting(r)
	case DialectMySetting2:
		if length != 40 {
			return nil, rberr.New(rberr.KindStructural, "MySetting2 data length is %d, want 40", length)
		}
		return readMySetting2(r)
	default:
		return nil, rberr.New(rberr.KindStructural, "unknown setting dialect %d", dialect)
	}
}
