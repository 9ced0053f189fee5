package setting

// Every enum below is a closed, gap-laden single-byte value found inside one
// of the four dialect payloads. Values are never sequential from zero: they
// mirror the exact byte Rekordbox itself writes for each preference choice.

type PlayMode uint8

const (
	PlayModeContinue PlayMode = 0x80
	PlayModeSingle   PlayMode = 0x81
)

var validPlayMode = map[PlayMode]bool{PlayModeContinue: true, PlayModeSingle: true}

const DefaultPlayMode = PlayModeSingle

type EjectLock uint8

const (
	EjectLockUnlock EjectLock = 0x80
	EjectLockLock   EjectLock = 0x81
)

var validEjectLock = map[EjectLock]bool{EjectLockUnlock: true, EjectLockLock: true}

const DefaultEjectLock = EjectLockUnlock

type NeedleLock uint8

const (
	NeedleLockUnlock NeedleLock = 0x80
	NeedleLockLock   NeedleLock = 0x81
)

var validNeedleLock = map[NeedleLock]bool{NeedleLockUnlock: true, NeedleLockLock: true}

const DefaultNeedleLock = NeedleLockLock

type QuantizeBeatValue uint8

const (
	QuantizeBeatValueFullBeat    QuantizeBeatValue = 0x80
	QuantizeBeatValueHalfBeat    QuantizeBeatValue = 0x81
	QuantizeBeatValueQuarterBeat QuantizeBeatValue = 0x82
	QuantizeBeatValueEighthBeat  QuantizeBeatValue = 0x83
)

var validQuantizeBeatValue = map[QuantizeBeatValue]bool{
	QuantizeBeatValueFullBeat: true, QuantizeBeatValueHalfBeat: true,
	QuantizeBeatValueQuarterBeat: true, QuantizeBeatValueEighthBeat: true,
}

const DefaultQuantizeBeatValue = QuantizeBeatValueFullBeat

type HotCueAutoLoad uint8

const (
	HotCueAutoLoadOff              HotCueAutoLoad = 0x80
	HotCueAutoLoadOn               HotCueAutoLoad = 0x81
	HotCueAutoLoadRekordboxSetting HotCueAutoLoad = 0x82
)

var validHotCueAutoLoad = map[HotCueAutoLoad]bool{
	HotCueAutoLoadOff: true, HotCueAutoLoadOn: true, HotCueAutoLoadRekordboxSetting: true,
}

const DefaultHotCueAutoLoad = HotCueAutoLoadOn

type HotCueColor uint8

const (
	HotCueColorOff HotCueColor = 0x80
	HotCueColorOn  HotCueColor = 0x81
)

var validHotCueColor = map[HotCueColor]bool{HotCueColorOff: true, HotCueColorOn: true}

const DefaultHotCueColor = HotCueColorOff

type AutoCueLevel uint8

const (
	AutoCueLevelMinus36dB AutoCueLevel = 0x80
	AutoCueLevelMinus42dB AutoCueLevel = 0x81
	AutoCueLevelMinus48dB AutoCueLevel = 0x82
	AutoCueLevelMinus54dB AutoCueLevel = 0x83
	AutoCueLevelMinus60dB AutoCueLevel = 0x84
	AutoCueLevelMinus66dB AutoCueLevel = 0x85
	AutoCueLevelMinus72dB AutoCueLevel = 0x86
	AutoCueLevelMinus78dB AutoCueLevel = 0x87
	AutoCueLevelMemory    AutoCueLevel = 0x88
)

var validAutoCueLevel = map[AutoCueLevel]bool{
	AutoCueLevelMinus36dB: true, AutoCueLevelMinus42dB: true, AutoCueLevelMinus48dB: true,
	AutoCueLevelMinus54dB: true, AutoCueLevelMinus60dB: true, AutoCueLevelMinus66dB: true,
	AutoCueLevelMinus72dB: true, AutoCueLevelMinus78dB: true, AutoCueLevelMemory: true,
}

const DefaultAutoCueLevel = AutoCueLevelMemory

type TimeMode uint8

const (
	TimeModeElapsed TimeMode = 0x80
	TimeModeRemain  TimeMode = 0x81
)

var validTimeMode = map[TimeMode]bool{TimeModeElapsed: true, TimeModeRemain: true}

const DefaultTimeMode = TimeModeRemain

type AutoCue uint8

const (
	AutoCueOff AutoCue = 0x80
	AutoCueOn  AutoCue = 0x81
)

var validAutoCue = map[AutoCue]bool{AutoCueOff: true, AutoCueOn: true}

const DefaultAutoCue = AutoCueOn

type JogMode uint8

const (
	JogModeCDJ   JogMode = 0x80
	JogModeVinyl JogMode = 0x81
)

var validJogMode = map[JogMode]bool{JogModeCDJ: true, JogModeVinyl: true}

const DefaultJogMode = JogModeVinyl

type TempoRange uint8

const (
	TempoRangeSixPercent      TempoRange = 0x80
	TempoRangeTenPercent      TempoRange = 0x81
	TempoRangeSixteenPercent  TempoRange = 0x82
	TempoRangeWide            TempoRange = 0x83
)

var validTempoRange = map[TempoRange]bool{
	TempoRangeSixPercent: true, TempoRangeTenPercent: true,
	TempoRangeSixteenPercent: true, TempoRangeWide: true,
}

const DefaultTempoRange = TempoRangeTenPercent

type MasterTempo uint8

const (
	MasterTempoOff MasterTempo = 0x80
	MasterTempoOn  MasterTempo = 0x81
)

var validMasterTempo = map[MasterTempo]bool{MasterTempoOff: true, MasterTempoOn: true}

const DefaultMasterTempo = MasterTempoOff

type Quantize uint8

const (
	QuantizeOff Quantize = 0x80
	QuantizeOn  Quantize = 0x81
)

var validQuantize = map[Quantize]bool{QuantizeOff: true, QuantizeOn: true}

const DefaultQuantize = QuantizeOn

type Sync uint8

const (
	SyncOff Sync = 0x80
	SyncOn  Sync = 0x81
)

var validSync = map[Sync]bool{SyncOff: true, SyncOn: true}

const DefaultSync = SyncOff

type PhaseMeter uint8

const (
	PhaseMeterType1 PhaseMeter = 0x80
	PhaseMeterType2 PhaseMeter = 0x81
)

var validPhaseMeter = map[PhaseMeter]bool{PhaseMeterType1: true, PhaseMeterType2: true}

const DefaultPhaseMeter = PhaseMeterType1

type Waveform uint8

const (
	WaveformWaveform   Waveform = 0x80
	WaveformPhaseMeter Waveform = 0x81
)

var validWaveform = map[Waveform]bool{WaveformWaveform: true, WaveformPhaseMeter: true}

const DefaultWaveform = WaveformWaveform

type WaveformDivisions uint8

const (
	WaveformDivisionsTimeScale WaveformDivisions = 0x80
	WaveformDivisionsPhrase    WaveformDivisions = 0x81
)

var validWaveformDivisions = map[WaveformDivisions]bool{
	WaveformDivisionsTimeScale: true, WaveformDivisionsPhrase: true,
}

const DefaultWaveformDivisions = WaveformDivisionsPhrase

type VinylSpeedAdjust uint8

const (
	VinylSpeedAdjustTouchRelease VinylSpeedAdjust = 0x80
	VinylSpeedAdjustTouch        VinylSpeedAdjust = 0x81
	VinylSpeedAdjustRelease      VinylSpeedAdjust = 0x82
)

var validVinylSpeedAdjust = map[VinylSpeedAdjust]bool{
	VinylSpeedAdjustTouchRelease: true, VinylSpeedAdjustTouch: true, VinylSpeedAdjustRelease: true,
}

const DefaultVinylSpeedAdjust = VinylSpeedAdjustTouch

type BeatJumpBeatValue uint8

const (
	BeatJumpBeatValueHalfBeat     BeatJumpBeatValue = 0x80
	BeatJumpBeatValueOneBeat      BeatJumpBeatValue = 0x81
	BeatJumpBeatValueTwoBeat      BeatJumpBeatValue = 0x82
	BeatJumpBeatValueFourBeat     BeatJumpBeatValue = 0x83
	BeatJumpBeatValueEightBeat    BeatJumpBeatValue = 0x84
	BeatJumpBeatValueSixteenBeat  BeatJumpBeatValue = 0x85
	BeatJumpBeatValueThirtytwoBeat BeatJumpBeatValue = 0x86
	BeatJumpBeatValueSixtyfourBeat BeatJumpBeatValue = 0x87
)

var validBeatJumpBeatValue = map[BeatJumpBeatValue]bool{
	BeatJumpBeatValueHalfBeat: true, BeatJumpBeatValueOneBeat: true, BeatJumpBeatValueTwoBeat: true,
	BeatJumpBeatValueFourBeat: true, BeatJumpBeatValueEightBeat: true, BeatJumpBeatValueSixteenBeat: true,
	BeatJumpBeatValueThirtytwoBeat: true, BeatJumpBeatValueSixtyfourBeat: true,
}

const DefaultBeatJumpBeatValue = BeatJumpBeatValueSixteenBeat

type Language uint8

const (
	LanguageEnglish            Language = 0x81
	LanguageFrench             Language = 0x82
	LanguageGerman             Language = 0x83
	LanguageItalian            Language = 0x84
	LanguageDutch              Language = 0x85
	LanguageSpanish            Language = 0x86
	LanguageRussian            Language = 0x87
	LanguageKorean             Language = 0x88
	LanguageChineseSimplified  Language = 0x89
	LanguageChineseTraditional Language = 0x8A
	LanguageJapanese           Language = 0x8B
	LanguagePortuguese         Language = 0x8C
	LanguageSwedish            Language = 0x8D
	LanguageCzech              Language = 0x8E
	LanguageHungarian          Language = 0x8F
	LanguageDanish             Language = 0x90
	LanguageGreek              Language = 0x91
	LanguageTurkish            Language = 0x92
)

var validLanguage = map[Language]bool{
	LanguageEnglish: true, LanguageFrench: true, LanguageGerman: true, LanguageItalian: true,
	LanguageDutch: true, LanguageSpanish: true, LanguageRussian: true, LanguageKorean: true,
	LanguageChineseSimplified: true, LanguageChineseTraditional: true, LanguageJapanese: true,
	LanguagePortuguese: true, LanguageSwedish: true, LanguageCzech: true, LanguageHungarian: true,
	LanguageDanish: true, LanguageGreek: true, LanguageTurkish: true,
}

const DefaultLanguage = LanguageEnglish

type LCDBrightness uint8

const (
	LCDBrightnessOne   LCDBrightness = 0x81
	LCDBrightnessTwo   LCDBrightness = 0x82
	LCDBrightnessThree LCDBrightness = 0x83
	LCDBrightnessFour  LCDBrightness = 0x84
	LCDBrightnessFive  LCDBrightness = 0x85
)

var validLCDBrightness = map[LCDBrightness]bool{
	LCDBrightnessOne: true, LCDBrightnessTwo: true, LCDBrightnessThree: true,
	LCDBrightnessFour: true, LCDBrightnessFive: true,
}

const DefaultLCDBrightness = LCDBrightnessThree

type JogLCDBrightness uint8

const (
	JogLCDBrightnessOne   JogLCDBrightness = 0x81
	JogLCDBrightnessTwo   JogLCDBrightness = 0x82
	JogLCDBrightnessThree JogLCDBrightness = 0x83
	JogLCDBrightnessFour  JogLCDBrightness = 0x84
	JogLCDBrightnessFive  JogLCDBrightness = 0x85
)

var validJogLCDBrightness = map[JogLCDBrightness]bool{
	JogLCDBrightnessOne: true, JogLCDBrightnessTwo: true, JogLCDBrightnessThree: true,
	JogLCDBrightnessFour: true, JogLCDBrightnessFive: true,
}

const DefaultJogLCDBrightness = JogLCDBrightnessThree

type JogDisplayMode uint8

const (
	JogDisplayModeAuto    JogDisplayMode = 0x80
	JogDisplayModeInfo    JogDisplayMode = 0x81
	JogDisplayModeSimple  JogDisplayMode = 0x82
	JogDisplayModeArtwork JogDisplayMode = 0x83
)

var validJogDisplayMode = map[JogDisplayMode]bool{
	JogDisplayModeAuto: true, JogDisplayModeInfo: true, JogDisplayModeSimple: true, JogDisplayModeArtwork: true,
}

const DefaultJogDisplayMode = JogDisplayModeAuto

type SlipFlashing uint8

const (
	SlipFlashingOff SlipFlashing = 0x80
	SlipFlashingOn  SlipFlashing = 0x81
)

var validSlipFlashing = map[SlipFlashing]bool{SlipFlashingOff: true, SlipFlashingOn: true}

const DefaultSlipFlashing = SlipFlashingOn

type OnAirDisplay uint8

const (
	OnAirDisplayOff OnAirDisplay = 0x80
	OnAirDisplayOn  OnAirDisplay = 0x81
)

var validOnAirDisplay = map[OnAirDisplay]bool{OnAirDisplayOff: true, OnAirDisplayOn: true}

const DefaultOnAirDisplay = OnAirDisplayOn

type JogRingBrightness uint8

const (
	JogRingBrightnessOff    JogRingBrightness = 0x80
	JogRingBrightnessDark   JogRingBrightness = 0x81
	JogRingBrightnessBright JogRingBrightness = 0x82
)

var validJogRingBrightness = map[JogRingBrightness]bool{
	JogRingBrightnessOff: true, JogRingBrightnessDark: true, JogRingBrightnessBright: true,
}

const DefaultJogRingBrightness = JogRingBrightnessBright

type JogRingIndicator uint8

const (
	JogRingIndicatorOff JogRingIndicator = 0x80
	JogRingIndicatorOn  JogRingIndicator = 0x81
)

var validJogRingIndicator = map[JogRingIndicator]bool{JogRingIndicatorOff: true, JogRingIndicatorOn: true}

const DefaultJogRingIndicator = JogRingIndicatorOn

type DiscSlotIllumination uint8

const (
	DiscSlotIlluminationOff    DiscSlotIllumination = 0x80
	DiscSlotIlluminationDark   DiscSlotIllumination = 0x81
	DiscSlotIlluminationBright DiscSlotIllumination = 0x82
)

var validDiscSlotIllumination = map[DiscSlotIllumination]bool{
	DiscSlotIlluminationOff: true, DiscSlotIlluminationDark: true, DiscSlotIlluminationBright: true,
}

const DefaultDiscSlotIllumination = DiscSlotIlluminationBright

type PadButtonBrightness uint8

const (
	PadButtonBrightnessOne   PadButtonBrightness = 0x81
	PadButtonBrightnessTwo   PadButtonBrightness = 0x82
	PadButtonBrightnessThree PadButtonBrightness = 0x83
	PadButtonBrightnessFour  PadButtonBrightness = 0x84
)

var validPadButtonBrightness = map[PadButtonBrightness]bool{
	PadButtonBrightnessOne: true, PadButtonBrightnessTwo: true,
	PadButtonBrightnessThree: true, PadButtonBrightnessFour: true,
}

const DefaultPadButtonBrightness = PadButtonBrightnessThree

type ChannelFaderCurve uint8

const (
	ChannelFaderCurveSteepTop    ChannelFaderCurve = 0x80
	ChannelFaderCurveLinear      ChannelFaderCurve = 0x81
	ChannelFaderCurveSteepBottom ChannelFaderCurve = 0x82
)

var validChannelFaderCurve = map[ChannelFaderCurve]bool{
	ChannelFaderCurveSteepTop: true, ChannelFaderCurveLinear: true, ChannelFaderCurveSteepBottom: true,
}

const DefaultChannelFaderCurve = ChannelFaderCurveLinear

type CrossfaderCurve uint8

const (
	CrossfaderCurveConstantPower CrossfaderCurve = 0x80
	CrossfaderCurveSlowCut       CrossfaderCurve = 0x81
	CrossfaderCurveFastCut       CrossfaderCurve = 0x82
)

var validCrossfaderCurve = map[CrossfaderCurve]bool{
	CrossfaderCurveConstantPower: true, CrossfaderCurveSlowCut: true, CrossfaderCurveFastCut: true,
}

const DefaultCrossfaderCurve = CrossfaderCurveFastCut

type ChannelFaderCurveLongFader uint8

const (
	ChannelFaderCurveLongFaderExponential ChannelFaderCurveLongFader = 0x80
	ChannelFaderCurveLongFaderSmooth      ChannelFaderCurveLongFader = 0x81
	ChannelFaderCurveLongFaderLinear      ChannelFaderCurveLongFader = 0x82
)

var validChannelFaderCurveLongFader = map[ChannelFaderCurveLongFader]bool{
	ChannelFaderCurveLongFaderExponential: true, ChannelFaderCurveLongFaderSmooth: true,
	ChannelFaderCurveLongFaderLinear: true,
}

const DefaultChannelFaderCurveLongFader = ChannelFaderCurveLongFaderExponential

type HeadphonesPreEQ uint8

const (
	HeadphonesPreEQPostEQ HeadphonesPreEQ = 0x80
	HeadphonesPreEQPreEQ  HeadphonesPreEQ = 0x81
)

var validHeadphonesPreEQ = map[HeadphonesPreEQ]bool{HeadphonesPreEQPostEQ: true, HeadphonesPreEQPreEQ: true}

const DefaultHeadphonesPreEQ = HeadphonesPreEQPostEQ

type HeadphonesMonoSplit uint8

const (
	HeadphonesMonoSplitStereo    HeadphonesMonoSplit = 0x80
	HeadphonesMonoSplitMonoSplit HeadphonesMonoSplit = 0x81
)

var validHeadphonesMonoSplit = map[HeadphonesMonoSplit]bool{
	HeadphonesMonoSplitStereo: true, HeadphonesMonoSplitMonoSplit: true,
}

const DefaultHeadphonesMonoSplit = HeadphonesMonoSplitStereo

type BeatFXQuantize uint8

const (
	BeatFXQuantizeOff BeatFXQuantize = 0x80
	BeatFXQuantizeOn  BeatFXQuantize = 0x81
)

var validBeatFXQuantize = map[BeatFXQuantize]bool{BeatFXQuantizeOff: true, BeatFXQuantizeOn: true}

const DefaultBeatFXQuantize = BeatFXQuantizeOn

type MicLowCut uint8

const (
	MicLowCutOff MicLowCut = 0x80
	MicLowCutOn  MicLowCut = 0x81
)

var validMicLowCut = map[MicLowCut]bool{MicLowCutOff: true, MicLowCutOn: true}

const DefaultMicLowCut = MicLowCutOn

type TalkOverMode uint8

const (
	TalkOverModeAdvanced TalkOverMode = 0x80
	TalkOverModeNormal   TalkOverMode = 0x81
)

var validTalkOverMode = map[TalkOverMode]bool{TalkOverModeAdvanced: true, TalkOverModeNormal: true}

const DefaultTalkOverMode = TalkOverModeAdvanced

type TalkOverLevel uint8

const (
	TalkOverLevelMinus24dB TalkOverLevel = 0x80
	TalkOverLevelMinus18dB TalkOverLevel = 0x81
	TalkOverLevelMinus12dB TalkOverLevel = 0x82
	TalkOverLevelMinus6dB  TalkOverLevel = 0x83
)

var validTalkOverLevel = map[TalkOverLevel]bool{
	TalkOverLevelMinus24dB: true, TalkOverLevelMinus18dB: true,
	TalkOverLevelMinus12dB: true, TalkOverLevelMinus6dB: true,
}

const DefaultTalkOverLevel = TalkOverLevelMinus18dB

type MidiChannel uint8

const (
	MidiChannelOne MidiChannel = 0x80 + iota
	MidiChannelTwo
	MidiChannelThree
	MidiChannelFour
	MidiChannelFive
	MidiChannelSix
	MidiChannelSeven
	MidiChannelEight
	MidiChannelNine
	MidiChannelTen
	MidiChannelEleven
	MidiChannelTwelve
	MidiChannelThirteen
	MidiChannelFourteen
	MidiChannelFifteen
	MidiChannelSixteen
)

var validMidiChannel = map[MidiChannel]bool{}

func init() {
	for v := MidiChannelOne; v <= MidiChannelSixteen; v++ {
		validMidiChannel[v] = true
	}
}

const DefaultMidiChannel = MidiChannelOne

type MidiButtonType uint8

const (
	MidiButtonTypeToggle  MidiButtonType = 0x80
	MidiButtonTypeTrigger MidiButtonType = 0x81
)

var validMidiButtonType = map[MidiButtonType]bool{MidiButtonTypeToggle: true, MidiButtonTypeTrigger: true}

const DefaultMidiButtonType = MidiButtonTypeToggle

type MixerDisplayBrightness uint8

const (
	MixerDisplayBrightnessWhite MixerDisplayBrightness = 0x80
	MixerDisplayBrightnessOne   MixerDisplayBrightness = 0x81
	MixerDisplayBrightnessTwo   MixerDisplayBrightness = 0x82
	MixerDisplayBrightnessThree MixerDisplayBrightness = 0x83
	MixerDisplayBrightnessFour  MixerDisplayBrightness = 0x84
	MixerDisplayBrightnessFive  MixerDisplayBrightness = 0x85
)

var validMixerDisplayBrightness = map[MixerDisplayBrightness]bool{
	MixerDisplayBrightnessWhite: true, MixerDisplayBrightnessOne: true, MixerDisplayBrightnessTwo: true,
	MixerDisplayBrightnessThree: true, MixerDisplayBrightnessFour: true, MixerDisplayBrightnessFive: true,
}

const DefaultMixerDisplayBrightness = MixerDisplayBrightnessFive

type MixerIndicatorBrightness uint8

const (
	MixerIndicatorBrightnessOne   MixerIndicatorBrightness = 0x80
	MixerIndicatorBrightnessTwo   MixerIndicatorBrightness = 0x81
	MixerIndicatorBrightnessThree MixerIndicatorBrightness = 0x82
)

var validMixerIndicatorBrightness = map[MixerIndicatorBrightness]bool{
	MixerIndicatorBrightnessOne: true, MixerIndicatorBrightnessTwo: true, MixerIndicatorBrightnessThree: true,
}

const DefaultMixerIndicatorBrightness = MixerIndicatorBrightnessThree

type WaveformColor uint8

const (
	WaveformColorBlue    WaveformColor = 0x01
	WaveformColorRgb     WaveformColor = 0x03
	WaveformColorTriBand WaveformColor = 0x04
)

var validWaveformColor = map[WaveformColor]bool{WaveformColorBlue: true, WaveformColorRgb: true, WaveformColorTriBand: true}

const DefaultWaveformColor = WaveformColorBlue

type WaveformCurrentPosition uint8

const (
	WaveformCurrentPositionCenter WaveformCurrentPosition = 0x01
	WaveformCurrentPositionLeft   WaveformCurrentPosition = 0x02
)

var validWaveformCurrentPosition = map[WaveformCurrentPosition]bool{
	WaveformCurrentPositionCenter: true, WaveformCurrentPositionLeft: true,
}

const DefaultWaveformCurrentPosition = WaveformCurrentPositionCenter

type OverviewWaveformType uint8

const (
	OverviewWaveformTypeHalfWaveform OverviewWaveformType = 0x01
	OverviewWaveformTypeFullWaveform OverviewWaveformType = 0x02
)

var validOverviewWaveformType = map[OverviewWaveformType]bool{
	OverviewWaveformTypeHalfWaveform: true, OverviewWaveformTypeFullWaveform: true,
}

const DefaultOverviewWaveformType = OverviewWaveformTypeHalfWaveform

type KeyDisplayFormat uint8

const (
	KeyDisplayFormatClassic      KeyDisplayFormat = 0x01
	KeyDisplayFormatAlphanumeric KeyDisplayFormat = 0x02
)

var validKeyDisplayFormat = map[KeyDisplayFormat]bool{
	KeyDisplayFormatClassic: true, KeyDisplayFormatAlphanumeric: true,
}

const DefaultKeyDisplayFormat = KeyDisplayFormatClassic
