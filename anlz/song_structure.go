package anlz

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Mood classifies the overall phrase structure, used by Lightning mode.
type Mood uint16

const (
	MoodHigh Mood = 1
	MoodMid  Mood = 2
	MoodLow  Mood = 3
)

func (m Mood) valid() bool { return m == MoodHigh || m == MoodMid || m == MoodLow }

// Bank is the stylistic track bank assigned in Lightning mode.
type Bank uint8

const (
	BankDefault Bank = iota
	BankCool
	BankNatural
	BankHot
	BankSubtle
	BankWarm
	BankVivid
	BankClub1
	BankClub2
)

// Phrase is one 24-byte song-structure entry describing a recognized
// phrase (Intro, Verse, Chorus, ...).
type Phrase struct {
	Index    uint16
	Beat     uint16
	Kind     uint16
	Unknown1 uint8
	K1       uint8
	Unknown2 uint8
	K2       uint8
	Unknown3 uint8
	B        uint8
	Beat2    uint16
	Beat3    uint16
	Beat4    uint16
	Unknown4 uint8
	K3       uint8
	Unknown5 uint8
	Fill     uint8
	BeatFill uint16
}

const phraseBinarySize = 24

func readPhrase(r *storage.Reader) (Phrase, error) {
	var p Phrase
	var err error
	if p.Index, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Beat, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Kind, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Unknown1, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.K1, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.Unknown2, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.K2, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.Unknown3, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.B, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.Beat2, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Beat3, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Beat4, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	if p.Unknown4, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.K3, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.Unknown5, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.Fill, err = r.ReadUint8(); err != nil {
		return Phrase{}, err
	}
	if p.BeatFill, err = r.ReadUint16BE(); err != nil {
		return Phrase{}, err
	}
	return p, nil
}

func (p Phrase) write(w *storage.Writer) error {
	for _, v := range []uint16{p.Index, p.Beat, p.Kind} {
		if err := w.WriteUint16BE(v); err != nil {
			return err
		}
	}
	for _, v := range []uint8{p.Unknown1, p.K1, p.Unknown2, p.K2, p.Unknown3, p.B} {
		if err := w.WriteUint8(v); err != nil {
			return err
		}
	}
	for _, v := range []uint16{p.Beat2, p.Beat3, p.Beat4} {
		if err := w.WriteUint16BE(v); err != nil {
			return err
		}
	}
	for _, v := range []uint8{p.Unknown4, p.K3, p.Unknown5, p.Fill} {
		if err := w.WriteUint8(v); err != nil {
			return err
		}
	}
	return w.WriteUint16BE(p.BeatFill)
}

// SongStructure describes a song's phrase layout (Intro, Chorus, Verse,
// ...). Players from RB6 onward write this section's data XOR-masked;
// IsEncrypted is detected (not stored) by trial-decoding the Mood field
// and checking it against the closed Mood enum.
type SongStructure struct {
	Mood        Mood
	Unknown1    uint32
	Unknown2    uint16
	EndBeat     uint16
	Unknown3    uint16
	Bank        Bank
	Unknown4    uint8
	Phrases     []Phrase
	IsEncrypted bool
}

const songStructureDataFixedSize = 14 // mood+unknown1+unknown2+end_beat+unknown3+bank+unknown4

func readSongStructure(r *storage.Reader, header Header) (*SongStructure, error) {
	lenEntryBytes, err := r.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	if lenEntryBytes != phraseBinarySize {
		return nil, rberr.New(rberr.KindStructural, "song structure entry size %d, want %d", lenEntryBytes, phraseBinarySize)
	}
	lenEntries, err := r.ReadUint16BE()
	if err != nil {
		return nil, err
	}

	rawMood, err := r.PeekBytes(2)
	if err != nil {
		return nil, err
	}
	key := xorKey(lenEntries)
	isEncrypted := moodLooksValid(rawMood, key)

	remaining := int(header.ContentSize()) - 6 // len_entry_bytes + len_entries already consumed
	body := make([]byte, remaining)
	if err := r.ReadFull(body); err != nil {
		return nil, err
	}
	if isEncrypted {
		xorBytes(body, key)
	}

	sr := storage.NewReader(&seekBuffer{buf: body})
	mood, err := sr.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	unknown1, err := sr.ReadUint32BE()
	if err != nil {
		return nil, err
	}
	unknown2, err := sr.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	endBeat, err := sr.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	unknown3, err := sr.ReadUint16BE()
	if err != nil {
		return nil, err
	}
	bank, err := sr.ReadUint8()
	if err != nil {
		return nil, err
	}
	unknown4, err := sr.ReadUint8()
	if err != nil {
		return nil, err
	}
	phrases := make([]Phrase, lenEntries)
	for i := range phrases {
		phrases[i], err = readPhrase(sr)
		if err != nil {
			return nil, err
		}
	}

	return &SongStructure{
		Mood: Mood(mood), Unknown1: unknown1, Unknown2: unknown2, EndBeat: endBeat,
		Unknown3: unknown3, Bank: Bank(bank), Unknown4: unknown4, Phrases: phrases,
		IsEncrypted: isEncrypted,
	}, nil
}

// moodLooksValid trial-decodes the two raw bytes against the key and
// reports whether the result is a recognized Mood value.
func moodLooksValid(raw []byte, key []byte) bool {
	decoded := [2]byte{raw[0] ^ key[0], raw[1] ^ key[1]}
	mood := Mood(uint16(decoded[0])<<8 | uint16(decoded[1]))
	return mood.valid()
}

func (s *SongStructure) write(w *storage.Writer) error {
	if err := w.WriteUint32BE(phraseBinarySize); err != nil {
		return err
	}
	if err := w.WriteUint16BE(uint16(len(s.Phrases))); err != nil {
		return err
	}

	sbuf := &seekBuffer{}
	bw := storage.NewWriter(sbuf)
	if err := bw.WriteUint16BE(uint16(s.Mood)); err != nil {
		return err
	}
	if err := bw.WriteUint32BE(s.Unknown1); err != nil {
		return err
	}
	if err := bw.WriteUint16BE(s.Unknown2); err != nil {
		return err
	}
	if err := bw.WriteUint16BE(s.EndBeat); err != nil {
		return err
	}
	if err := bw.WriteUint16BE(s.Unknown3); err != nil {
		return err
	}
	if err := bw.WriteUint8(uint8(s.Bank)); err != nil {
		return err
	}
	if err := bw.WriteUint8(s.Unknown4); err != nil {
		return err
	}
	for _, p := range s.Phrases {
		if err := p.write(bw); err != nil {
			return err
		}
	}

	body := sbuf.Bytes()
	if s.IsEncrypted {
		xorBytes(body, xorKey(uint16(len(s.Phrases))))
	}
	return w.WriteBytes(body)
}

func (s *SongStructure) kind() ContentKind { return KindSongStructure }
