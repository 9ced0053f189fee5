package anlz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/storage"
)

func phraseFixture(index uint16) Phrase {
	return Phrase{Index: index, Beat: 1, Kind: 1, K1: 0, K2: 0, B: 0, Beat2: 2, Beat3: 3, Beat4: 4, K3: 0, Fill: 0, BeatFill: 0}
}

func TestSongStructurePlaintextRoundTrip(t *testing.T) {
	s := &SongStructure{
		Mood:     MoodHigh,
		EndBeat:  64,
		Bank:     BankCool,
		Phrases:  []Phrase{phraseFixture(1), phraseFixture(2)},
		IsEncrypted: false,
	}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, s.write(w))

	header := Header{Kind: KindSongStructure, Size: 12, TotalSize: 12 + uint32(len(buf.Bytes()))}
	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readSongStructure(r, header)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSongStructureEncryptedRoundTrip(t *testing.T) {
	s := &SongStructure{
		Mood:        MoodMid,
		EndBeat:     32,
		Bank:        BankWarm,
		Phrases:     []Phrase{phraseFixture(1)},
		IsEncrypted: true,
	}

	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, s.write(w))

	header := Header{Kind: KindSongStructure, Size: 12, TotalSize: 12 + uint32(len(buf.Bytes()))}
	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	got, err := readSongStructure(r, header)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestMoodValidRejectsUnknownValues(t *testing.T) {
	require.True(t, MoodHigh.valid())
	require.False(t, Mood(0).valid())
	require.False(t, Mood(4).valid())
}
