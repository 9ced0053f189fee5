package setting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

func TestMySettingRoundTrip(t *testing.T) {
	s := &Setting{Brand: "PIONEER", Software: "rekordbox", Version: "6.6.1", Data: DefaultMySetting()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	got, err := Open(&seekBuffer{buf: buf.Bytes()}, DialectMySetting)
	require.NoError(t, err)
	require.Equal(t, s.Brand, got.Brand)
	require.Equal(t, s.Software, got.Software)
	require.Equal(t, s.Version, got.Version)
	require.Equal(t, s.Data, got.Data)
}

func TestMySetting2RoundTrip(t *testing.T) {
	s := &Setting{Brand: "PIONEER", Software: "rekordbox", Version: "6.6.1", Data: DefaultMySetting2()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	got, err := Open(&seekBuffer{buf: buf.Bytes()}, DialectMySetting2)
	require.NoError(t, err)
	require.Equal(t, s.Data, got.Data)
}

func TestDevSettingRoundTrip(t *testing.T) {
	s := &Setting{Brand: "PIONEER DJ", Software: "rekordbox", Version: "6.6.1", Data: DefaultDevSetting()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	got, err := Open(&seekBuffer{buf: buf.Bytes()}, DialectDevSetting)
	require.NoError(t, err)
	require.Equal(t, s.Data, got.Data)
}

func TestDJMMySettingRoundTrip(t *testing.T) {
	s := &Setting{Brand: "PioneerDJ", Software: "rekordbox", Version: "6.6.1", Data: DefaultDJMMySetting()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	got, err := Open(&seekBuffer{buf: buf.Bytes()}, DialectDJMMySetting)
	require.NoError(t, err)
	require.Equal(t, s.Data, got.Data)
}

func TestOpenRejectsWrongDialectLength(t *testing.T) {
	s := &Setting{Brand: "PIONEER", Software: "rekordbox", Version: "6.6.1", Data: DefaultMySetting()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	_, err := Open(&seekBuffer{buf: buf.Bytes()}, DialectDevSetting)
	require.Error(t, err)
}

func TestOpenReportsChecksumMismatchButStillReturnsValue(t *testing.T) {
	s := &Setting{Brand: "PIONEER", Software: "rekordbox", Version: "6.6.1", Data: DefaultMySetting()}

	buf := &seekBuffer{}
	require.NoError(t, s.Write(buf))

	raw := buf.Bytes()
	raw[dataSectionStartOffset] ^= 0xFF // corrupt a payload byte covered by the checksum

	got, err := Open(&seekBuffer{buf: raw}, DialectMySetting)
	require.Error(t, err)
	require.True(t, rberr.Is(err, rberr.KindChecksumMismatch))
	require.NotNil(t, got)
}

func TestReadEnum8RejectsUnknownValue(t *testing.T) {
	buf := &seekBuffer{}
	w := storage.NewWriter(buf)
	require.NoError(t, w.WriteUint8(0xFF))

	r := storage.NewReader(&seekBuffer{buf: buf.Bytes()})
	_, err := readEnum8(r, validPlayMode, "PlayMode")
	require.Error(t, err)
}
