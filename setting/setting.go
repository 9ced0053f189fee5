// Package setting implements the preference-blob codec used by Rekordbox's
// *SETTING.DAT files (DEVSETTING.DAT, DJMMYSETTING.DAT, MYSETTING.DAT,
// MYSETTING2.DAT): a fixed 104-byte envelope (brand/software/version
// strings, a dialect-tagged payload length) wrapping one of four
// dialect-specific preference payloads, followed by a CRC16/XMODEM
// checksum and a reserved trailer field.
package setting

import (
	"bytes"
	"io"

	"github.com/sigurn/crc16"

	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

const (
	stringFieldSize        = 0x20
	stringDataSize          = 0x60 // 3 * stringFieldSize
	dataSectionStartOffset = 104   // len_stringdata(4) + 3*stringFieldSize + len_data(4)
)

var crc16XmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Setting is a parsed *SETTING.DAT file.
type Setting struct {
	Brand    string
	Software string
	Version  string
	Data     SettingData
}

// Open parses a complete *SETTING.DAT file from src. dialect selects which
// of the four payload shapes to expect, since the payload's own byte
// length does not uniquely determine it.
//
// A checksum mismatch is reported but not fatal: Open returns the parsed
// Setting alongside an error of kind rberr.KindChecksumMismatch, and the
// caller decides whether to trust a file whose CRC16/XMODEM disagrees
// with its stored value.
func Open(src io.ReadSeeker, dialect Dialect) (*Setting, error) {
	length, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	raw := make([]byte, length)
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, err
	}

	r := storage.NewReader(bytes.NewReader(raw))

	lenStringData, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	if lenStringData != stringDataSize {
		return nil, rberr.New(rberr.KindStructural, "setting string-data length is %d, want %d", lenStringData, stringDataSize)
	}

	brand, err := readFixedNullString(r, stringFieldSize)
	if err != nil {
		return nil, err
	}
	software, err := readFixedNullString(r, stringFieldSize)
	if err != nil {
		return nil, err
	}
	version, err := readFixedNullString(r, stringFieldSize)
	if err != nil {
		return nil, err
	}

	lenData, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	data, err := readSettingData(r, dialect, lenData)
	if err != nil {
		return nil, err
	}

	storedChecksum, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	unknown, err := r.ReadUint16LE()
	if err != nil {
		return nil, err
	}
	if unknown != 0 {
		return nil, rberr.New(rberr.KindStructural, "setting trailer field is 0x%04x, want 0", unknown)
	}

	s := &Setting{Brand: brand, Software: software, Version: version, Data: data}

	if int64(len(raw)) < 4 {
		return nil, rberr.New(rberr.KindStructural, "setting file is %d bytes, too short for a checksum", len(raw))
	}
	start := dataSectionStartOffset
	if data.dialect() == DialectDJMMySetting {
		start = 0
	}
	computed := crc16.Checksum(raw[start:len(raw)-4], crc16XmodemTable)
	if computed != storedChecksum {
		return s, rberr.At(rberr.KindChecksumMismatch, int64(start), "setting checksum is 0x%04x, want 0x%04x", storedChecksum, computed)
	}

	return s, nil
}

// Write serializes the file to dst, recomputing the CRC16/XMODEM checksum
// over the byte range appropriate to the payload's dialect. The envelope
// is assembled in memory first (mirroring the reference parser's own
// "serialize once to compute the checksum, then serialize for real"
// approach) since the checksum range spans bytes not yet known until the
// payload itself has been written.
func (s *Setting) Write(dst io.WriteSeeker) error {
	buf := &seekBuffer{}
	bw := storage.NewWriter(buf)
	if err := s.writeEnvelope(bw); err != nil {
		return err
	}

	start := dataSectionStartOffset
	if s.Data.dialect() == DialectDJMMySetting {
		start = 0
	}
	checksum := crc16.Checksum(buf.Bytes()[start:], crc16XmodemTable)

	w := storage.NewWriter(dst)
	if err := w.WriteBytes(buf.Bytes()); err != nil {
		return err
	}
	if err := w.WriteUint16LE(checksum); err != nil {
		return err
	}
	return w.WriteUint16LE(0)
}

// writeEnvelope writes every field up to (but not including) the
// checksum: the string-data length, the three fixed brand/software/
// version fields, the payload length, and the payload itself.
func (s *Setting) writeEnvelope(w *storage.Writer) error {
	if err := w.WriteUint32LE(stringDataSize); err != nil {
		return err
	}
	if err := writeFixedNullString(w, s.Brand, stringFieldSize); err != nil {
		return err
	}
	if err := writeFixedNullString(w, s.Software, stringFieldSize); err != nil {
		return err
	}
	if err := writeFixedNullString(w, s.Version, stringFieldSize); err != nil {
		return err
	}
	if err := w.WriteUint32LE(s.Data.size()); err != nil {
		return err
	}
	return s.Data.write(w)
}
