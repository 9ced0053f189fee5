package anlz

import (
	"unicode/utf16"

	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// readWideString reads a big-endian UTF-16 string occupying exactly
// byteLen bytes, the last code unit of which must be the terminating
// 0x0000. byteLen is always even; byteLen == 0 decodes to the empty
// string with no terminator present.
func readWideString(r *storage.Reader, byteLen uint32) (string, error) {
	if byteLen == 0 {
		return "", nil
	}
	if byteLen%2 != 0 {
		return "", rberr.New(rberr.KindString, "wide string byte length %d is not even", byteLen)
	}
	units := make([]uint16, byteLen/2)
	for i := range units {
		v, err := r.ReadUint16BE()
		if err != nil {
			return "", err
		}
		units[i] = v
	}
	if units[len(units)-1] != 0 {
		return "", rberr.New(rberr.KindString, "wide string is missing its null terminator")
	}
	return string(utf16.Decode(units[:len(units)-1])), nil
}

// writeWideString writes s as big-endian UTF-16 followed by a
// terminating 0x0000, returning the total byte length written (including
// the terminator), matching len_path/len_comment's `(len+1)*2` formula.
func writeWideString(w *storage.Writer, s string) (uint32, error) {
	units := utf16.Encode([]rune(s))
	for _, u := range units {
		if err := w.WriteUint16BE(u); err != nil {
			return 0, err
		}
	}
	if err := w.WriteUint16BE(0); err != nil {
		return 0, err
	}
	return uint32(len(units)+1) * 2, nil
}
