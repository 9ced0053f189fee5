package setting

import (
	"bytes"

	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// readFixedNullString reads a size-byte field holding a null-terminated
// ASCII string padded with zero bytes, as used for the brand/software/
// version fields of the envelope.
func readFixedNullString(r *storage.Reader, size int) (string, error) {
	buf := make([]byte, size)
	if err := r.ReadFull(buf); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// writeFixedNullString writes s null-terminated and zero-padded to size
// bytes. s (plus its terminator) must fit.
func writeFixedNullString(w *storage.Writer, s string, size int) error {
	if len(s) > size-1 {
		return rberr.New(rberr.KindStructural, "string %q exceeds %d-byte fixed field", s, size)
	}
	buf := make([]byte, size)
	copy(buf, s)
	return w.WriteBytes(buf)
}
