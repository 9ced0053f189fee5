package setting

import (
	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// readEnum8 reads a single byte and rejects any value outside the closed
// set a preference field is allowed to take, the same validation anlz's
// readCueType applies to its own closed byte enum.
func readEnum8[T ~uint8](r *storage.Reader, valid map[T]bool, name string) (T, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	v := T(b)
	if !valid[v] {
		return 0, rberr.New(rberr.KindStructural, "invalid %s value 0x%02x", name, b)
	}
	return v, nil
}

func writeEnum8[T ~uint8](w *storage.Writer, v T) error {
	return w.WriteUint8(uint8(v))
}
