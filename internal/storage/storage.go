// Package storage provides the little/big-endian byte primitives shared by
// the pdb, anlz and setting codecs: a seekable Reader and Writer with
// peek/probe helpers and the alignment arithmetic every row and section
// schema depends on.
//
// Its shape is rebuilt from the call sites of a similarly-named package
// seen elsewhere (Peek, PeekShort, ReadByte and friends), extended with
// the big-endian and seek-probe operations this format's mixed
// endianness requires.
package storage

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"rekordcrate/internal/rberr"
)

// Reader wraps a seekable byte stream and exposes the fixed-width read
// primitives every engine in this module is built from.
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps r for reading.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Pos returns the reader's current offset from the start of the stream.
func (r *Reader) Pos() int64 {
	pos, err := r.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Seek repositions the underlying stream.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	pos, err := r.r.Seek(offset, whence)
	if err != nil {
		return pos, rberr.Wrap(rberr.KindIO, err, "seek")
	}
	return pos, nil
}

// SeekTo is Seek(offset, io.SeekStart) with position-tagged error reporting.
func (r *Reader) SeekTo(offset int64) error {
	if _, err := r.r.Seek(offset, io.SeekStart); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, offset, "seek to absolute offset")
	}
	return nil
}

// ReadFull reads exactly len(buf) bytes.
func (r *Reader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, r.Pos(), "read %d bytes", len(buf))
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	var b [1]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekBytes reads n bytes without consuming them, restoring the cursor
// afterwards.
func (r *Reader) PeekBytes(n int) ([]byte, error) {
	start := r.Pos()
	buf := make([]byte, n)
	err := r.ReadFull(buf)
	if _, seekErr := r.r.Seek(start, io.SeekStart); seekErr != nil && err == nil {
		err = rberr.WrapAt(rberr.KindIO, seekErr, start, "restore cursor after peek")
	}
	return buf, err
}

// PeekByte peeks a single byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	buf, err := r.PeekBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadUint16LE reads a little-endian 16-bit unsigned integer.
func (r *Reader) ReadUint16LE() (uint16, error) {
	var b [2]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUint16BE reads a big-endian 16-bit unsigned integer.
func (r *Reader) ReadUint16BE() (uint16, error) {
	var b [2]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// ReadUint32LE reads a little-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32LE() (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadUint32BE reads a big-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32BE() (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// ExpectMagic reads len(magic) bytes and fails with a structural error if
// they do not equal magic exactly.
func (r *Reader) ExpectMagic(magic []byte) error {
	start := r.Pos()
	got, err := func() ([]byte, error) {
		buf := make([]byte, len(magic))
		if err := r.ReadFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}()
	if err != nil {
		return err
	}
	for i := range magic {
		if got[i] != magic[i] {
			return rberr.At(rberr.KindStructural, start, "expected magic %x, got %x", magic, got)
		}
	}
	return nil
}

// Writer wraps a seekable byte stream and exposes the fixed-width write
// primitives every engine in this module is built from.
type Writer struct {
	w io.WriteSeeker
}

// NewWriter wraps w for writing.
func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{w: w}
}

// Pos returns the writer's current offset from the start of the stream.
func (w *Writer) Pos() int64 {
	pos, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Seek repositions the underlying stream.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	pos, err := w.w.Seek(offset, whence)
	if err != nil {
		return pos, rberr.Wrap(rberr.KindIO, err, "seek")
	}
	return pos, nil
}

// SeekTo is Seek(offset, io.SeekStart) with position-tagged error reporting.
func (w *Writer) SeekTo(offset int64) error {
	if _, err := w.w.Seek(offset, io.SeekStart); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, offset, "seek to absolute offset")
	}
	return nil
}

// WriteBytes writes buf verbatim.
func (w *Writer) WriteBytes(buf []byte) error {
	if _, err := w.w.Write(buf); err != nil {
		return rberr.WrapAt(rberr.KindIO, err, w.Pos(), "write %d bytes", len(buf))
	}
	return nil
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

// WriteUint16LE writes a little-endian 16-bit unsigned integer.
func (w *Writer) WriteUint16LE(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteUint16BE writes a big-endian 16-bit unsigned integer.
func (w *Writer) WriteUint16BE(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteUint32LE writes a little-endian 32-bit unsigned integer.
func (w *Writer) WriteUint32LE(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteUint32BE writes a big-endian 32-bit unsigned integer.
func (w *Writer) WriteUint32BE(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

// AlignBy computes the smallest offset >= offset that is a multiple of
// alignment, matching the source formula
// offset + ((alignment - offset mod alignment) mod alignment).
func AlignBy(alignment, offset int) int {
	if alignment <= 1 {
		return offset
	}
	rem := offset % alignment
	if rem == 0 {
		return offset
	}
	return offset + (alignment - rem)
}

// Must panics if err is non-nil. Reserved for use in generated fixtures and
// tests, never in library code paths that can observe real I/O errors.
func Must(err error) {
	if err != nil {
		panic(errors.Wrap(err, "storage.Must"))
	}
}
