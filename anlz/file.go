package anlz

import (
	"io"

	"rekordcrate/internal/rberr"
	"rekordcrate/internal/storage"
)

// Section is one header-plus-content unit inside an ANLZ file.
type Section struct {
	Header  Header
	Content Content
}

func readSection(r *storage.Reader) (Section, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return Section{}, err
	}
	content, err := readContent(r, header)
	if err != nil {
		return Section{}, err
	}
	return Section{Header: header, Content: content}, nil
}

func (s Section) write(w *storage.Writer) error {
	if err := s.Header.Write(w); err != nil {
		return err
	}
	return s.Content.write(w)
}

// File is a parsed ANLZ0000.DAT/.EXT/.2EX analysis file: the outer "PMAI"
// header (whose own remainder is preserved verbatim) followed by a
// sequence of subsections, each independently addressable even when its
// kind is not one this module interprets.
type File struct {
	Header     Header
	HeaderData []byte
	Sections   []Section
}

// Open parses a complete ANLZ file from src.
func Open(src io.ReadSeeker) (*File, error) {
	r := storage.NewReader(src)
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if header.Kind != KindFile {
		return nil, rberr.New(rberr.KindStructural, "outer ANLZ section kind is %v, want %v", header.Kind, KindFile)
	}
	headerData := make([]byte, header.RemainingSize())
	if err := r.ReadFull(headerData); err != nil {
		return nil, err
	}

	final := r.Pos() + int64(header.ContentSize())
	var sections []Section
	for r.Pos() < final {
		section, err := readSection(r)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return &File{Header: header, HeaderData: headerData, Sections: sections}, nil
}

// Write serializes the file to dst, reproducing the original bytes when
// the parsed tree was not otherwise mutated.
func (f *File) Write(dst io.WriteSeeker) error {
	w := storage.NewWriter(dst)
	if err := f.Header.Write(w); err != nil {
		return err
	}
	if err := w.WriteBytes(f.HeaderData); err != nil {
		return err
	}
	for _, s := range f.Sections {
		if err := s.write(w); err != nil {
			return err
		}
	}
	return nil
}
