package step

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// File is an ISO-10303-21 physical file: the header fields plus the items of
// the DATA section in declaration order.
type File struct {
	// FILE_DESCRIPTION values
	Description         string
	ImplementationLevel string

	// FILE_NAME values
	Name                string
	Timestamp           time.Time
	Author              string
	Organization        string
	PreprocessorVersion string
	OriginatingSystem   string
	Authorization       string

	// FILE_SCHEMA values. Names that are not recognized are kept verbatim.
	Schemas            SchemaSet
	UnsupportedSchemas []string

	Items []Item
}

func NewFile() *File {
	return &File{
		ImplementationLevel: "2;1",
		Timestamp:           time.Now(),
		Schemas:             NewSchemaSet(),
	}
}

// Load reads a STEP file from r using the default registry.
//
//	import "github.com/boynton/step"
//	...
//	file, err := step.Load(r)
func Load(r io.Reader) (*File, error) {
	return NewReader().Read(r)
}

func Parse(text string) (*File, error) {
	return Load(strings.NewReader(text))
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	file, err := Load(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Save writes the file. With inline set, referenced items are nested inside
// their referencers instead of being written as separate declarations.
func (f *File) Save(w io.Writer, inline bool) error {
	return NewWriter(f, inline).Write(w)
}

func (f *File) SaveFile(path string, inline bool) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Save(out, inline); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (f *File) ContentsAsString(inline bool) (string, error) {
	var sb strings.Builder
	if err := f.Save(&sb, inline); err != nil {
		return "", err
	}
	return sb.String(), nil
}
