package step

import (
	"io"
	"log/slog"
	"strings"

	"github.com/boynton/step/parse"
)

const (
	FileDescriptionText = "FILE_DESCRIPTION"
	FileNameText        = "FILE_NAME"
	FileSchemaText      = "FILE_SCHEMA"
)

// Reader drives the scanner, parser and binder to build a File. A Reader
// holds per-read diagnostics and must not be used by two reads at once.
type Reader struct {
	Registry *Registry
	Logger   *slog.Logger

	unsupported map[string]bool
	order       []string
}

func NewReader() *Reader {
	return &Reader{Registry: DefaultRegistry, Logger: slog.Default()}
}

// Unsupported lists the keywords skipped by the most recent Read, in the
// order they were first seen.
func (r *Reader) Unsupported() []string {
	return append([]string(nil), r.order...)
}

func (r *Reader) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// noteUnsupported logs a skipped keyword the first time it is seen in a read.
func (r *Reader) noteUnsupported(keyword string) {
	if r == nil || r.unsupported[keyword] {
		return
	}
	r.unsupported[keyword] = true
	r.order = append(r.order, keyword)
	r.logger().Debug("unsupported item type", "keyword", keyword)
}

func (r *Reader) Read(in io.Reader) (*File, error) {
	r.unsupported = make(map[string]bool)
	r.order = nil
	syntax, err := parse.File(in)
	if err != nil {
		return nil, err
	}
	file := &File{Schemas: NewSchemaSet()}
	if err := r.applyHeader(file, syntax.Header); err != nil {
		return nil, err
	}
	registry := r.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	binder := NewBinder(registry)
	binder.session = r
	for _, instance := range syntax.Data.Instances {
		item, ok, err := registry.TryConstruct(instance.Item, binder)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.noteUnsupported(itemKeyword(instance.Item))
			if err := binder.Skip(instance.ID, itemKeyword(instance.Item), instance); err != nil {
				return nil, err
			}
			continue
		}
		if err := binder.Define(instance.ID, item, instance); err != nil {
			return nil, err
		}
		file.Items = append(file.Items, item)
	}
	if err := binder.BindRemainingValues(); err != nil {
		return nil, err
	}
	if len(r.order) > 0 {
		r.logger().Info("skipped unsupported items", "keywords", strings.Join(r.order, ","))
	}
	return file, nil
}

func itemKeyword(syn parse.ItemSyntax) string {
	switch v := syn.(type) {
	case *parse.SimpleItem:
		return v.Keyword
	case *parse.ComplexItem:
		return "(" + strings.Join(v.Keywords(), " ") + ")"
	}
	return "?"
}

func (r *Reader) applyHeader(file *File, header *parse.HeaderSection) error {
	for _, macro := range header.Macros {
		var err error
		switch macro.Keyword {
		case FileDescriptionText:
			err = applyFileDescription(file, macro.Values)
		case FileNameText:
			err = applyFileName(file, macro.Values)
		case FileSchemaText:
			err = applyFileSchema(file, macro.Values)
		default:
			r.logger().Debug("ignoring header macro", "keyword", macro.Keyword)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func applyFileDescription(file *File, values *parse.List) error {
	if err := values.AssertCount(2); err != nil {
		return err
	}
	var err error
	if file.Description, err = parse.ConcatenatedStringValue(values.Values[0]); err != nil {
		return err
	}
	file.ImplementationLevel, err = parse.StringValue(values.Values[1])
	return err
}

func applyFileName(file *File, values *parse.List) error {
	if err := values.AssertCount(7); err != nil {
		return err
	}
	v := values.Values
	var err error
	if file.Name, err = parse.StringValue(v[0]); err != nil {
		return err
	}
	ts, err := parse.StringValue(v[1])
	if err != nil {
		return err
	}
	if file.Timestamp, err = ParseTimestamp(ts); err != nil {
		return parse.ErrorAt(parse.ValueError, v[1], "%v", err)
	}
	if file.Author, err = parse.ConcatenatedStringValue(v[2]); err != nil {
		return err
	}
	if file.Organization, err = parse.ConcatenatedStringValue(v[3]); err != nil {
		return err
	}
	if file.PreprocessorVersion, err = parse.StringValue(v[4]); err != nil {
		return err
	}
	if file.OriginatingSystem, err = parse.StringValue(v[5]); err != nil {
		return err
	}
	file.Authorization, err = parse.StringValue(v[6])
	return err
}

func applyFileSchema(file *File, values *parse.List) error {
	if err := values.AssertCount(1); err != nil {
		return err
	}
	names, err := parse.StringListValue(values.Values[0])
	if err != nil {
		return err
	}
	for _, name := range names {
		if t, ok := SchemaTypeFromName(name); ok {
			file.Schemas.Add(t)
		} else {
			file.UnsupportedSchemas = append(file.UnsupportedSchemas, name)
		}
	}
	return nil
}
