package step

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/boynton/step/parse"
	"github.com/boynton/step/util"
)

// MaxColumn is the soft line width of the DATA section.
const MaxColumn = 80

// maxStringPart is the longest string written for one element of a split
// header field.
const maxStringPart = 256

// Writer serializes a File. In reference mode every item gets a sequential id
// and is written after the items it references. In inline mode referenced
// items are nested inside their referencers, and each entry of the file's
// Items is still written as its own declaration.
type Writer struct {
	Err    error
	file   *File
	inline bool
	ids    map[Item]int
	active map[Item]bool
	nextID int
	writer *bufio.Writer
	column int
}

func NewWriter(f *File, inline bool) *Writer {
	return &Writer{file: f, inline: inline}
}

func (w *Writer) Write(out io.Writer) error {
	w.Err = nil
	w.ids = make(map[Item]int)
	w.active = make(map[Item]bool)
	w.nextID = 0
	w.writer = bufio.NewWriter(out)
	w.writeHeader()
	w.emitLine(parse.DataText + ";")
	for _, item := range w.file.Items {
		w.writeItem(item)
	}
	w.emitLine(parse.EndSection + ";")
	w.emitLine(parse.MagicFooter + ";")
	if w.Err == nil {
		w.Err = w.writer.Flush()
	}
	return w.Err
}

func (w *Writer) fail(format string, args ...interface{}) {
	if w.Err == nil {
		w.Err = fmt.Errorf(format, args...)
	}
}

func (w *Writer) Emit(s string) {
	if w.Err == nil && w.writer != nil {
		_, w.Err = w.writer.WriteString(s)
	}
}

func (w *Writer) emitLine(s string) {
	w.Emit(s)
	w.Emit("\n")
	w.column = 0
}

func (w *Writer) writeHeader() {
	f := w.file
	w.emitLine(parse.MagicHeader + ";")
	w.emitLine(parse.HeaderText + ";")
	w.writeMacro(FileDescriptionText,
		parse.NewStringList(util.SplitString(f.Description, maxStringPart)...),
		parse.NewString(f.ImplementationLevel))
	w.writeMacro(FileNameText,
		parse.NewString(f.Name),
		parse.NewString(FormatTimestamp(f.Timestamp)),
		parse.NewStringList(util.SplitString(f.Author, maxStringPart)...),
		parse.NewStringList(util.SplitString(f.Organization, maxStringPart)...),
		parse.NewString(f.PreprocessorVersion),
		parse.NewString(f.OriginatingSystem),
		parse.NewString(f.Authorization))
	schemas := append(f.Schemas.Names(), f.UnsupportedSchemas...)
	w.writeMacro(FileSchemaText, parse.NewStringList(schemas...))
	w.emitLine(parse.EndSection + ";")
}

func (w *Writer) writeMacro(keyword string, values ...parse.Syntax) {
	atoms := w.atoms(parse.NewSimpleItem(keyword, values...), nil)
	w.emitLine(strings.Join(atoms, "") + ";")
}

func (w *Writer) writeItem(item Item) {
	if w.Err != nil || isNil(item) {
		return
	}
	if !w.inline {
		if _, ok := w.ids[item]; ok || w.active[item] {
			return
		}
		w.active[item] = true
		for _, child := range item.ReferencedItems() {
			w.writeItem(child)
		}
		delete(w.active, item)
	}
	w.nextID++
	id := w.nextID
	if !w.inline {
		w.ids[item] = id
	}
	w.active[item] = true
	syntax := parse.NewSimpleItem(item.Keyword(), item.Parameters(w)...)
	delete(w.active, item)
	atoms := append([]string{"#" + strconv.Itoa(id) + "="}, w.atoms(syntax, nil)...)
	w.writeWrapped(append(atoms, ";"))
}

// ItemSyntax encodes a child item as a nested KEYWORD(...) in inline mode or
// as an #id reference otherwise.
func (w *Writer) ItemSyntax(item Item) parse.Syntax {
	if isNil(item) {
		return parse.NewOmitted()
	}
	if w.inline {
		if w.active[item] {
			w.fail("cycle through %s cannot be written inline", item.Keyword())
			return parse.NewOmitted()
		}
		w.active[item] = true
		defer delete(w.active, item)
		return parse.NewSimpleItem(item.Keyword(), item.Parameters(w)...)
	}
	id, ok := w.ids[item]
	if !ok {
		w.fail("%s is referenced but was not written; is it missing from ReferencedItems?", item.Keyword())
		return parse.NewOmitted()
	}
	return parse.NewReference(id)
}

// OptionalItemSyntax is ItemSyntax with nil encoded as `*`.
func (w *Writer) OptionalItemSyntax(item Item) parse.Syntax {
	if isNil(item) {
		return parse.NewAuto()
	}
	return w.ItemSyntax(item)
}

// atoms flattens syn into the text fragments it is written as.
func (w *Writer) atoms(syn parse.Syntax, out []string) []string {
	switch v := syn.(type) {
	case *parse.List:
		out = append(out, "(")
		for i, value := range v.Values {
			if i > 0 {
				out = append(out, ",")
			}
			out = w.atoms(value, out)
		}
		out = append(out, ")")
	case *parse.SimpleItem:
		out = append(out, v.Keyword+"(")
		for i, value := range v.Parameters.Values {
			if i > 0 {
				out = append(out, ",")
			}
			out = w.atoms(value, out)
		}
		out = append(out, ")")
	case *parse.ComplexItem:
		out = append(out, "(")
		for _, part := range v.Items {
			out = w.atoms(part, out)
		}
		out = append(out, ")")
	case *parse.EntityInstanceReference:
		out = append(out, "#"+strconv.Itoa(v.ID))
	case *parse.Auto:
		out = append(out, "*")
	case *parse.Omitted:
		out = append(out, "$")
	case *parse.String:
		out = append(out, QuoteString(v.Value))
	case *parse.Integer:
		out = append(out, strconv.Itoa(v.Value))
	case *parse.Real:
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			w.fail("cannot write real value %v", v.Value)
		}
		out = append(out, FormatReal(v.Value))
	case *parse.Enumeration:
		out = append(out, "."+v.Value+".")
	default:
		w.fail("cannot write %T", syn)
	}
	return out
}

// writeWrapped groups atoms into chunks and breaks the line before any chunk
// that would pass MaxColumn. Separators and closers stay with the preceding
// text and openers stay with the following text.
func (w *Writer) writeWrapped(atoms []string) {
	var chunks []string
	var current strings.Builder
	prev := ""
	for _, a := range atoms {
		glue := current.Len() == 0 || a == "," || a == ")" || a == ";" ||
			strings.HasSuffix(prev, "(") || strings.HasSuffix(prev, "=")
		if !glue {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(a)
		prev = a
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	for _, chunk := range chunks {
		n := utf8.RuneCountInString(chunk)
		if w.column > 0 && w.column+n > MaxColumn {
			w.Emit("\n")
			w.column = 0
		}
		w.Emit(chunk)
		w.column += n
	}
	w.Emit("\n")
	w.column = 0
}

// QuoteString encodes s as a string literal.
func QuoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}

// FormatReal writes f so that it always reads back as a real: whole numbers
// get a trailing ".0" and very large or small magnitudes use an exponent.
func FormatReal(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'E', -1, 64)
		if mantissa, exponent, ok := strings.Cut(s, "E"); ok && !strings.Contains(mantissa, ".") {
			s = mantissa + ".0E" + exponent
		}
		return s
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
