package parse

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

type Category int

const (
	LexicalError Category = iota
	SyntaxError
	ArityError
	BindingError
	ValueError
	InternalError
)

func (c Category) String() string {
	switch c {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case ArityError:
		return "arity"
	case BindingError:
		return "binding"
	case ValueError:
		return "value"
	case InternalError:
		return "internal"
	}
	return "?"
}

// Error is the single failure type raised while reading a physical file. A
// malformed file always aborts the whole read with one of these.
type Error struct {
	Category Category
	Message  string
	Line     int
	Column   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at [%d:%d]", e.Message, e.Line, e.Column)
}

func Errorf(category Category, line, column int, format string, args ...interface{}) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   column,
	}
}

// Positioned is anything that knows where in the source it came from.
type Positioned interface {
	Pos() (line, column int)
}

// ErrorAt locates an error at the position of the given node.
func ErrorAt(category Category, at Positioned, format string, args ...interface{}) *Error {
	line, column := 0, 0
	if at != nil {
		line, column = at.Pos()
	}
	return Errorf(category, line, column, format, args...)
}

// IsCategory reports whether err is, or wraps, an *Error of the given category.
func IsCategory(err error, category Category) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Category == category
	}
	return false
}

const BLACK = "\033[0;0m"
const RED = "\033[0;31m"
const YELLOW = "\033[0;33m"

// Annotate renders err with a highlighted excerpt of the source around its
// position. Errors that carry no position are returned as plain text.
func Annotate(filename string, source string, err error, color string, contextSize int) string {
	var perr *Error
	if !errors.As(err, &perr) || perr.Line <= 0 || source == "" || contextSize < 0 {
		return err.Error()
	}
	highlight := color + "\033[1m"
	restore := BLACK + "\033[0m"
	lines := strings.Split(source, "\n")
	line := perr.Line - 1
	begin := max(0, line-contextSize)
	end := min(len(lines), line+contextSize+1)
	var sb strings.Builder
	for i := begin; i < end; i++ {
		l := strings.TrimRight(lines[i], "\r")
		if i == line && perr.Column > 0 && perr.Column <= len(l) {
			col := perr.Column - 1
			sb.WriteString(fmt.Sprintf("%3d\t%s", i+1, l[:col]))
			sb.WriteString(fmt.Sprintf("%s%s%s", highlight, l[col:col+1], restore))
			sb.WriteString(fmt.Sprintf("%s\n", l[col+1:]))
		} else {
			sb.WriteString(fmt.Sprintf("%3d\t%s\n", i+1, l))
		}
	}
	if filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s%s%s\n%s", path.Base(filename), perr.Line, perr.Column, highlight, perr.Message, restore, sb.String())
	}
	return fmt.Sprintf("%d:%d: %s%s%s\n%s", perr.Line, perr.Column, highlight, perr.Message, restore, sb.String())
}
