package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boynton/step/util"
)

var eof = rune(-1)

// Scanner turns a character stream into tokens. It makes a single forward
// pass over the reader and cannot be restarted.
type Scanner struct {
	r          *bufio.Reader
	line       int
	column     int
	prevColumn int
	err        error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), line: 1, column: 0}
}

func (s *Scanner) read() rune {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return eof
	}
	if ch == '\n' {
		s.line = s.line + 1
		s.prevColumn = s.column + 1
		s.column = 0
	} else {
		s.column = s.column + 1
	}
	return ch
}

func (s *Scanner) unread(ch rune) {
	if ch == eof {
		return
	}
	if ch == '\n' {
		s.column = s.prevColumn - 1
		s.line = s.line - 1
	} else {
		s.column = s.column - 1
	}
	s.r.UnreadRune()
}

func (s *Scanner) startToken(tokenType TokenType) Token {
	return Token{Type: tokenType, Text: "", Line: s.line, Start: s.column}
}

func (s *Scanner) errorAt(tok Token, format string, args ...interface{}) error {
	return Errorf(LexicalError, tok.Line, tok.Start, format, args...)
}

// unterminated reports a token cut short by the end of the stream, or the read
// error that ended it.
func (s *Scanner) unterminated(tok Token, format string, args ...interface{}) error {
	if s.err != nil {
		return fmt.Errorf("cannot read input: %w", s.err)
	}
	return s.errorAt(tok, format, args...)
}

// Scan returns the next token. At the end of the stream it returns a token of
// type EOF; every malformed construct is reported as a lexical *Error.
func (s *Scanner) Scan() (Token, error) {
	for {
		ch := s.read()
		switch {
		case ch == eof:
			if s.err != nil {
				return Token{}, fmt.Errorf("cannot read input: %w", s.err)
			}
			return Token{Type: EOF, Line: s.line, Start: s.column + 1}, nil
		case util.IsWhitespace(ch):
			continue
		case ch == '/':
			if err := s.skipComment(); err != nil {
				return Token{}, err
			}
		case util.IsDigit(ch) || ch == '+' || ch == '-':
			return s.scanNumber(ch)
		case ch == '\'':
			return s.scanString()
		case ch == '#':
			return s.scanInstance(ENTITY_INSTANCE, CONSTANT_INSTANCE, ch)
		case ch == '@':
			return s.scanInstance(INSTANCE_VALUE, CONSTANT_VALUE, ch)
		case ch == '.':
			return s.scanEnumeration()
		case util.IsUppercaseLetter(ch):
			return s.scanKeyword(ch)
		default:
			return s.scanPunct(ch)
		}
	}
}

func (s *Scanner) skipComment() error {
	tok := s.startToken(UNDEFINED)
	if ch := s.read(); ch != '*' {
		s.unread(ch)
		return s.errorAt(tok, "Unexpected character '/'")
	}
	star := false
	for {
		ch := s.read()
		switch {
		case ch == eof:
			return s.unterminated(tok, "Unterminated comment")
		case star && ch == '/':
			return nil
		default:
			star = ch == '*'
		}
	}
}

func (s *Scanner) scanNumber(first rune) (Token, error) {
	var buf strings.Builder
	buf.WriteRune(first)
	tok := s.startToken(INTEGER)
	digits := util.IsDigit(first)
	gotDecimal, gotExponent, exponentDigits := false, false, false
	prev := first
loop:
	for {
		ch := s.read()
		switch {
		case util.IsDigit(ch):
			if gotExponent {
				exponentDigits = true
			} else {
				digits = true
			}
		case ch == '.' && !gotDecimal && !gotExponent:
			gotDecimal = true
		case (ch == 'e' || ch == 'E') && !gotExponent && digits:
			gotExponent = true
		case (ch == '+' || ch == '-') && (prev == 'e' || prev == 'E') && gotExponent:
		default:
			s.unread(ch)
			break loop
		}
		buf.WriteRune(ch)
		prev = ch
	}
	text := buf.String()
	tok.Text = text
	if !digits || (gotExponent && !exponentDigits) {
		return tok, s.errorAt(tok, "Malformed number %q", text)
	}
	if gotDecimal || gotExponent {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return tok, s.errorAt(tok, "Malformed real %q", text)
		}
		tok.Type = REAL
		tok.Real = f
		return tok, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return tok, s.errorAt(tok, "Integer out of range %q", text)
	}
	tok.Int = n
	return tok, nil
}

func (s *Scanner) scanString() (Token, error) {
	var buf strings.Builder
	tok := s.startToken(STRING)
	for {
		ch := s.read()
		switch ch {
		case eof:
			return tok, s.unterminated(tok, "Unterminated string")
		case '\'':
			next := s.read()
			if next == '\'' {
				buf.WriteRune('\'')
				continue
			}
			s.unread(next)
			tok.Text = buf.String()
			return tok, nil
		case '\\':
			next := s.read()
			if next == eof {
				return tok, s.unterminated(tok, "Unterminated string")
			}
			buf.WriteRune(next)
		default:
			buf.WriteRune(ch)
		}
	}
}

func (s *Scanner) scanInstance(numbered, named TokenType, sigil rune) (Token, error) {
	tok := s.startToken(numbered)
	var buf strings.Builder
	ch := s.read()
	switch {
	case util.IsDigit(ch):
		for util.IsDigit(ch) {
			buf.WriteRune(ch)
			ch = s.read()
		}
		s.unread(ch)
		n, err := strconv.Atoi(buf.String())
		if err != nil {
			return tok, s.errorAt(tok, "Instance id out of range %c%s", sigil, buf.String())
		}
		tok.Int = n
		tok.Text = string(sigil) + buf.String()
		return tok, nil
	case util.IsUppercaseLetter(ch):
		for util.IsUppercaseLetter(ch) || util.IsDigit(ch) || ch == '_' {
			buf.WriteRune(ch)
			ch = s.read()
		}
		s.unread(ch)
		tok.Type = named
		tok.Text = buf.String()
		return tok, nil
	}
	s.unread(ch)
	return tok, s.errorAt(tok, "Expected digit or uppercase letter after '%c'", sigil)
}

func (s *Scanner) scanEnumeration() (Token, error) {
	tok := s.startToken(ENUMERATION)
	var buf strings.Builder
	for {
		ch := s.read()
		switch {
		case util.IsUppercaseLetter(ch) || util.IsDigit(ch) || ch == '_':
			buf.WriteRune(ch)
		case ch == '.':
			if buf.Len() == 0 {
				return tok, s.errorAt(tok, "Empty enumeration value")
			}
			tok.Text = buf.String()
			return tok, nil
		default:
			s.unread(ch)
			if ch == eof {
				return tok, s.unterminated(tok, "Unterminated enumeration .%s", buf.String())
			}
			return tok, s.errorAt(tok, "Unterminated enumeration .%s", buf.String())
		}
	}
}

func (s *Scanner) scanKeyword(first rune) (Token, error) {
	var buf strings.Builder
	buf.WriteRune(first)
	tok := s.startToken(KEYWORD)
	for {
		ch := s.read()
		if util.IsUppercaseLetter(ch) || util.IsDigit(ch) || ch == '_' || ch == '-' {
			buf.WriteRune(ch)
			continue
		}
		s.unread(ch)
		break
	}
	tok.Text = buf.String()
	return tok, nil
}

func (s *Scanner) scanPunct(ch rune) (Token, error) {
	tok := s.startToken(UNDEFINED)
	tok.Text = string(ch)
	switch ch {
	case '$':
		tok.Type = OMITTED
	case ';':
		tok.Type = SEMICOLON
	case '=':
		tok.Type = EQUALS
	case '*':
		tok.Type = ASTERISK
	case '(':
		tok.Type = OPEN_PAREN
	case ')':
		tok.Type = CLOSE_PAREN
	case ',':
		tok.Type = COMMA
	default:
		return tok, s.errorAt(tok, "Unexpected character %q", ch)
	}
	return tok, nil
}
