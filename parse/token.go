package parse

import (
	"fmt"
)

type TokenType int

const (
	UNDEFINED TokenType = iota
	EOF
	SEMICOLON
	INTEGER
	REAL
	STRING
	OMITTED
	CONSTANT_INSTANCE
	CONSTANT_VALUE
	ENTITY_INSTANCE
	INSTANCE_VALUE
	ENUMERATION
	OPEN_PAREN
	CLOSE_PAREN
	COMMA
	EQUALS
	ASTERISK
	KEYWORD
)

// Token is a single lexical element of a physical file. Text holds the decoded
// payload: the string contents, the enumeration value without its dots, the
// keyword, or the literal number text. Int and Real carry decoded numbers and
// instance ids.
type Token struct {
	Type  TokenType
	Text  string
	Line  int
	Start int
	Int   int
	Real  float64
}

func (tokenType TokenType) String() string {
	switch tokenType {
	case UNDEFINED:
		return "UNDEFINED"
	case EOF:
		return "EOF"
	case SEMICOLON:
		return "SEMICOLON"
	case INTEGER:
		return "INTEGER"
	case REAL:
		return "REAL"
	case STRING:
		return "STRING"
	case OMITTED:
		return "OMITTED"
	case CONSTANT_INSTANCE:
		return "CONSTANT_INSTANCE"
	case CONSTANT_VALUE:
		return "CONSTANT_VALUE"
	case ENTITY_INSTANCE:
		return "ENTITY_INSTANCE"
	case INSTANCE_VALUE:
		return "INSTANCE_VALUE"
	case ENUMERATION:
		return "ENUMERATION"
	case OPEN_PAREN:
		return "OPEN_PAREN"
	case CLOSE_PAREN:
		return "CLOSE_PAREN"
	case COMMA:
		return "COMMA"
	case EQUALS:
		return "EQUALS"
	case ASTERISK:
		return "ASTERISK"
	case KEYWORD:
		return "KEYWORD"
	}
	return "?"
}

func (tok Token) String() string {
	return fmt.Sprintf("<%v %q %d:%d>", tok.Type, tok.Text, tok.Line, tok.Start)
}

func (tok Token) IsKeyword(text string) bool {
	return tok.Type == KEYWORD && tok.Text == text
}
