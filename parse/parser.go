package parse

import (
	"fmt"
	"io"
	"strings"
)

const (
	MagicHeader = "ISO-10303-21"
	MagicFooter = "END-" + MagicHeader
	HeaderText  = "HEADER"
	EndSection  = "ENDSEC"
	DataText    = "DATA"
)

// File parses a complete physical file from r.
//
//	import "github.com/boynton/step/parse"
//	...
//	syntax, err := parse.File(r)
func File(r io.Reader) (*FileSyntax, error) {
	return NewParser(r).ParseFile()
}

// Text parses a complete physical file held in a string.
//
//	import "github.com/boynton/step/parse"
//	...
//	syntax, err := parse.Text("ISO-10303-21; ...")
func Text(src string) (*FileSyntax, error) {
	return File(strings.NewReader(src))
}

//----------------

// Parser is a recursive descent parser with one token of lookahead. It builds
// the syntax tree only; arity and types are checked by the item factories.
type Parser struct {
	scanner       *Scanner
	lastToken     *Token
	prevLastToken *Token
	ungottenToken *Token
}

func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: NewScanner(r)}
}

func (p *Parser) ungetToken() {
	p.ungottenToken = p.lastToken
	p.lastToken = p.prevLastToken
}

func (p *Parser) getToken() (*Token, error) {
	if p.ungottenToken != nil {
		p.lastToken = p.ungottenToken
		p.ungottenToken = nil
		return p.lastToken, nil
	}
	p.prevLastToken = p.lastToken
	tok, err := p.scanner.Scan()
	if err != nil {
		return nil, err
	}
	p.lastToken = &tok
	return p.lastToken, nil
}

func (p *Parser) ParseFile() (*FileSyntax, error) {
	if err := p.expectKeyword(MagicHeader); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	header, err := p.parseHeaderSection()
	if err != nil {
		return nil, err
	}
	data, err := p.parseDataSection()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(MagicFooter); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	tok, err := p.getToken()
	if err != nil {
		return nil, err
	}
	if tok.Type != EOF {
		return nil, p.Error(tok, fmt.Sprintf("Expected %v, found %v", EOF, tok.Type))
	}
	return &FileSyntax{Header: header, Data: data}, nil
}

func (p *Parser) parseHeaderSection() (*HeaderSection, error) {
	if err := p.expectKeyword(HeaderText); err != nil {
		return nil, err
	}
	section := &HeaderSection{node: at(p.lastToken)}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	for {
		tok, err := p.getToken()
		if err != nil {
			return nil, err
		}
		if tok.IsKeyword(EndSection) {
			_, err = p.expect(SEMICOLON)
			return section, err
		}
		if tok.Type != KEYWORD {
			return nil, p.Error(tok, fmt.Sprintf("Expected header macro, found %v", tok.Type))
		}
		macro := &HeaderMacro{node: at(tok), Keyword: tok.Text}
		open, err := p.expect(OPEN_PAREN)
		if err != nil {
			return nil, err
		}
		if macro.Values, err = p.parseList(open); err != nil {
			return nil, err
		}
		if _, err = p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		section.Macros = append(section.Macros, macro)
	}
}

func (p *Parser) parseDataSection() (*DataSection, error) {
	if err := p.expectKeyword(DataText); err != nil {
		return nil, err
	}
	section := &DataSection{node: at(p.lastToken)}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	for {
		tok, err := p.getToken()
		if err != nil {
			return nil, err
		}
		if tok.IsKeyword(EndSection) {
			_, err = p.expect(SEMICOLON)
			return section, err
		}
		if tok.Type != ENTITY_INSTANCE {
			return nil, p.Error(tok, fmt.Sprintf("Expected %v, found %v", ENTITY_INSTANCE, tok.Type))
		}
		instance := &EntityInstance{node: at(tok), ID: tok.Int}
		if _, err = p.expect(EQUALS); err != nil {
			return nil, err
		}
		if instance.Item, err = p.parseItemSyntax(); err != nil {
			return nil, err
		}
		if _, err = p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		section.Instances = append(section.Instances, instance)
	}
}

func (p *Parser) parseItemSyntax() (ItemSyntax, error) {
	tok, err := p.getToken()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case KEYWORD:
		return p.parseSimpleItem(tok)
	case OPEN_PAREN:
		ci := &ComplexItem{node: at(tok)}
		for {
			tok, err = p.getToken()
			if err != nil {
				return nil, err
			}
			if tok.Type == CLOSE_PAREN && len(ci.Items) > 0 {
				return ci, nil
			}
			if tok.Type != KEYWORD {
				return nil, p.Error(tok, fmt.Sprintf("Expected %v, found %v", KEYWORD, tok.Type))
			}
			part, err := p.parseSimpleItem(tok)
			if err != nil {
				return nil, err
			}
			ci.Items = append(ci.Items, part)
		}
	}
	return nil, p.Error(tok, fmt.Sprintf("Expected %v or %v, found %v", KEYWORD, OPEN_PAREN, tok.Type))
}

func (p *Parser) parseSimpleItem(keyword *Token) (*SimpleItem, error) {
	open, err := p.expect(OPEN_PAREN)
	if err != nil {
		return nil, err
	}
	params, err := p.parseList(open)
	if err != nil {
		return nil, err
	}
	return &SimpleItem{node: at(keyword), Keyword: keyword.Text, Parameters: params}, nil
}

// parseList parses the remainder of a list whose opening paren has already
// been consumed.
func (p *Parser) parseList(open *Token) (*List, error) {
	list := &List{node: at(open), Values: []Syntax{}}
	tok, err := p.getToken()
	if err != nil {
		return nil, err
	}
	if tok.Type == CLOSE_PAREN {
		return list, nil
	}
	p.ungetToken()
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, value)
		tok, err = p.getToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case COMMA:
			continue
		case CLOSE_PAREN:
			return list, nil
		default:
			return nil, p.Error(tok, fmt.Sprintf("Expected %v or %v, found %v", COMMA, CLOSE_PAREN, tok.Type))
		}
	}
}

func (p *Parser) parseValue() (Syntax, error) {
	tok, err := p.getToken()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case INTEGER:
		return &Integer{node: at(tok), Value: tok.Int}, nil
	case REAL:
		return &Real{node: at(tok), Value: tok.Real}, nil
	case STRING:
		return &String{node: at(tok), Value: tok.Text}, nil
	case ASTERISK:
		return &Auto{node: at(tok)}, nil
	case OMITTED:
		return &Omitted{node: at(tok)}, nil
	case ENUMERATION:
		return &Enumeration{node: at(tok), Value: tok.Text}, nil
	case ENTITY_INSTANCE:
		return &EntityInstanceReference{node: at(tok), ID: tok.Int}, nil
	case OPEN_PAREN:
		return p.parseList(tok)
	case KEYWORD:
		return p.parseSimpleItem(tok)
	}
	return nil, p.Error(tok, fmt.Sprintf("Unexpected %v", tok.Type))
}

func (p *Parser) Error(tok *Token, msg string) error {
	return Errorf(SyntaxError, tok.Line, tok.Start, "%s", msg)
}

func (p *Parser) expect(toktype TokenType) (*Token, error) {
	tok, err := p.getToken()
	if err != nil {
		return nil, err
	}
	if tok.Type == toktype {
		return tok, nil
	}
	return nil, p.Error(tok, fmt.Sprintf("Expected %v, found %v", toktype, tok.Type))
}

func (p *Parser) expectKeyword(keyword string) error {
	tok, err := p.getToken()
	if err != nil {
		return err
	}
	if tok.IsKeyword(keyword) {
		return nil
	}
	if tok.Type == KEYWORD {
		return p.Error(tok, fmt.Sprintf("Expected %s, found %s", keyword, tok.Text))
	}
	return p.Error(tok, fmt.Sprintf("Expected %s, found %v", keyword, tok.Type))
}
