// Package parser turns a lexer.Token stream into a tree of object.Object
// values: literals and procedure/array bodies built from the nested
// brace/bracket structure of the source.
package parser

import (
	"fmt"
	"strconv"

	"github.com/psi-lang/psi/lexer"
	"github.com/psi-lang/psi/object"
)

// Error reports a parser failure: an unterminated procedure or array, or a
// stray closing bracket at top level.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser consumes a lexer.Lexer one token of lookahead at a time.
type Parser struct {
	lex  *lexer.Lexer
	tok  lexer.Token
	err  error
	init bool
}

// New returns a Parser over source.
func New(source string) *Parser {
	return &Parser{lex: lexer.New(source)}
}

func (p *Parser) current() (lexer.Token, error) {
	if !p.init {
		p.tok, p.err = p.lex.Next()
		p.init = true
	}
	return p.tok, p.err
}

func (p *Parser) advance() (lexer.Token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.EOF {
		p.tok, p.err = p.lex.Next()
	}
	return tok, nil
}

// Parse lexes and parses the whole source, returning the top-level object
// sequence.
func Parse(source string) ([]object.Object, error) {
	p := New(source)
	return p.ParseAll()
}

// ParseAll parses every object up to end-of-input.
func (p *Parser) ParseAll() ([]object.Object, error) {
	var result []object.Object
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return result, nil
		}
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		result = append(result, obj)
	}
}

func (p *Parser) parseObject() (object.Object, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lexer.Number:
		if tok.IsReal {
			f, ferr := strconv.ParseFloat(tok.Text, 64)
			if ferr != nil {
				return nil, &Error{tok.Line, tok.Column, fmt.Sprintf("malformed real %q", tok.Text)}
			}
			return object.Real(f), nil
		}
		n, nerr := strconv.ParseInt(tok.Text, 10, 64)
		if nerr != nil {
			return nil, &Error{tok.Line, tok.Column, fmt.Sprintf("malformed integer %q", tok.Text)}
		}
		return object.Integer(n), nil

	case lexer.String:
		return object.NewString(tok.Text), nil

	case lexer.LiteralName:
		return object.LiteralName(tok.Text), nil

	case lexer.Name:
		return object.ExecutableName(tok.Text), nil

	case lexer.LBrace:
		return p.parseProcedure(tok)

	case lexer.LBracket:
		return p.parseArray(tok)

	case lexer.RBrace:
		return nil, &Error{tok.Line, tok.Column, "unexpected '}'"}

	case lexer.RBracket:
		return nil, &Error{tok.Line, tok.Column, "unexpected ']'"}

	default:
		return nil, &Error{tok.Line, tok.Column, fmt.Sprintf("unexpected token %v", tok.Kind)}
	}
}

func (p *Parser) parseProcedure(open lexer.Token) (object.Object, error) {
	var body []object.Object
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return nil, &Error{open.Line, open.Column, "unterminated procedure"}
		}
		if tok.Kind == lexer.RBrace {
			p.advance()
			return object.NewProcedure(body), nil
		}
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		body = append(body, obj)
	}
}

func (p *Parser) parseArray(open lexer.Token) (object.Object, error) {
	var items []object.Object
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return nil, &Error{open.Line, open.Column, "unterminated array"}
		}
		if tok.Kind == lexer.RBracket {
			p.advance()
			return object.NewArrayFrom(items), nil
		}
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, obj)
	}
}
