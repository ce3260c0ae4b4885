package lexer

import (
	"fmt"
	"strings"
)

// Error reports a lexer failure: an unterminated string literal.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

const delimiters = " \t\n\r()<>[]{}/%"

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}

// Lexer turns source text into a lazy stream of Tokens, terminated by an
// EOF token. It is driven one token at a time via Next so the parser never
// needs the whole stream materialized.
type Lexer struct {
	src          []rune
	pos          int
	line, column int
}

// New returns a Lexer over source.
func New(source string) *Lexer {
	return &Lexer{src: []rune(source), line: 1, column: 1}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) advance() (rune, bool) {
	r, ok := l.peek()
	if !ok {
		return 0, false
	}
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r, true
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		r, ok := l.peek()
		if !ok {
			return
		}
		if isWhitespace(r) {
			l.advance()
			continue
		}
		if r == '%' {
			for {
				r, ok := l.peek()
				if !ok || r == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

// Next returns the next token, or a non-nil *Error if the source contains
// an unterminated string literal. Once an EOF token has been returned,
// every subsequent call returns another EOF token at the same position.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()

	r, ok := l.peek()
	if !ok {
		return Token{Kind: EOF, Line: l.line, Column: l.column}, nil
	}

	line, col := l.line, l.column

	switch r {
	case '{':
		l.advance()
		return Token{Kind: LBrace, Text: "{", Line: line, Column: col}, nil
	case '}':
		l.advance()
		return Token{Kind: RBrace, Text: "}", Line: line, Column: col}, nil
	case '[':
		l.advance()
		return Token{Kind: LBracket, Text: "[", Line: line, Column: col}, nil
	case ']':
		l.advance()
		return Token{Kind: RBracket, Text: "]", Line: line, Column: col}, nil
	case '(':
		return l.readString(line, col)
	case '/':
		l.advance()
		name := l.readNameChars()
		return Token{Kind: LiteralName, Text: name, Line: line, Column: col}, nil
	}

	if r == '+' || r == '-' || r == '.' || (r >= '0' && r <= '9') {
		if tok, isNumber := l.tryReadNumber(line, col); isNumber {
			return tok, nil
		}
	}

	name := l.readNameChars()
	return Token{Kind: Name, Text: name, Line: line, Column: col}, nil
}

func (l *Lexer) readNameChars() string {
	var sb strings.Builder
	for {
		r, ok := l.peek()
		if !ok || isDelimiter(r) {
			break
		}
		l.advance()
		sb.WriteRune(r)
	}
	return sb.String()
}

// tryReadNumber attempts to lex a number starting at the lexer's current
// position. Per the lexer's delimiter rule, the run of sign/digits/dot is
// only a number if it contains at least one digit and is immediately
// followed by a delimiter or end-of-input; otherwise the lexer rewinds and
// the same characters are re-lexed as a Name.
func (l *Lexer) tryReadNumber(line, col int) (Token, bool) {
	start := l.pos
	startLine, startCol := l.line, l.column

	var sb strings.Builder
	hasDigit := false
	hasDot := false

	if r, ok := l.peek(); ok && (r == '+' || r == '-') {
		l.advance()
		sb.WriteRune(r)
	}

	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r >= '0' && r <= '9' {
			hasDigit = true
			l.advance()
			sb.WriteRune(r)
		} else if r == '.' && !hasDot {
			hasDot = true
			l.advance()
			sb.WriteRune(r)
		} else {
			break
		}
	}

	next, hasNext := l.peek()
	atDelimiter := !hasNext || isDelimiter(next)

	if hasDigit && atDelimiter {
		return Token{Kind: Number, Text: sb.String(), IsReal: hasDot, Line: line, Column: col}, true
	}

	// Not a number after all: rewind and let the caller re-lex as a Name.
	l.pos, l.line, l.column = start, startLine, startCol
	return Token{}, false
}

func (l *Lexer) readString(line, col int) (Token, error) {
	l.advance() // consume '('
	depth := 1
	var sb strings.Builder

	for {
		r, ok := l.peek()
		if !ok {
			return Token{}, &Error{Line: line, Column: col, Msg: "unterminated string"}
		}
		switch r {
		case '(':
			depth++
			l.advance()
			sb.WriteRune(r)
		case ')':
			l.advance()
			depth--
			if depth == 0 {
				return Token{Kind: String, Text: sb.String(), Line: line, Column: col}, nil
			}
			sb.WriteRune(r)
		case '\\':
			l.advance()
			esc, ok := l.advance()
			if !ok {
				return Token{}, &Error{Line: line, Column: col, Msg: "unterminated string"}
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '(':
				sb.WriteByte('(')
			case ')':
				sb.WriteByte(')')
			default:
				sb.WriteRune(esc)
			}
		default:
			l.advance()
			sb.WriteRune(r)
		}
	}
}
