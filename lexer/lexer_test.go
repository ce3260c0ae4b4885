package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, source string) []Token {
	t.Helper()
	l := New(source)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err, "unexpected lex error for %q", source)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestLexer_Tokens(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		want   []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"braces", "{ }", []Kind{LBrace, RBrace, EOF}},
		{"brackets", "[ ]", []Kind{LBracket, RBracket, EOF}},
		{"integer", "42", []Kind{Number, EOF}},
		{"negative integer", "-42", []Kind{Number, EOF}},
		{"real", "3.14", []Kind{Number, EOF}},
		{"literal name", "/foo", []Kind{LiteralName, EOF}},
		{"executable name", "foo", []Kind{Name, EOF}},
		{"string", "(hello)", []Kind{String, EOF}},
		{"sequence", "1 2 add", []Kind{Number, Number, Name, EOF}},
		{"comment", "1 % a comment\n2", []Kind{Number, Number, EOF}},
		{"bare sign re-lexed as name", "--foo", []Kind{Name, EOF}},
		{"lone minus is a name", "-", []Kind{Name, EOF}},
		{"dot-only is a name", ".", []Kind{Name, EOF}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks := allTokens(t, tc.source)
			var got []Kind
			for _, tok := range toks {
				got = append(got, tok.Kind)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLexer_NumberText(t *testing.T) {
	for _, tc := range []struct {
		source string
		text   string
		isReal bool
	}{
		{"42", "42", false},
		{"-42", "-42", false},
		{"+7", "+7", false},
		{"3.14", "3.14", true},
		{"-0.5", "-0.5", true},
		{"5.", "5.", true},
	} {
		t.Run(tc.source, func(t *testing.T) {
			l := New(tc.source)
			tok, err := l.Next()
			require.NoError(t, err)
			require.Equal(t, Number, tok.Kind)
			require.Equal(t, tc.text, tok.Text)
			require.Equal(t, tc.isReal, tok.IsReal)
		})
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	l := New(`(a\nb\tc\(d\)e\\f)`)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, String, tok.Kind)
	require.Equal(t, "a\nb\tc(d)e\\f", tok.Text)
}

func TestLexer_NestedParens(t *testing.T) {
	l := New(`(a (nested) b)`)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, String, tok.Kind)
	require.Equal(t, "a (nested) b", tok.Text)
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`(unterminated`)
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
}

func TestLexer_LiteralNameText(t *testing.T) {
	l := New("/foo-bar")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, LiteralName, tok.Kind)
	require.Equal(t, "foo-bar", tok.Text)
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := New("")
	tok1, err := l.Next()
	require.NoError(t, err)
	tok2, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, EOF, tok1.Kind)
	require.Equal(t, EOF, tok2.Kind)
}
