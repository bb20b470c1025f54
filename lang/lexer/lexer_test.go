// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probechain/go-imp/lang/lexer"
	"github.com/probechain/go-imp/lang/token"
)

// tokenCase is a single expected token in a table-driven test.
type tokenCase struct {
	kind   token.Kind
	lexeme string
}

// runTokenize lexes input and checks that it produces exactly the expected
// sequence (plus a final EOF).
func runTokenize(t *testing.T, name, input string, want []tokenCase) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		toks, err := lexer.New(input).Tokenize()
		require.NoError(t, err)
		require.NotEmpty(t, toks)

		last := toks[len(toks)-1]
		assert.Equal(t, token.EOF, last.Kind, "last token")
		body := toks[:len(toks)-1]

		if len(body) != len(want) {
			for i, tok := range body {
				t.Logf("  [%d] %s %q", i, tok.Kind, tok.Lexeme)
			}
			t.Fatalf("got %d tokens (excl. EOF), want %d", len(body), len(want))
		}
		for i, w := range want {
			assert.Equal(t, w.kind, body[i].Kind, "token[%d] kind", i)
			assert.Equal(t, w.lexeme, body[i].Lexeme, "token[%d] lexeme", i)
		}
	})
}

func TestSingleCharTokens(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"plus", "+", token.PLUS},
		{"minus", "-", token.MINUS},
		{"star", "*", token.STAR},
		{"slash", "/", token.SLASH},
		{"lparen", "(", token.LPAREN},
		{"rparen", ")", token.RPAREN},
		{"semicolon", ";", token.SEMICOLON},
	}
	for _, c := range cases {
		runTokenize(t, c.name, c.input, []tokenCase{{c.kind, c.input}})
	}
}

func TestAssignOperator(t *testing.T) {
	runTokenize(t, "bare", ":=", []tokenCase{{token.ASSIGN, ":="}})
	runTokenize(t, "no_spaces", "x:=1", []tokenCase{
		{token.IDENT, "x"}, {token.ASSIGN, ":="}, {token.NUMBER, "1"},
	})
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"if":    token.IF,
		"then":  token.THEN,
		"while": token.WHILE,
		"do":    token.DO,
		"print": token.PRINT,
		"end":   token.END,
	}
	for word, kind := range cases {
		runTokenize(t, word, word, []tokenCase{{kind, word}})
		upper := strings.ToUpper(word)
		runTokenize(t, upper, upper, []tokenCase{{kind, upper}})
	}
}

func TestIdentifiers(t *testing.T) {
	runTokenize(t, "simple", "x", []tokenCase{{token.IDENT, "x"}})
	runTokenize(t, "digits", "x12y", []tokenCase{{token.IDENT, "x12y"}})
	runTokenize(t, "case_kept", "Total", []tokenCase{{token.IDENT, "Total"}})
	// Maximal munch: keyword prefixes do not split identifiers.
	runTokenize(t, "keyword_prefix", "iffy ending printer", []tokenCase{
		{token.IDENT, "iffy"}, {token.IDENT, "ending"}, {token.IDENT, "printer"},
	})
	runTokenize(t, "keyword_suffix", "doo", []tokenCase{{token.IDENT, "doo"}})
}

func TestNumbers(t *testing.T) {
	runTokenize(t, "zero", "0", []tokenCase{{token.NUMBER, "0"}})
	runTokenize(t, "multi", "1234567890", []tokenCase{{token.NUMBER, "1234567890"}})
	runTokenize(t, "leading_zeros", "007", []tokenCase{{token.NUMBER, "007"}})
	// A digit run followed by letters is a number then an identifier.
	runTokenize(t, "number_then_ident", "12ab", []tokenCase{
		{token.NUMBER, "12"}, {token.IDENT, "ab"},
	})
}

func TestWhitespaceSkipping(t *testing.T) {
	runTokenize(t, "empty", "", nil)
	runTokenize(t, "only_space", " \t\r\n ", nil)
	runTokenize(t, "mixed", "\n\tx\r\n:=\t 1 ;", []tokenCase{
		{token.IDENT, "x"}, {token.ASSIGN, ":="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
	})
}

func TestProgram(t *testing.T) {
	src := "while x do x := x - 1; end print (x + 2) * 3;"
	runTokenize(t, "program", src, []tokenCase{
		{token.WHILE, "while"},
		{token.IDENT, "x"},
		{token.DO, "do"},
		{token.IDENT, "x"},
		{token.ASSIGN, ":="},
		{token.IDENT, "x"},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.SEMICOLON, ";"},
		{token.END, "end"},
		{token.PRINT, "print"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.NUMBER, "2"},
		{token.RPAREN, ")"},
		{token.STAR, "*"},
		{token.NUMBER, "3"},
		{token.SEMICOLON, ";"},
	})
}

func TestPositions(t *testing.T) {
	toks, err := lexer.New("ab := 12;\n  print ab;").Tokenize()
	require.NoError(t, err)

	want := []token.Pos{0, 3, 6, 8, 12, 18, 20, 21}
	require.Len(t, toks, len(want))
	for i, p := range want {
		assert.Equal(t, p, toks[i].Pos, "token[%d] %s", i, toks[i])
	}
}

func TestEOFIsSticky(t *testing.T) {
	for _, src := range []string{"", "x", "x := 1;", "   "} {
		l := lexer.New(src)
		_, err := l.Tokenize()
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			tok, err := l.Next()
			require.NoError(t, err, "call %d after EOF on %q", i, src)
			assert.Equal(t, token.EOF, tok.Kind)
			assert.Equal(t, token.Pos(len(src)), tok.Pos)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		char   rune
		offset token.Pos
	}{
		{"at_sign", "x := 1 @ 2;", '@', 7},
		{"at_start", "@", '@', 0},
		{"bare_equals", "x = 1;", '=', 2},
		{"double_equals", "x == 1;", '=', 2},
		{"colon_alone", "x : 1;", ':', 2},
		{"colon_at_end", "x :", ':', 2},
		{"less_than", "if x < 1 then end", '<', 5},
		{"underscore", "_x", '_', 0},
		{"non_ascii", "x := é;", 'é', 5},
		{"nul_byte", "x\x00", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lexer.New(c.input).Tokenize()
			require.Error(t, err)

			var lexErr *lexer.LexError
			require.True(t, errors.As(err, &lexErr), "want *LexError, got %T", err)
			assert.Equal(t, c.char, lexErr.Char)
			assert.Equal(t, c.offset, lexErr.Pos)
		})
	}
}

func TestLexErrorAtSignOffset(t *testing.T) {
	src := "print 1;\nwhile x do @ end"
	_, err := lexer.New(src).Tokenize()

	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, token.Pos(strings.IndexByte(src, '@')), lexErr.Pos)
	assert.Contains(t, lexErr.Error(), `'@'`)
}

func TestColonErrorReason(t *testing.T) {
	l := lexer.New("x :+ 1")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.IDENT, tok.Kind)

	_, err = l.Next()

	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ':', lexErr.Char)
	assert.Contains(t, lexErr.Error(), "expected '=' after ':'")
}
