// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements an on-demand, single-pass lexer for the Imp
// language.
//
// Design principles:
//   - Tokens are produced one at a time by Next; nothing is buffered beyond
//     the current character.
//   - Identifiers and numbers use maximal munch.
//   - Keywords are matched case-insensitively; identifier lexemes keep their
//     original spelling.
//   - The only multi-character operator is ":=".
//   - The first unrecognised character aborts lexing with a *LexError.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/probechain/go-imp/lang/token"
)

// LexError reports a character that does not begin any valid token.
type LexError struct {
	Char   rune
	Pos    token.Pos
	Reason string // optional detail, e.g. for ':' without '='
}

func (e *LexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("offset %d: unexpected character %q: %s", e.Pos, e.Char, e.Reason)
	}
	return fmt.Sprintf("offset %d: unexpected character %q", e.Pos, e.Char)
}

// Lexer holds the scan state for a single source text.
type Lexer struct {
	input string

	// pos is the index into input of the next byte to be loaded into ch.
	// After advance(), ch == input[pos-1] and pos points one past it.
	pos int
	ch  byte // current character; 0 when past end
}

// New creates a new Lexer over src.
func New(src string) *Lexer {
	l := &Lexer{input: src}
	l.advance() // prime l.ch with the first byte
	return l
}

// advance moves to the next byte in the input. When the end of input is
// reached, ch is set to 0 and pos stops growing.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input) + 1
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

// offset returns the byte offset of the current character.
func (l *Lexer) offset() token.Pos {
	return token.Pos(l.pos - 1)
}

// atEnd reports whether the input is exhausted. A literal NUL byte inside the
// input is not the end; it is an illegal character.
func (l *Lexer) atEnd() bool {
	return l.pos > len(l.input)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.ch) {
		l.advance()
	}
}

// Next scans and returns the next token from the input. Once the input is
// exhausted every call returns an EOF token positioned at len(src).
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()

	pos := l.offset()
	if l.atEnd() {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}
	ch := l.ch

	switch {
	case isLetter(ch):
		word := l.readWhile(isLetterOrDigit)
		return token.Token{Kind: token.Lookup(word), Lexeme: word, Pos: pos}, nil

	case isDigit(ch):
		digits := l.readWhile(isDigit)
		return token.Token{Kind: token.NUMBER, Lexeme: digits, Pos: pos}, nil

	case ch == ':':
		l.advance() // consume ':'
		if l.atEnd() || l.ch != '=' {
			return token.Token{}, &LexError{Char: ':', Pos: pos, Reason: "expected '=' after ':'"}
		}
		l.advance()
		return token.Token{Kind: token.ASSIGN, Lexeme: ":=", Pos: pos}, nil
	}

	if kind, ok := singleChar[ch]; ok {
		l.advance()
		return token.Token{Kind: kind, Lexeme: string(ch), Pos: pos}, nil
	}

	// Report the whole character, not just its first byte.
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return token.Token{}, &LexError{Char: r, Pos: pos}
}

// Tokenize returns all tokens (including the final EOF) produced by repeated
// calls to Next. It stops at the first error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// readWhile consumes the maximal run of bytes, starting at the current
// character, for which accept holds.
func (l *Lexer) readWhile(accept func(byte) bool) string {
	start := l.pos - 1
	for !l.atEnd() && accept(l.ch) {
		l.advance()
	}
	return l.input[start : l.pos-1]
}

var singleChar = map[byte]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'(': token.LPAREN,
	')': token.RPAREN,
	';': token.SEMICOLON,
}

// ---------------------------------------------------------------------------
// Character classification helpers
// ---------------------------------------------------------------------------

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
