// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package token defines the lexical token kinds of the Imp language.
//
// The token set is closed: identifiers, integer literals, the ":=" assignment
// operator, four arithmetic operators, parentheses, the statement terminator
// and six keywords. Keywords are matched case-insensitively.
package token

import (
	"fmt"
	"strings"
)

// Pos is the byte offset of a lexeme in its source text.
type Pos int

// Token represents a lexical token.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}

// Kind is the set of lexical token kinds.
type Kind int

const (
	EOF Kind = iota

	IDENT  // x, total, n2
	NUMBER // 42

	ASSIGN    // :=
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	keywordStart
	IF    // if
	THEN  // then
	WHILE // while
	DO    // do
	PRINT // print
	END   // end
	keywordEnd
)

var kindNames = [...]string{
	EOF: "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	ASSIGN:    ":=",
	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",

	IF:    "if",
	THEN:  "then",
	WHILE: "while",
	DO:    "do",
	PRINT: "print",
	END:   "end",
}

// String returns the string form of a token kind. Operators and keywords
// render as their source spelling.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// IsKeyword returns true if the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsOperator returns true for the four arithmetic operators.
func (k Kind) IsOperator() bool {
	return k >= PLUS && k <= SLASH
}

// keywords maps lower-case keyword spellings to their kinds. It is filled
// once at start-up and never modified afterwards.
var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, keywordEnd-keywordStart-1)
	for i := keywordStart + 1; i < keywordEnd; i++ {
		keywords[kindNames[i]] = i
	}
}

// Lookup classifies a scanned word. Keyword matching ignores case; any word
// that is not a keyword is an identifier.
func Lookup(word string) Kind {
	if kind, ok := keywords[strings.ToLower(word)]; ok {
		return kind
	}
	return IDENT
}

// Keywords returns the keyword spellings in declaration order.
func Keywords() []string {
	words := make([]string, 0, keywordEnd-keywordStart-1)
	for i := keywordStart + 1; i < keywordEnd; i++ {
		words = append(words, kindNames[i])
	}
	return words
}
