// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package diag turns lexer and parser errors into human readable reports
// with a line:column location and a caret under the offending character:
//
//	PARSE ERROR in loop.imp at 3:1: expected end, found EOF
//
//	   2 |   x := x - 1;
//	   3 |
//	     | ^
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/probechain/go-imp/lang/lexer"
	"github.com/probechain/go-imp/lang/parser"
	"github.com/probechain/go-imp/lang/token"
)

// Error is a located diagnostic. Its Error method returns the rendered
// report; Unwrap gives access to the underlying lexer or parser error.
type Error struct {
	Kind     string // "LEXICAL ERROR" or "PARSE ERROR"
	Name     string // source name, may be empty
	Position token.Position
	Msg      string

	report string
	err    error
}

func (e *Error) Error() string { return e.report }
func (e *Error) Unwrap() error { return e.err }

// Header returns the one-line summary without the source excerpt.
func (e *Error) Header() string {
	if e.Name != "" {
		return fmt.Sprintf("%s in %s at %s: %s", e.Kind, e.Name, e.Position, e.Msg)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Position, e.Msg)
}

// Wrap converts lexer and parser errors into an *Error carrying a rendered
// report of src. Any other error, including nil, is returned unchanged.
func Wrap(err error, name, src string) error {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
		d        *Error
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &d):
		return err
	case errors.As(err, &lexErr):
		msg := fmt.Sprintf("unexpected character %q", lexErr.Char)
		if lexErr.Reason != "" {
			msg += ": " + lexErr.Reason
		}
		d = newError("LEXICAL ERROR", name, src, lexErr.Pos, msg)
	case errors.As(err, &parseErr):
		d = newError("PARSE ERROR", name, src, parseErr.Found.Pos, parseErr.Message())
	default:
		return err
	}
	d.err = err
	return d
}

func newError(kind, name, src string, pos token.Pos, msg string) *Error {
	d := &Error{
		Kind:     kind,
		Name:     name,
		Position: token.Resolve(src, pos),
		Msg:      msg,
	}
	d.report = d.Header() + "\n\n" + excerpt(src, d.Position)
	return d
}

// excerpt renders the offending line, the line before it when there is one,
// and a caret under the column.
func excerpt(src string, pos token.Position) string {
	lines := strings.Split(src, "\n")
	line := pos.Line
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, strings.TrimRight(lines[line-2], "\r"))
	}
	text := strings.TrimRight(lines[line-1], "\r")
	fmt.Fprintf(&b, "%4d | %s\n", line, text)

	// Keep tabs in the padding so the caret lines up with tab-indented code.
	var pad strings.Builder
	for i := 0; i < pos.Column-1 && i < len(text); i++ {
		if text[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	for i := len(text); i < pos.Column-1; i++ {
		pad.WriteByte(' ')
	}
	fmt.Fprintf(&b, "     | %s^", pad.String())
	return b.String()
}
