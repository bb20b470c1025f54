// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package parser

import (
	"fmt"
	"strings"

	"github.com/probechain/go-imp/lang/token"
)

// ParseError reports a token that cannot be accepted at the current position
// of the grammar.
type ParseError struct {
	Expected []token.Kind // kinds that would have been accepted; empty when Reason is set
	Found    token.Token
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Found.Pos, e.Message())
}

// Message returns the error text without the position prefix.
func (e *ParseError) Message() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Found)
	}
	return fmt.Sprintf("expected %s, found %s", expectedString(e.Expected), e.Found)
}

// Incomplete reports whether the error was caused by reaching end of input.
func (e *ParseError) Incomplete() bool {
	return e.Found.Kind == token.EOF
}

func expectedString(kinds []token.Kind) string {
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].String()
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "one of " + strings.Join(names, ", ")
}
