// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import "fmt"

// Position is a resolved source location.
type Position struct {
	Offset int
	Line   int // 1-based
	Column int // 1-based, counted in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Resolve converts a byte offset into a line/column position by scanning src
// for newlines. Offsets past the end of src resolve to the position just
// after the last byte, which is where EOF tokens live.
func Resolve(src string, pos Pos) Position {
	off := int(pos)
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	line, col := 1, 1
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Position{Offset: off, Line: line, Column: col}
}
