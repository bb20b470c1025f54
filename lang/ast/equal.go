// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ast

// Equal reports whether a and b have the same shape and the same leaf values.
// Source offsets are ignored, so a program and the re-parse of its rendering
// compare equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && equalStmts(x.Statements, y.Statements)

	case *AssignStmt:
		y, ok := b.(*AssignStmt)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *IfStmt:
		y, ok := b.(*IfStmt)
		return ok && Equal(x.Cond, y.Cond) && equalStmts(x.Then, y.Then)
	case *WhileStmt:
		y, ok := b.(*WhileStmt)
		return ok && Equal(x.Cond, y.Cond) && equalStmts(x.Body, y.Body)
	case *PrintStmt:
		y, ok := b.(*PrintStmt)
		return ok && Equal(x.Value, y.Value)

	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Grouping:
		y, ok := b.(*Grouping)
		return ok && Equal(x.Inner, y.Inner)
	}
	return false
}

func equalStmts(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
