// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ast

import "fmt"

// Inspect traverses the tree rooted at n depth-first, in source order. It
// calls f(node) for every node; if f returns false the children of that node
// are skipped. Statements are visited before their sub-expressions.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		inspectList(n.Statements, f)
	case *AssignStmt:
		Inspect(n.Value, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		inspectList(n.Then, f)
	case *WhileStmt:
		Inspect(n.Cond, f)
		inspectList(n.Body, f)
	case *PrintStmt:
		Inspect(n.Value, f)
	case *Literal, *Variable:
		// leaves
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Grouping:
		Inspect(n.Inner, f)
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

func inspectList(stmts []Statement, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}
