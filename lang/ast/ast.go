// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package ast defines the Abstract Syntax Tree for the Imp language.
//
// Design overview:
//
//   - Statements and expressions are closed sets. Each set is a marker
//     interface with an unexported method, so only this package can add
//     variants and consumers match them with exhaustive type switches.
//   - Every node records the byte offset of its first token so diagnostics
//     can point back into the source. Offsets are not part of a node's
//     structural identity (see Equal).
//   - Nodes are built once by the parser and never mutated afterwards.
package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/probechain/go-imp/lang/token"
)

// ---------------------------------------------------------------------------
// Core interfaces
// ---------------------------------------------------------------------------

// Node is the base interface that every AST node implements.
type Node interface {
	// Pos returns the offset of the first token of the node.
	Pos() token.Pos

	// String returns a compact, parenthesised representation of the node
	// suitable for unit tests and debug output.
	String() string
}

// Statement is a marker interface for all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is a marker interface for all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// ---------------------------------------------------------------------------
// Program
// ---------------------------------------------------------------------------

// Program is the root node; it owns the top-level statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return 0
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// ArithOp is a binary arithmetic operator.
type ArithOp int

const (
	Add ArithOp = iota // +
	Sub                // -
	Mul                // *
	Div                // /
)

var opNames = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/"}

func (op ArithOp) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// OpFromToken maps an operator token kind to its ArithOp.
func OpFromToken(kind token.Kind) (ArithOp, bool) {
	switch kind {
	case token.PLUS:
		return Add, true
	case token.MINUS:
		return Sub, true
	case token.STAR:
		return Mul, true
	case token.SLASH:
		return Div, true
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// AssignStmt is `name := value;`.
type AssignStmt struct {
	NamePos token.Pos
	Name    string
	Value   Expression
}

func (s *AssignStmt) statementNode() {}
func (s *AssignStmt) Pos() token.Pos { return s.NamePos }
func (s *AssignStmt) String() string {
	return "(:= " + s.Name + " " + s.Value.String() + ")"
}

// IfStmt is `if cond then ... end`.
type IfStmt struct {
	If   token.Pos // position of the "if" keyword
	Cond Expression
	Then []Statement
}

func (s *IfStmt) statementNode() {}
func (s *IfStmt) Pos() token.Pos { return s.If }
func (s *IfStmt) String() string {
	return "(if " + s.Cond.String() + blockString(s.Then) + ")"
}

// WhileStmt is `while cond do ... end`.
type WhileStmt struct {
	While token.Pos // position of the "while" keyword
	Cond  Expression
	Body  []Statement
}

func (s *WhileStmt) statementNode() {}
func (s *WhileStmt) Pos() token.Pos { return s.While }
func (s *WhileStmt) String() string {
	return "(while " + s.Cond.String() + blockString(s.Body) + ")"
}

// PrintStmt is `print value;`.
type PrintStmt struct {
	Print token.Pos // position of the "print" keyword
	Value Expression
}

func (s *PrintStmt) statementNode() {}
func (s *PrintStmt) Pos() token.Pos { return s.Print }
func (s *PrintStmt) String() string { return "(print " + s.Value.String() + ")" }

func blockString(stmts []Statement) string {
	var out bytes.Buffer
	out.WriteString(" [")
	for i, s := range stmts {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(s.String())
	}
	out.WriteByte(']')
	return out.String()
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Literal is a non-negative integer constant.
type Literal struct {
	ValuePos token.Pos
	Value    int64
}

func (e *Literal) expressionNode() {}
func (e *Literal) Pos() token.Pos  { return e.ValuePos }
func (e *Literal) String() string  { return strconv.FormatInt(e.Value, 10) }

// Variable is a reference to a named variable.
type Variable struct {
	NamePos token.Pos
	Name    string
}

func (e *Variable) expressionNode() {}
func (e *Variable) Pos() token.Pos  { return e.NamePos }
func (e *Variable) String() string  { return e.Name }

// Binary is `left op right`. It always has exactly two operands.
type Binary struct {
	Op    ArithOp
	OpPos token.Pos
	Left  Expression
	Right Expression
}

func (e *Binary) expressionNode() {}
func (e *Binary) Pos() token.Pos  { return e.Left.Pos() }
func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right)
}

// Grouping is a parenthesised expression. It is kept in the tree so that the
// printer reproduces exactly the parentheses the author wrote.
type Grouping struct {
	Lparen token.Pos
	Inner  Expression
}

func (e *Grouping) expressionNode() {}
func (e *Grouping) Pos() token.Pos  { return e.Lparen }
func (e *Grouping) String() string  { return "(group " + e.Inner.String() + ")" }
