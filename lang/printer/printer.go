// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package printer renders Imp syntax trees back to canonical source text.
//
// The output uses two spaces of indentation per block level, puts every
// statement on its own line and writes parentheses only where the tree holds
// a Grouping node. Rendering a parsed program and parsing the result again
// yields a structurally equal tree.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/probechain/go-imp/lang/ast"
)

const indentUnit = "  "

// Render returns the canonical text of prog.
func Render(prog *ast.Program) string {
	var b strings.Builder
	p := printer{out: &b}
	p.statements(prog.Statements)
	return b.String()
}

// Fprint writes the canonical text of prog to w.
func Fprint(w io.Writer, prog *ast.Program) error {
	_, err := io.WriteString(w, Render(prog))
	return err
}

// Expr renders a single expression on one line.
func Expr(e ast.Expression) string {
	var b strings.Builder
	p := printer{out: &b}
	p.expr(e)
	return b.String()
}

type printer struct {
	out   *strings.Builder
	depth int
}

func (p *printer) write(s string) { p.out.WriteString(s) }

// line starts a new line at the current depth.
func (p *printer) line() {
	for i := 0; i < p.depth; i++ {
		p.write(indentUnit)
	}
}

func (p *printer) block(stmts []ast.Statement) {
	p.depth++
	p.statements(stmts)
	p.depth--
}

func (p *printer) statements(stmts []ast.Statement) {
	for _, s := range stmts {
		p.statement(s)
	}
}

func (p *printer) statement(s ast.Statement) {
	p.line()
	switch s := s.(type) {
	case *ast.AssignStmt:
		p.write(s.Name)
		p.write(" := ")
		p.expr(s.Value)
		p.write(";\n")

	case *ast.IfStmt:
		p.write("if ")
		p.expr(s.Cond)
		p.write(" then\n")
		p.block(s.Then)
		p.line()
		p.write("end\n")

	case *ast.WhileStmt:
		p.write("while ")
		p.expr(s.Cond)
		p.write(" do\n")
		p.block(s.Body)
		p.line()
		p.write("end\n")

	case *ast.PrintStmt:
		p.write("print ")
		p.expr(s.Value)
		p.write(";\n")

	default:
		panic(fmt.Sprintf("printer: unexpected statement %T", s))
	}
}

func (p *printer) expr(e ast.Expression) {
	switch e := e.(type) {
	case *ast.Literal:
		p.write(strconv.FormatInt(e.Value, 10))
	case *ast.Variable:
		p.write(e.Name)
	case *ast.Binary:
		p.expr(e.Left)
		p.write(" ")
		p.write(e.Op.String())
		p.write(" ")
		p.expr(e.Right)
	case *ast.Grouping:
		p.write("(")
		p.expr(e.Inner)
		p.write(")")
	default:
		panic(fmt.Sprintf("printer: unexpected expression %T", e))
	}
}
