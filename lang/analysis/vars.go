// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package analysis implements static checks over Imp programs.
package analysis

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/probechain/go-imp/lang/ast"
	"github.com/probechain/go-imp/lang/token"
)

// Finding is a single diagnostic produced by Vars.
type Finding struct {
	Pos  token.Pos
	Name string
	Kind FindingKind
}

// FindingKind classifies a Finding.
type FindingKind int

const (
	// NeverAssigned: the variable is read but no statement assigns it.
	NeverAssigned FindingKind = iota
	// MaybeUnassigned: the variable is read on a path where it has not been
	// assigned yet.
	MaybeUnassigned
	// NeverRead: the variable is assigned but never read.
	NeverRead
)

func (f Finding) Message() string {
	switch f.Kind {
	case NeverAssigned:
		return fmt.Sprintf("%s is read but never assigned", f.Name)
	case MaybeUnassigned:
		return fmt.Sprintf("%s may be read before it is assigned", f.Name)
	case NeverRead:
		return fmt.Sprintf("%s is assigned but never read", f.Name)
	}
	return f.Name
}

// VarReport summarises variable usage in a program.
type VarReport struct {
	Assigned mapset.Set // names of assigned variables
	Read     mapset.Set // names of read variables
	Findings []Finding  // sorted by position
}

// Vars analyses variable definitions and uses. A variable counts as
// definitely assigned only after an assignment that runs on every path:
// assignments inside if and while bodies do not carry over past the block,
// since the body may not execute.
func Vars(prog *ast.Program) *VarReport {
	v := &varWalker{
		assigned:  mapset.NewThreadUnsafeSet(),
		read:      mapset.NewThreadUnsafeSet(),
		firstDefs: make(map[string]token.Pos),
	}
	v.statements(prog.Statements, mapset.NewThreadUnsafeSet())

	report := &VarReport{Assigned: v.assigned, Read: v.read}
	for _, use := range v.unset {
		kind := MaybeUnassigned
		if !v.assigned.Contains(use.Name) {
			kind = NeverAssigned
		}
		report.Findings = append(report.Findings, Finding{Pos: use.NamePos, Name: use.Name, Kind: kind})
	}
	for _, name := range v.assigned.Difference(v.read).ToSlice() {
		name := name.(string)
		report.Findings = append(report.Findings, Finding{Pos: v.firstDefs[name], Name: name, Kind: NeverRead})
	}
	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].Pos < report.Findings[j].Pos
	})
	return report
}

type varWalker struct {
	assigned  mapset.Set
	read      mapset.Set
	firstDefs map[string]token.Pos
	unset     []*ast.Variable // reads of names not definitely assigned at that point
}

// statements walks a statement list; defined holds the names definitely
// assigned on entry and is updated in place.
func (v *varWalker) statements(stmts []ast.Statement, defined mapset.Set) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *ast.AssignStmt:
			v.expr(s.Value, defined)
			defined.Add(s.Name)
			if !v.assigned.Contains(s.Name) {
				v.firstDefs[s.Name] = s.NamePos
			}
			v.assigned.Add(s.Name)
		case *ast.IfStmt:
			v.expr(s.Cond, defined)
			v.statements(s.Then, defined.Clone())
		case *ast.WhileStmt:
			v.expr(s.Cond, defined)
			v.statements(s.Body, defined.Clone())
		case *ast.PrintStmt:
			v.expr(s.Value, defined)
		}
	}
}

func (v *varWalker) expr(e ast.Expression, defined mapset.Set) {
	ast.Inspect(e, func(n ast.Node) bool {
		if ref, ok := n.(*ast.Variable); ok {
			v.read.Add(ref.Name)
			if !defined.Contains(ref.Name) {
				v.unset = append(v.unset, ref)
			}
		}
		return true
	})
}
