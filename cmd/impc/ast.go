// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/lang/parser"
)

var (
	astCommand = cli.Command{
		Action:    printAST,
		Name:      "ast",
		Usage:     "Print the syntax tree of a source file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{dumpFlag},
		Category:  "SOURCE COMMANDS",
		Description: `
The ast command parses a file and prints each top-level statement as an
S-expression. With --dump the Go structure of the tree is printed instead.`,
	}

	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "Dump the Go structure of the tree",
	}
)

// dumper prints the Go structure of the tree rather than its String form,
// and omits pointer addresses so dumps are stable between runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func printAST(ctx *cli.Context) error {
	path := sourceArgs(ctx)[0]
	src, err := readSource(path)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(src)
	if err != nil {
		reportError(ctx, err, path, src)
		return errFailed
	}

	if ctx.Bool(dumpFlag.Name) {
		dumper.Fdump(ctx.App.Writer, prog)
		return nil
	}
	for _, stmt := range prog.Statements {
		fmt.Fprintln(ctx.App.Writer, stmt.String())
	}
	return nil
}
