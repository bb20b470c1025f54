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

	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/lang/analysis"
	"github.com/probechain/go-imp/lang/parser"
	"github.com/probechain/go-imp/lang/token"
)

var vetCommand = cli.Command{
	Action:    vetFiles,
	Name:      "vet",
	Usage:     "Report suspicious variable usage",
	ArgsUsage: "<file> [<file>...]",
	Category:  "SOURCE COMMANDS",
	Description: `
The vet command reports variables that are read but never assigned, read
before they are assigned on every path, or assigned but never read. It
exits with status 1 when anything is reported.`,
}

func vetFiles(ctx *cli.Context) error {
	warn := color.New(color.FgYellow).SprintFunc()

	failed := false
	for _, path := range sourceArgs(ctx) {
		src, err := readSource(path)
		if err != nil {
			return err
		}
		prog, err := parser.Parse(src)
		if err != nil {
			reportError(ctx, err, path, src)
			failed = true
			continue
		}
		for _, f := range analysis.Vars(prog).Findings {
			pos := token.Resolve(src, f.Pos)
			fmt.Fprintf(ctx.App.Writer, "%s:%s: %s\n", path, pos, warn(f.Message()))
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
