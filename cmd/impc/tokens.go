// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/lang/lexer"
	"github.com/probechain/go-imp/lang/token"
)

var tokensCommand = cli.Command{
	Action:    listTokens,
	Name:      "tokens",
	Usage:     "Print the token stream of a source file",
	ArgsUsage: "<file>",
	Category:  "SOURCE COMMANDS",
	Description: `
The tokens command lexes a file (or standard input when no file is given)
and prints one row per token: offset, line:column, kind and lexeme.`,
}

func listTokens(ctx *cli.Context) error {
	path := sourceArgs(ctx)[0]
	src, err := readSource(path)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Offset", "Position", "Kind", "Lexeme"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	l := lexer.New(src)
	for {
		tok, err := l.Next()
		if err != nil {
			table.Render()
			reportError(ctx, err, path, src)
			return errFailed
		}
		table.Append([]string{
			strconv.Itoa(int(tok.Pos)),
			token.Resolve(src, tok.Pos).String(),
			tok.Kind.String(),
			tok.Lexeme,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	table.Render()
	return nil
}
