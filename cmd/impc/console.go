// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/lang/diag"
	"github.com/probechain/go-imp/lang/parser"
	"github.com/probechain/go-imp/lang/printer"
)

const continuePrompt = "...  "

var (
	consoleCommand = cli.Command{
		Action:   runConsole,
		Name:     "console",
		Usage:    "Start an interactive formatting console",
		Flags:    []cli.Flag{historyFlag},
		Category: "CONSOLE COMMANDS",
		Description: `
The console reads statements until they form a complete program, then prints
the program in canonical form. Blocks may span several lines. Type :quit or
press Ctrl-D to leave.`,
	}

	historyFlag = cli.StringFlag{
		Name:  "history",
		Usage: "Console history file (default: ~/.imp_history)",
	}
)

// prompter is the part of liner.State the console uses.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func runConsole(ctx *cli.Context) error {
	cfg := *loadedConfig(ctx)
	if ctx.IsSet(historyFlag.Name) {
		cfg.Console.HistoryFile = ctx.String(historyFlag.Name)
	}
	histPath := cfg.Console.historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Warn("Failed to save console history", "path", histPath, "err", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	fmt.Fprintf(ctx.App.Writer, "Welcome to the Imp console (%s). Type :quit to exit.\n", version)
	for {
		src, ok := readProgram(ln, cfg.Console.Prompt, continuePrompt)
		if !ok {
			fmt.Fprintln(ctx.App.Writer)
			return nil
		}
		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		evalInput(ctx.App.Writer, src)
	}
}

// readProgram prompts for lines until the accumulated input parses or fails
// for a reason other than running out of input. It returns false at end of
// input or when the prompt is aborted.
func readProgram(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := p.Prompt(current)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			log.Debug("Console prompt failed", "err", err)
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := parser.Parse(src); parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// evalInput prints the canonical form of src, or its syntax error.
func evalInput(w io.Writer, src string) {
	prog, err := parser.Parse(src)
	if err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(w, red(diag.Wrap(err, "", src).Error()))
		return
	}
	fmt.Fprint(w, printer.Render(prog))
}
