// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Command impc is the Imp language tool: it lists tokens, prints syntax
// trees, formats and checks source files, and runs an interactive console.
//
// Usage:
//
//	impc [global options] command [command options] [arguments...]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/internal/debug"
	"github.com/probechain/go-imp/lang/diag"
)

const version = "0.1.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = "the Imp language tool"
	app.Version = version
	app.ErrWriter = os.Stderr
	app.Metadata = make(map[string]interface{})
	app.Flags = append([]cli.Flag{configFileFlag, cacheSizeFlag}, debug.Flags...)
	app.Commands = []cli.Command{
		tokensCommand,
		astCommand,
		fmtCommand,
		vetCommand,
		consoleCommand,
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		ctx.App.Metadata[configKey] = &cfg
		return debug.Setup(cfg.Log)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatalf("%v", err)
	}
}

// fatalf formats a message to standard error in red and exits the program.
func fatalf(format string, args ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// readSource reads the named file, or standard input for "-".
func readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	log.Trace("Read source", "path", path, "bytes", len(data))
	return string(data), nil
}

// sourceArgs returns the file arguments of a command, defaulting to stdin.
func sourceArgs(ctx *cli.Context) []string {
	if ctx.NArg() == 0 {
		return []string{"-"}
	}
	return ctx.Args()
}

// errFailed reports that a command printed diagnostics for at least one
// input. The diagnostics have already been written.
var errFailed = errors.New("errors reported")

// reportError prints a located diagnostic to the app's error writer.
func reportError(ctx *cli.Context, err error, name, src string) {
	fmt.Fprintln(ctx.App.ErrWriter, diag.Wrap(err, name, src))
}
