// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cespare/cp"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/lang/cache"
	"github.com/probechain/go-imp/lang/diag"
	"github.com/probechain/go-imp/lang/printer"
)

var (
	fmtCommand = cli.Command{
		Action:    formatFiles,
		Name:      "fmt",
		Usage:     "Rewrite source files in canonical form",
		ArgsUsage: "<file> [<file>...]",
		Flags:     []cli.Flag{writeFlag, listFlag, backupFlag},
		Category:  "SOURCE COMMANDS",
		Description: `
The fmt command parses each file and prints its canonical rendering. With -w
the files are rewritten in place, with -l only the names of files whose
formatting differs are printed. Files are processed concurrently.`,
	}

	writeFlag = cli.BoolFlag{
		Name:  "w",
		Usage: "Write result to the source file instead of stdout",
	}
	listFlag = cli.BoolFlag{
		Name:  "l",
		Usage: "List files whose formatting differs",
	}
	backupFlag = cli.BoolFlag{
		Name:  "backup",
		Usage: "Keep a FILE.orig copy of every rewritten file",
	}
)

type fmtOptions struct {
	write  bool
	backup bool
}

type fmtResult struct {
	path    string
	out     string
	changed bool
	err     error // syntax error, already located
}

func formatFiles(ctx *cli.Context) error {
	cfg := loadedConfig(ctx)
	programs, err := cache.New(cfg.Cache.Size)
	if err != nil {
		return err
	}
	opts := fmtOptions{
		write:  ctx.Bool(writeFlag.Name),
		backup: cfg.Format.Backup || ctx.Bool(backupFlag.Name),
	}
	paths := sourceArgs(ctx)
	if opts.write {
		for _, path := range paths {
			if path == "-" {
				return fmt.Errorf("cannot use -w with standard input")
			}
		}
	}

	results, err := formatAll(context.Background(), programs, paths, opts)
	if err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		switch {
		case res.err != nil:
			fmt.Fprintln(ctx.App.ErrWriter, res.err)
			failed = true
		case ctx.Bool(listFlag.Name):
			if res.changed {
				fmt.Fprintln(ctx.App.Writer, res.path)
			}
		case !opts.write:
			fmt.Fprint(ctx.App.Writer, res.out)
		}
	}
	hits, misses := programs.Stats()
	log.Debug("Formatted sources", "files", len(results), "cachehits", hits, "cachemisses", misses)
	if failed {
		return errFailed
	}
	return nil
}

// formatAll formats paths concurrently. Results are returned in argument
// order. Syntax errors are recorded per file; an I/O error aborts the run.
func formatAll(ctx context.Context, programs *cache.Cache, paths []string, opts fmtOptions) ([]fmtResult, error) {
	results := make([]fmtResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := formatFile(programs, path, opts)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatFile(programs *cache.Cache, path string, opts fmtOptions) (fmtResult, error) {
	res := fmtResult{path: path}
	src, err := readSource(path)
	if err != nil {
		return res, err
	}
	prog, err := programs.Parse(src)
	if err != nil {
		res.err = diag.Wrap(err, path, src)
		return res, nil
	}
	res.out = printer.Render(prog)
	res.changed = res.out != src

	if !opts.write || !res.changed {
		return res, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return res, err
	}
	if opts.backup {
		if err := cp.CopyFile(path+".orig", path); err != nil {
			return res, fmt.Errorf("backup %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(res.out), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug("Rewrote source file", "path", path)
	return res, nil
}
