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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probechain/go-imp/lang/cache"
	"github.com/probechain/go-imp/lang/parser"
)

const (
	messySource     = "x:=1;while x do x:=x-1; end"
	canonicalSource = "x := 1;\nwhile x do\n  x := x - 1;\nend\n"
)

func newCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(16)
	require.NoError(t, err)
	return c
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFormatAllKeepsArgumentOrder(t *testing.T) {
	var paths []string
	for i := 0; i < 20; i++ {
		src := canonicalSource
		if i%2 == 0 {
			src = messySource
		}
		paths = append(paths, writeSource(t, "f.imp", src))
	}
	results, err := formatAll(context.Background(), newCache(t), paths, fmtOptions{})
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.path)
		assert.NoError(t, res.err)
		assert.Equal(t, canonicalSource, res.out)
		assert.Equal(t, i%2 == 0, res.changed)
	}
}

func TestFormatAllRecordsSyntaxErrors(t *testing.T) {
	good := writeSource(t, "good.imp", "print 1;")
	bad := writeSource(t, "bad.imp", "print 1 +;")

	results, err := formatAll(context.Background(), newCache(t), []string{good, bad}, fmtOptions{})
	require.NoError(t, err)
	assert.NoError(t, results[0].err)
	require.Error(t, results[1].err)
	assert.Contains(t, results[1].err.Error(), "PARSE ERROR in "+bad+" at 1:10")

	var perr *parser.ParseError
	assert.ErrorAs(t, results[1].err, &perr)
}

func TestFormatAllMissingFile(t *testing.T) {
	_, err := formatAll(context.Background(), newCache(t), []string{"/nonexistent/x.imp"}, fmtOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFileWriteWithBackup(t *testing.T) {
	path := writeSource(t, "w.imp", messySource)

	res, err := formatFile(newCache(t), path, fmtOptions{write: true, backup: true})
	require.NoError(t, err)
	assert.True(t, res.changed)
	assert.Equal(t, canonicalSource, readFile(t, path))
	assert.Equal(t, messySource, readFile(t, path+".orig"))
}

func TestFormatFileUnchangedIsNotRewritten(t *testing.T) {
	path := writeSource(t, "w.imp", canonicalSource)

	res, err := formatFile(newCache(t), path, fmtOptions{write: true, backup: true})
	require.NoError(t, err)
	assert.False(t, res.changed)
	_, err = os.Stat(path + ".orig")
	assert.True(t, os.IsNotExist(err), "no backup expected for unchanged files")
}

func TestFmtCommandPrints(t *testing.T) {
	path := writeSource(t, "p.imp", messySource)
	out, _, err := runApp(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, canonicalSource, out)
	assert.Equal(t, messySource, readFile(t, path), "file must not change without -w")
}

func TestFmtCommandList(t *testing.T) {
	messy := writeSource(t, "m.imp", messySource)
	clean := writeSource(t, "c.imp", canonicalSource)

	out, _, err := runApp(t, "fmt", "-l", messy, clean)
	require.NoError(t, err)
	assert.Equal(t, messy+"\n", out)
}

func TestFmtCommandWrite(t *testing.T) {
	path := writeSource(t, "w.imp", messySource)
	out, _, err := runApp(t, "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, canonicalSource, readFile(t, path))
}

func TestFmtCommandReportsErrors(t *testing.T) {
	bad := writeSource(t, "bad.imp", "if x then print x;")
	good := writeSource(t, "good.imp", "print   2;")

	out, stderr, err := runApp(t, "fmt", bad, good)
	assert.Equal(t, errFailed, err)
	assert.Equal(t, "print 2;\n", out)
	assert.True(t, strings.HasPrefix(stderr, "PARSE ERROR in "+bad), stderr)
}

func TestFmtCommandWriteRejectsStdinAnywhere(t *testing.T) {
	path := writeSource(t, "w.imp", messySource)
	_, _, err := runApp(t, "fmt", "-w", path, "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "standard input")
	assert.Equal(t, messySource, readFile(t, path), "no file may be rewritten")
}
