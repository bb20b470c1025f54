// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package debug

import (
	"bytes"
	"flag"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"
)

func TestSetupWriterVerbosity(t *testing.T) {
	defer log.SetDefault(log.Root())

	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, Config{Verbosity: 3}, false))
	log.Debug("Hidden record", "k", 1)
	log.Info("Shown record", "k", 2)

	out := buf.String()
	assert.NotContains(t, out, "Hidden record")
	assert.Contains(t, out, "Shown record")
	assert.Contains(t, out, "k=2")

	buf.Reset()
	require.NoError(t, SetupWriter(&buf, Config{Verbosity: 4}, false))
	log.Debug("Now visible")
	assert.Contains(t, buf.String(), "Now visible")
}

func TestApplyFlags(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Flags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse([]string{"--verbosity", "5", "--nocolor"}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg := DefaultConfig
	ApplyFlags(ctx, &cfg)
	assert.Equal(t, Config{Verbosity: 5, Color: false}, cfg)
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Flags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(nil))
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg := Config{Verbosity: 1, Vmodule: "lexer.go=5", Color: true}
	ApplyFlags(ctx, &cfg)
	assert.Equal(t, Config{Verbosity: 1, Vmodule: "lexer.go=5", Color: true}, cfg)
}
