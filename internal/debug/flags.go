// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package debug configures the process wide logger from command line flags
// and the [Log] section of the configuration file.
package debug

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"
)

// Config is the [Log] configuration section.
type Config struct {
	Verbosity int    // 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Vmodule   string `toml:",omitempty"`
	Color     bool
}

// DefaultConfig logs at info level with colour on terminals.
var DefaultConfig = Config{
	Verbosity: 3,
	Color:     true,
}

var (
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: DefaultConfig.Verbosity,
	}
	VmoduleFlag = cli.StringFlag{
		Name:  "vmodule",
		Usage: "Per-file verbosity: comma-separated list of <pattern>=<level> (e.g. parser.go=5)",
	}
	NoColorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable coloured log output",
	}
)

// Flags holds all command-line flags required for logging.
var Flags = []cli.Flag{
	VerbosityFlag, VmoduleFlag, NoColorFlag,
}

// ApplyFlags overrides cfg with the logging flags set on the command line.
func ApplyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet(VerbosityFlag.Name) {
		cfg.Verbosity = ctx.GlobalInt(VerbosityFlag.Name)
	}
	if ctx.GlobalIsSet(VmoduleFlag.Name) {
		cfg.Vmodule = ctx.GlobalString(VmoduleFlag.Name)
	}
	if ctx.GlobalBool(NoColorFlag.Name) {
		cfg.Color = false
	}
}

// Setup installs the root logger writing to stderr.
func Setup(cfg Config) error {
	output := io.Writer(os.Stderr)
	usecolor := cfg.Color && useColor(os.Stderr)
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	return SetupWriter(output, cfg, usecolor)
}

// SetupWriter installs the root logger writing terminal formatted records
// to w, filtered by the configured verbosity and vmodule patterns.
func SetupWriter(w io.Writer, cfg Config, usecolor bool) error {
	glogger := log.NewGlogHandler(log.NewTerminalHandler(w, usecolor))
	glogger.Verbosity(log.FromLegacyLevel(cfg.Verbosity))
	if cfg.Vmodule != "" {
		if err := glogger.Vmodule(cfg.Vmodule); err != nil {
			return err
		}
	}
	log.SetDefault(log.NewLogger(glogger))
	return nil
}

func useColor(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
