// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-imp/internal/debug"
	"github.com/probechain/go-imp/lang/cache"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[FILE]",
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values, optionally writing them to FILE.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	cacheSizeFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "Number of parsed programs kept in memory",
		Value: cache.DefaultSize,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type cacheConfig struct {
	Size int
}

type formatConfig struct {
	Backup bool // keep FILE.orig when rewriting
}

type consoleConfig struct {
	HistoryFile string `toml:",omitempty"`
	Prompt      string
}

type impConfig struct {
	Log     debug.Config
	Cache   cacheConfig
	Format  formatConfig
	Console consoleConfig
}

func defaultConfig() impConfig {
	return impConfig{
		Log:     debug.DefaultConfig,
		Cache:   cacheConfig{Size: cache.DefaultSize},
		Console: consoleConfig{Prompt: "imp> "},
	}
}

func loadConfig(file string, cfg *impConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads defaults, then the config file, then applies flags.
func makeConfig(ctx *cli.Context) (impConfig, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}

	debug.ApplyFlags(ctx, &cfg.Log)
	if ctx.GlobalIsSet(cacheSizeFlag.Name) {
		cfg.Cache.Size = ctx.GlobalInt(cacheSizeFlag.Name)
	}
	return cfg, nil
}

// configKey is the app metadata entry holding the *impConfig built in Before.
const configKey = "config"

// loadedConfig returns the configuration built once by the app's Before hook.
func loadedConfig(ctx *cli.Context) *impConfig {
	return ctx.App.Metadata[configKey].(*impConfig)
}

// historyPath returns the console history location, defaulting to a file
// in the user's home directory.
func (c consoleConfig) historyPath() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".imp_history")
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := loadedConfig(ctx)
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
