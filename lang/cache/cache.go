// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package cache memoises parsed programs by the digest of their source text.
package cache

import (
	"encoding/hex"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"

	"github.com/probechain/go-imp/lang/ast"
	"github.com/probechain/go-imp/lang/parser"
)

// DefaultSize is the number of programs kept when no size is configured.
const DefaultSize = 256

// Digest identifies a source text.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Sum returns the digest of src.
func Sum(src string) Digest {
	return sha3.Sum256([]byte(src))
}

// Cache is an LRU cache of successfully parsed programs. It is safe for
// concurrent use. Cached programs are shared between callers and must not be
// modified.
type Cache struct {
	programs *lru.Cache

	hits   uint64
	misses uint64
}

// New creates a cache holding up to size programs.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	programs, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{programs: programs}, nil
}

// Parse returns the program for src, parsing it on a miss. Failed parses are
// not cached; the error is returned as produced by the parser.
func (c *Cache) Parse(src string) (*ast.Program, error) {
	digest := Sum(src)
	if prog, ok := c.programs.Get(digest); ok {
		atomic.AddUint64(&c.hits, 1)
		log.Trace("Parse cache hit", "digest", digest)
		return prog.(*ast.Program), nil
	}
	atomic.AddUint64(&c.misses, 1)

	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	if evicted := c.programs.Add(digest, prog); evicted {
		log.Debug("Parse cache full, evicted oldest program", "size", c.programs.Len())
	}
	return prog, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int { return c.programs.Len() }

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Purge drops every cached program.
func (c *Cache) Purge() { c.programs.Purge() }
