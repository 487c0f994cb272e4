// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argon2ctx implements the dormant emergency fallback
// proof-of-work algorithm.  It binds golang.org/x/crypto/argon2's Argon2id
// implementation with the parameter validation and block-salting
// convention of the reference client's Argon2Context.
package argon2ctx

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/argon2"
)

// HashLength is the length in bytes of an Argon2id output hash.
const HashLength = 32

// MaxInputSize bounds the input handed to CalculateHash.  It exists to
// keep a malicious or buggy caller from turning Argon2id's already
// memory-hard cost into an unbounded one by feeding it unbounded input.
const MaxInputSize = 4 * 1024 * 1024 // 4 MiB

// MinMemoryCost is the lowest accepted memory cost, in KiB.  Argon2id's
// whole purpose is to be memory-hard; anything below this floor stops
// providing meaningful ASIC resistance.
const MinMemoryCost = 8

// Context holds validated Argon2id tuning parameters and computes hashes
// with them.  Unlike randomx.Context, an argon2ctx.Context carries no key
// material or warmed-up state — Argon2id has no notion of a long-lived
// cache — so a single Context can be shared and reused across heights
// without rekeying.  Hash evaluations on one Context are serialized by an
// internal mutex.
type Context struct {
	mu          sync.Mutex
	memoryCost  uint32 // KiB
	timeCost    uint32
	parallelism uint32
}

// NewContext validates memoryCost (KiB), timeCost, and parallelism and
// returns a Context configured with them.  It returns an error, rather
// than panicking, for any parameter outside its accepted range so that a
// bad emergency-activation config surfaces as a recoverable startup error
// instead of a crash.
func NewContext(memoryCost, timeCost, parallelism uint32) (*Context, error) {
	if memoryCost < MinMemoryCost {
		return nil, fmt.Errorf("argon2ctx: memory cost must be at least %d KiB, got %d", MinMemoryCost, memoryCost)
	}
	if timeCost < 1 {
		return nil, fmt.Errorf("argon2ctx: time cost must be at least 1, got %d", timeCost)
	}
	if parallelism < 1 {
		return nil, fmt.Errorf("argon2ctx: parallelism must be at least 1, got %d", parallelism)
	}
	return &Context{
		memoryCost:  memoryCost,
		timeCost:    timeCost,
		parallelism: parallelism,
	}, nil
}

// CalculateHash returns the Argon2id hash of data salted with salt.  salt
// should be unique per input — see CalculateBlockHash, which salts with
// the previous block hash specifically to prevent precomputation attacks
// against the emergency fallback.
func (c *Context) CalculateHash(data, salt []byte) ([HashLength]byte, error) {
	var out [HashLength]byte
	if len(data) > MaxInputSize {
		return out, fmt.Errorf("argon2ctx: input of %d bytes exceeds %d byte cap", len(data), MaxInputSize)
	}

	c.mu.Lock()
	sum := argon2.IDKey(data, salt, c.timeCost, c.memoryCost, uint8(c.parallelism), HashLength)
	c.mu.Unlock()
	copy(out[:], sum)
	return out, nil
}

// CalculateBlockHash computes the Argon2id proof-of-work hash of a block
// header's serialized bytes, salted with the previous block's hash.
// Salting with hashPrevBlock, rather than a fixed or empty salt, is load
// bearing: Argon2id's security argument assumes a unique salt per input,
// and every candidate header for a given chain tip shares the same
// hashPrevBlock, which is exactly the scope "per block" needs to cover.
func (c *Context) CalculateBlockHash(headerBytes, hashPrevBlock []byte) ([HashLength]byte, error) {
	return c.CalculateHash(headerBytes, hashPrevBlock)
}

// MemoryCost, TimeCost, and Parallelism return the parameters the Context
// was constructed with.
func (c *Context) MemoryCost() uint32  { return c.memoryCost }
func (c *Context) TimeCost() uint32    { return c.timeCost }
func (c *Context) Parallelism() uint32 { return c.parallelism }
