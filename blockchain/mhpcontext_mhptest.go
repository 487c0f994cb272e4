// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build mhptest

package blockchain

import (
	"crypto/sha256"
	"testing"

	"github.com/opensyria/opensy/randomx"
)

// sha256FallbackHasher stands in for a real RandomX context in builds
// tagged mhptest, which exist only so the pool's concurrency and eviction
// logic can be exercised without computing real RandomX hashes (the
// randomx package itself is still compiled and linked). It is not a
// proof-of-work algorithm in its own right and must never be reachable
// from a production build.
type sha256FallbackHasher struct {
	key []byte
}

// newMHPContext returns a sha256FallbackHasher instead of a real RandomX
// context.  It logs loudly every time it is invoked, matching the
// reference client's behavior when compiled without its production
// memory-hard hashing backend.  It panics when called outside a test
// binary.
func newMHPContext(flags randomx.Flag) (mhpHasher, error) {
	if !testing.Testing() {
		panic("blockchain: SHA256 fallback hasher constructed outside a test binary")
	}
	poolLog.Warnf("WARNING: using SHA256 fallback instead of RandomX - FOR TESTING ONLY")
	return &sha256FallbackHasher{}, nil
}

func (h *sha256FallbackHasher) InitCache(key []byte) error {
	h.key = append([]byte(nil), key...)
	return nil
}

func (h *sha256FallbackHasher) Hash(input []byte) ([randomx.HashSize]byte, error) {
	var out [randomx.HashSize]byte
	buf := make([]byte, 0, len(h.key)+len(input))
	buf = append(buf, h.key...)
	buf = append(buf, input...)
	sum := sha256.Sum256(buf)
	copy(out[:], sum[:])
	return out, nil
}

func (h *sha256FallbackHasher) Close() {}
