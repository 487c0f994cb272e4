// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/opensyria/opensy/randomx"

// mhpHasher is the subset of randomx.Context that MHPContextPool depends
// on.  It exists so that a build tagged with mhptest can substitute a
// pure-Go stand-in hasher that calls no librandomx function, while
// production builds always go through the real RandomX binding.  The
// package still imports the cgo randomx package under either tag, so a
// mhptest build also compiles and links against librandomx.
type mhpHasher interface {
	InitCache(key []byte) error
	Hash(input []byte) ([randomx.HashSize]byte, error)
	Close()
}
