// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !mhptest

package blockchain

import "github.com/opensyria/opensy/randomx"

// newMHPContext allocates the hasher a pool entry uses.  In a production
// build this is always a real RandomX context.
func newMHPContext(flags randomx.Flag) (mhpHasher, error) {
	return randomx.NewContext(flags)
}
