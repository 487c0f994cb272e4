// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These cover the paths that make no librandomx call at run time (the
// package still links against the library): InitCache's own input
// validation, and Hash/Key/Close behavior on a Context that has never been
// successfully keyed. Actually hashing requires the real library; the pool
// tests run against the mhptest SHA-256 stand-in, so no test here or there
// computes a real RandomX hash.

func TestNewContextStartsUnkeyed(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)
	require.Nil(t, ctx.Key())
}

func TestInitCacheRejectsEmptyKey(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)

	err = ctx.InitCache(nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestHashBeforeInitCacheReturnsErrNotInitialized(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)

	_, err = ctx.Hash([]byte("anything"))
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestCloseIsIdempotentWithoutInitCache(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)

	ctx.Close()
	ctx.Close()
}

func TestHashAfterCloseReturnsErrClosed(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)

	ctx.Close()

	_, err = ctx.Hash([]byte("anything"))
	require.ErrorIs(t, err, ErrClosed)
}

func TestInitCacheAfterCloseReturnsErrClosed(t *testing.T) {
	ctx, err := NewContext(FlagDefault)
	require.NoError(t, err)

	ctx.Close()

	err = ctx.InitCache([]byte("0123456789abcdef0123456789abcdef"))
	require.ErrorIs(t, err, ErrClosed)
}

func TestFlagBitwiseCombination(t *testing.T) {
	combined := FlagHardAES | FlagFullMem | FlagJIT
	require.NotZero(t, combined&FlagHardAES)
	require.NotZero(t, combined&FlagFullMem)
	require.NotZero(t, combined&FlagJIT)
	require.Zero(t, combined&FlagSecure)
}
