// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build mhptest

package blockchain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/wire"
)

// zeroChain always resolves every height to the null hash, which is all
// that mhpHash needs from a BlockHashSource in a test that only cares
// about the key lookup being wired through, not about real chain data.
type zeroChain struct{}

func (zeroChain) BlockHashByHeight(height int32) (chainhash.Hash, error) {
	return chainhash.Hash{}, nil
}

func mhpTestParams() *chaincfg.Params {
	return &chaincfg.Params{
		PowLimitMHP:           new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
		MHPForkHeight:         0,
		MHPKeyInterval:        32,
		Argon2EmergencyHeight: -1,
	}
}

func TestVerifyHeaderMHPAcceptsWideOpenTarget(t *testing.T) {
	params := mhpTestParams()
	pool := NewMHPContextPool(0)
	defer pool.Close()

	verifier := NewPowVerifier(params, pool, nil, zeroChain{})

	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(params.PowLimitMHP)}
	ok, err := verifier.VerifyHeader(header, 100, PriorityConsensusCritical)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyHeaderMHPMissingChainSource(t *testing.T) {
	params := mhpTestParams()
	pool := NewMHPContextPool(0)
	defer pool.Close()

	verifier := NewPowVerifier(params, pool, nil, nil)

	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(params.PowLimitMHP)}
	_, err := verifier.VerifyHeader(header, 100, PriorityNormal)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrBadConfig))
}
