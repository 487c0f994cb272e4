// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensyria/opensy/argon2ctx"
	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/wire"
)

// mineSHA256D brute-forces a nonce so header satisfies a wide-open target,
// the same trick the reference SolveBlock helper uses for deterministic
// test fixtures.
func mineSHA256D(t *testing.T, header *wire.BlockHeader, target *big.Int) {
	for nonce := uint32(0); nonce < 1<<20; nonce++ {
		header.Nonce = nonce
		hash := chainhash.DoubleHashH(header.Bytes())
		if hash.AsInteger().Cmp(target) <= 0 {
			return
		}
	}
	t.Fatal("failed to mine a header satisfying the wide-open test target")
}

func sha256dParams() *chaincfg.Params {
	return &chaincfg.Params{
		PowLimit:              chaincfg.RegressionNetParams.PowLimit,
		MHPForkHeight:         1 << 20,
		MHPKeyInterval:        32,
		Argon2EmergencyHeight: -1,
	}
}

func TestVerifyHeaderSHA256DAccepts(t *testing.T) {
	params := sha256dParams()
	verifier := NewPowVerifier(params, NewMHPContextPool(0), nil, nil)

	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(params.PowLimit)}
	mineSHA256D(t, header, params.PowLimit)

	ok, err := verifier.VerifyHeader(header, 0, PriorityNormal)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyHeaderRejectsBitsAboveLimit(t *testing.T) {
	params := sha256dParams()
	verifier := NewPowVerifier(params, NewMHPContextPool(0), nil, nil)

	tooLoose := new(big.Int).Lsh(params.PowLimit, 8)
	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(tooLoose)}

	_, err := verifier.VerifyHeader(header, 0, PriorityNormal)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnexpectedDifficulty))
}

func TestVerifyHeaderRejectsNonPositiveTarget(t *testing.T) {
	params := sha256dParams()
	verifier := NewPowVerifier(params, NewMHPContextPool(0), nil, nil)

	header := &wire.BlockHeader{Bits: 0}
	_, err := verifier.VerifyHeader(header, 0, PriorityNormal)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnexpectedDifficulty))
}

func TestVerifyHeaderArgon2NotConfigured(t *testing.T) {
	params := sha256dParams()
	params.Argon2EmergencyHeight = 0
	verifier := NewPowVerifier(params, NewMHPContextPool(0), nil, nil)

	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(params.PowLimit)}
	_, err := verifier.VerifyHeader(header, 0, PriorityNormal)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrBadConfig))
}

func TestVerifyHeaderArgon2Accepts(t *testing.T) {
	params := sha256dParams()
	params.Argon2EmergencyHeight = 0
	// Wide open: the limit encodes to compact 0x2100ffff, a target of
	// 0xffff * 2^240, so only hashes whose top 16 bits are all set (about
	// 1 in 65536) exceed it, and a single deterministic Argon2id output is
	// overwhelmingly likely to satisfy it.
	params.PowLimitArgon2 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	argon2Ctx, err := argon2ctx.NewContext(argon2ctx.MinMemoryCost, 1, 1)
	require.NoError(t, err)

	verifier := NewPowVerifier(params, NewMHPContextPool(0), argon2Ctx, nil)

	header := &wire.BlockHeader{Bits: chainhash.BigToCompact(params.PowLimitArgon2)}
	ok, err := verifier.VerifyHeader(header, 0, PriorityNormal)
	require.NoError(t, err)
	require.True(t, ok)
}
