// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/opensyria/opensy/argon2ctx"
	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/wire"
)

// BlockHashSource resolves a height on the best chain to the hash of the
// block at that height.  PowVerifier needs this to derive the RandomX key
// block hash for a given height without owning a full chain index itself.
type BlockHashSource interface {
	BlockHashByHeight(height int32) (chainhash.Hash, error)
}

// PowVerifier checks a block header's proof of work against the algorithm
// and difficulty limit required at its height, dispatching to SHA256d,
// the pooled RandomX contexts, or the Argon2id emergency fallback as
// appropriate.
type PowVerifier struct {
	params   *chaincfg.Params
	selector *AlgorithmSelector
	pool     *MHPContextPool
	argon2   *argon2ctx.Context
	chain    BlockHashSource
}

// NewPowVerifier returns a PowVerifier.  argon2Ctx may be nil if the
// emergency fallback has never been configured; VerifyHeader returns an
// error rather than panicking if a block at the Argon2id height is ever
// presented to such a verifier.
func NewPowVerifier(params *chaincfg.Params, pool *MHPContextPool, argon2Ctx *argon2ctx.Context, chain BlockHashSource) *PowVerifier {
	return &PowVerifier{
		params:   params,
		selector: NewAlgorithmSelector(params),
		pool:     pool,
		argon2:   argon2Ctx,
		chain:    chain,
	}
}

// VerifyHeader reports whether header's proof of work satisfies the
// difficulty target required at height, using the RandomX context pool at
// priority when the active algorithm is MHP.  It returns true with a nil
// error only when the work meets the target.  Every false return carries a
// non-nil error: ErrHighHash when the work was computed but did not meet
// the target, and other errors when the work could not be computed or
// checked at all (an unconfigured fallback, a pool timeout, a malformed
// Bits field).
func (v *PowVerifier) VerifyHeader(header *wire.BlockHeader, height int32, priority AcquisitionPriority) (bool, error) {
	algo := v.selector.AlgorithmAt(height)

	target := chainhash.CompactToBig(header.Bits)
	limit := v.selector.LimitAt(height)
	if target.Sign() <= 0 {
		return false, ruleError(ErrUnexpectedDifficulty, "target difficulty is non-positive")
	}
	if target.Cmp(limit) > 0 {
		return false, ruleError(ErrUnexpectedDifficulty, "target difficulty exceeds the proof-of-work limit")
	}

	powHash, err := v.powHash(header, height, algo, priority)
	if err != nil {
		return false, err
	}

	if powHash.AsInteger().Cmp(target) > 0 {
		return false, ruleError(ErrHighHash, "block hash does not meet the required target difficulty")
	}
	return true, nil
}

// powHash computes the algorithm-specific proof-of-work digest for
// header.  This is distinct from header.BlockHash, which is always
// SHA256d regardless of the active algorithm.
func (v *PowVerifier) powHash(header *wire.BlockHeader, height int32, algo chaincfg.PowAlgorithm, priority AcquisitionPriority) (chainhash.Hash, error) {
	switch algo {
	case chaincfg.SHA256D:
		return chainhash.DoubleHashH(header.Bytes()), nil

	case chaincfg.MHP:
		return v.mhpHash(header, height, priority)

	case chaincfg.Argon2ID:
		return v.argon2Hash(header)

	default:
		return chainhash.Hash{}, ruleError(ErrBadConfig, "unknown proof-of-work algorithm")
	}
}

func (v *PowVerifier) mhpHash(header *wire.BlockHeader, height int32, priority AcquisitionPriority) (chainhash.Hash, error) {
	if v.chain == nil {
		return chainhash.Hash{}, ruleError(ErrBadConfig, "RandomX key block lookup is unavailable")
	}

	keyHeight := v.selector.KeyBlockHeightAt(height)
	keyBlockHash, err := v.chain.BlockHashByHeight(keyHeight)
	if err != nil {
		return chainhash.Hash{}, err
	}

	guard, ok := v.pool.Acquire(keyBlockHash, priority)
	if !ok {
		return chainhash.Hash{}, ruleError(ErrResourceExhausted, "timed out waiting for a RandomX context")
	}
	defer guard.Release()

	raw, err := guard.Context().Hash(header.Bytes())
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.Hash(raw), nil
}

func (v *PowVerifier) argon2Hash(header *wire.BlockHeader) (chainhash.Hash, error) {
	if v.argon2 == nil {
		return chainhash.Hash{}, ruleError(ErrBadConfig, "Argon2id emergency fallback is not configured")
	}
	raw, err := v.argon2.CalculateBlockHash(header.Bytes(), header.PrevBlock[:])
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.Hash(raw), nil
}
