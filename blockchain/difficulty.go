// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/chaincfg/chainhash"
)

// DifficultyEngine computes the next required difficulty for a chain whose
// proof-of-work limit may change out from under it as the active algorithm
// changes at a fork height.  It never reads block contents beyond the
// timestamps and bits handed to it, so it has no opinion about which
// algorithm produced those blocks — that is AlgorithmSelector's job.
type DifficultyEngine struct {
	params   *chaincfg.Params
	selector *AlgorithmSelector
}

// NewDifficultyEngine returns a DifficultyEngine bound to params.
func NewDifficultyEngine(params *chaincfg.Params) *DifficultyEngine {
	return &DifficultyEngine{
		params:   params,
		selector: NewAlgorithmSelector(params),
	}
}

// RetargetWindow describes the two endpoints of a difficulty retarget
// window: the first block's timestamp and the most recent block's bits and
// timestamp.
type RetargetWindow struct {
	// FirstBlockTime is the timestamp of the first block in the
	// DifficultyAdjustmentInterval-sized window being retargeted.
	FirstBlockTime time.Time

	// LastBlockBits is the compact difficulty of the most recently
	// connected block.
	LastBlockBits uint32

	// LastBlockTime is the timestamp of the most recently connected
	// block.
	LastBlockTime time.Time
}

// CalcNextRequiredDifficulty calculates the required difficulty for the
// block after the most recently connected one, given height (the height of
// the block being produced) and, when height falls on a retarget boundary,
// the retarget window.  When height does not fall on a boundary, or when
// the active network disables retargeting, lastBlockBits is returned
// unchanged; it is not clamped to the proof-of-work limit that applies at
// height.
func (e *DifficultyEngine) CalcNextRequiredDifficulty(height int32, window RetargetWindow) uint32 {
	limit := e.selector.LimitAt(height)
	limitBits := chainhash.BigToCompact(limit)

	if e.params.ReduceMinDifficulty && height > 0 {
		// Allowed to mine a min-difficulty block if it has been long
		// enough since the last block, per ReduceMinDifficulty policy.
		maxReduceSpan := int64(e.params.MinDiffReductionTime / time.Second)
		if maxReduceSpan > 0 {
			elapsed := window.LastBlockTime.Sub(window.FirstBlockTime)
			if elapsed > 0 && int64(elapsed/time.Second) > maxReduceSpan*2 {
				return limitBits
			}
		}
	}

	if e.params.NoRetargeting {
		return window.LastBlockBits
	}

	interval := e.params.DifficultyAdjustmentInterval()
	if interval <= 0 || height%interval != 0 {
		return window.LastBlockBits
	}

	actualTimespan := window.LastBlockTime.Sub(window.FirstBlockTime)
	return e.calcNextRequiredDifficulty(window.LastBlockBits, actualTimespan, limit, limitBits)
}

// calcNextRequiredDifficulty applies the retarget formula: the new target
// moves in proportion to how far the observed timespan diverged from
// TargetTimespan, clamped to at most a RetargetAdjustmentFactor change in
// either direction, and never looser than the active proof-of-work limit.
func (e *DifficultyEngine) calcNextRequiredDifficulty(oldBits uint32, actualTimespan time.Duration, limit *big.Int, limitBits uint32) uint32 {
	adjustmentFactor := e.params.RetargetAdjustmentFactor
	if adjustmentFactor <= 0 {
		adjustmentFactor = 4
	}

	minTimespan := int64(e.params.TargetTimespan) / adjustmentFactor
	maxTimespan := int64(e.params.TargetTimespan) * adjustmentFactor

	actual := int64(actualTimespan)
	switch {
	case actual < minTimespan:
		actual = minTimespan
	case actual > maxTimespan:
		actual = maxTimespan
	}

	oldTarget := chainhash.CompactToBig(oldBits)
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(actual))
	newTarget.Div(newTarget, big.NewInt(int64(e.params.TargetTimespan)))

	if newTarget.Cmp(limit) > 0 {
		return limitBits
	}
	return chainhash.BigToCompact(newTarget)
}
