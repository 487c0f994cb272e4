// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/opensyria/opensy/chaincfg/chainhash"
)

// PowAlgorithm identifies which of the three coexisting proof-of-work
// algorithms produced, or is required to validate, a given block.
type PowAlgorithm uint8

const (
	// SHA256D is the genesis algorithm: double SHA256 of the 80-byte
	// block header.  Active for every height below MHPForkHeight, unless
	// the Argon2id emergency fallback has been activated.
	SHA256D PowAlgorithm = iota

	// MHP is the memory-hard proof-of-work algorithm (RandomX) that
	// activates at MHPForkHeight.  It is the steady-state algorithm of
	// the chain.
	MHP

	// Argon2ID is the dormant emergency fallback.  It preempts MHP at
	// and above Argon2EmergencyHeight whenever that height has been set
	// to a nonnegative value by network-wide emergency activation.
	Argon2ID
)

// String returns the display name of a, matching the names used in log
// messages and in the emergency activation notice.
func (a PowAlgorithm) String() string {
	switch a {
	case SHA256D:
		return "SHA256d"
	case MHP:
		return "RandomX"
	case Argon2ID:
		return "Argon2id"
	default:
		return "unknown"
	}
}

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// mainPowLimit is the highest proof-of-work value a SHA256d block on the
// main network can have.  It is the value 2^224 - 1.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

// mainPowLimitMHP is the highest proof-of-work value a RandomX block on the
// main network can have.  RandomX's much lower hashrate ceiling calls for a
// far looser ceiling than the SHA256d limit; 2^236 - 1 is a placeholder
// until real network hashrate data justifies a tighter bound.
var mainPowLimitMHP = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

// regressionPowLimit is the highest proof-of-work value a SHA256d block on
// the regression test network can have.  It is the value 2^255 - 1,
// high enough that a single CPU can mine it instantly.
var regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

// Params defines the consensus parameters that govern proof-of-work
// algorithm selection, difficulty retargeting, and coinbase maturity for a
// given network.  It is intentionally narrower than a full node's network
// parameters: address encoding, genesis block contents, DNS seeds, and
// BIP0009 deployments are out of scope for this module.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowLimit defines the highest allowed proof-of-work value for a
	// SHA256d block as a uint256 (meaning the rightmost 32 bytes of
	// a 256-bit big-endian number).
	PowLimit *big.Int

	// PowLimitBits is the compact representation of PowLimit.
	PowLimitBits uint32

	// PowLimitMHP defines the highest allowed proof-of-work value for a
	// RandomX block.  If nil, the active limit falls back to PowLimit
	// (see Params.ActivePowLimit).
	PowLimitMHP *big.Int

	// PowLimitArgon2 defines the highest allowed proof-of-work value for
	// an Argon2id block.  If nil, the active limit falls back to
	// PowLimitMHP, and then to PowLimit.
	PowLimitArgon2 *big.Int

	// MHPForkHeight is the height at which the memory-hard proof-of-work
	// algorithm becomes the required algorithm, superseding SHA256d.
	// A value of 0 or less activates MHP from genesis.
	MHPForkHeight int32

	// MHPKeyInterval is the number of blocks between RandomX key
	// rotations.  The RandomX cache in use for the key epoch starting at
	// height H is seeded from the hash of the block at MHPKeyBlockHeight(H).
	MHPKeyInterval int32

	// Argon2EmergencyHeight is the height at which the Argon2id
	// emergency fallback preempts MHP.  A negative value (the default)
	// means the fallback has never been activated.
	Argon2EmergencyHeight int32

	// Argon2MemoryCost, Argon2TimeCost, and Argon2Parallelism are the
	// Argon2id tuning parameters used once the emergency fallback
	// activates.  MemoryCost is in KiB.
	Argon2MemoryCost  uint32
	Argon2TimeCost    uint32
	Argon2Parallelism uint32

	// CoinbaseMaturity is the number of blocks required before a
	// coinbase output may be spent.
	CoinbaseMaturity uint16

	// TargetTimespan is the desired amount of time that should elapse
	// before the proof-of-work difficulty is retargeted.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// RetargetAdjustmentFactor is the adjustment factor used to limit
	// the minimum and maximum amount of adjustment that can occur
	// between difficulty retargets.
	RetargetAdjustmentFactor int64

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required proof of work after a long enough period without
	// finding a block.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is the amount of time after which the
	// minimum required difficulty is reduced when ReduceMinDifficulty is
	// true.
	MinDiffReductionTime time.Duration

	// NoRetargeting defines whether the network has retargeting enabled
	// or not.  Some simulation and regression test networks hold the
	// difficulty fixed so tests are deterministic.
	NoRetargeting bool
}

// ActivePowAlgorithm returns the proof-of-work algorithm that is required
// to be used, and checked against, at the given height.  It implements the
// strict preemption order: an activated Argon2id emergency fallback takes
// precedence over MHP, which in turn takes precedence over SHA256d.
func (p *Params) ActivePowAlgorithm(height int32) PowAlgorithm {
	if p.isArgon2EmergencyActive(height) {
		return Argon2ID
	}
	if p.isMHPActive(height) {
		return MHP
	}
	return SHA256D
}

// isMHPActive reports whether height is at or above MHPForkHeight and the
// Argon2id emergency fallback has not preempted it.
func (p *Params) isMHPActive(height int32) bool {
	return height >= p.MHPForkHeight && !p.isArgon2EmergencyActive(height)
}

// isArgon2EmergencyActive reports whether the Argon2id emergency fallback
// has been activated (Argon2EmergencyHeight set to a nonnegative value) and
// height has reached it.
func (p *Params) isArgon2EmergencyActive(height int32) bool {
	return p.Argon2EmergencyHeight >= 0 && height >= p.Argon2EmergencyHeight
}

// ActivePowLimit returns the proof-of-work ceiling that applies at height,
// following the same null-falls-back-to-coarser-algorithm chain as the
// reference implementation: Argon2id falls back to MHP, which falls back
// to SHA256d, if the finer-grained limit was never configured.
func (p *Params) ActivePowLimit(height int32) *big.Int {
	switch p.ActivePowAlgorithm(height) {
	case Argon2ID:
		if p.PowLimitArgon2 != nil {
			return p.PowLimitArgon2
		}
		fallthrough
	case MHP:
		if p.PowLimitMHP != nil {
			return p.PowLimitMHP
		}
		fallthrough
	default:
		return p.PowLimit
	}
}

// MHPKeyBlockHeight returns the height of the block whose hash seeds the
// RandomX cache in effect at height.  Key epochs are MHPKeyInterval blocks
// wide and lag one full epoch behind the current height, so that every
// node can deterministically derive the key for a block it is about to
// validate without needing a not-yet-mined block's hash:
//
//	keyHeight(H) = max(0, floor(H / interval) * interval - interval)
//
// The clamp at 0 means every height below 2*interval (0 through 63 for an
// interval of 32) keys off the genesis block.  This bootstrap collapse is
// part of the rule, not worked around: those early blocks all share the
// genesis hash as their key.
func (p *Params) MHPKeyBlockHeight(height int32) int32 {
	interval := p.MHPKeyInterval
	if interval <= 0 {
		return 0
	}
	keyHeight := (height/interval)*interval - interval
	if keyHeight < 0 {
		return 0
	}
	return keyHeight
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (p *Params) DifficultyAdjustmentInterval() int32 {
	return int32(p.TargetTimespan / p.TargetTimePerBlock)
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",

	PowLimit:       mainPowLimit,
	PowLimitBits:   0x1d00ffff,
	PowLimitMHP:    mainPowLimitMHP,
	PowLimitArgon2: nil,

	MHPForkHeight:         57500,
	MHPKeyInterval:        32,
	Argon2EmergencyHeight: -1,
	Argon2MemoryCost:      1 << 21,
	Argon2TimeCost:        1,
	Argon2Parallelism:     1,

	CoinbaseMaturity: 100,

	TargetTimespan:           time.Hour * 24 * 14, // 14 days
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      false,
	MinDiffReductionTime:     0,
	NoRetargeting:            false,
}

// RegressionNetParams defines the network parameters for the regression
// test network.  Retargeting is disabled and the proof-of-work limit is
// wide open so tests can mine blocks instantly.
var RegressionNetParams = Params{
	Name: "regtest",

	PowLimit:       regressionPowLimit,
	PowLimitBits:   0x207fffff,
	PowLimitMHP:    regressionPowLimit,
	PowLimitArgon2: regressionPowLimit,

	MHPForkHeight:         150,
	MHPKeyInterval:        32,
	Argon2EmergencyHeight: -1,
	Argon2MemoryCost:      1 << 13, // 8 MiB, small enough to keep tests fast
	Argon2TimeCost:        1,
	Argon2Parallelism:     1,

	CoinbaseMaturity: 100,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	MinDiffReductionTime:     time.Minute * 20,
	NoRetargeting:            true,
}

// SimNetParams defines the network parameters for the simulation test
// network.  Like RegressionNetParams it disables retargeting, but keeps
// MHP active from genesis so that verifying against it exercises the
// memory-hard path at every height.
var SimNetParams = Params{
	Name: "simnet",

	PowLimit:       regressionPowLimit,
	PowLimitBits:   0x207fffff,
	PowLimitMHP:    regressionPowLimit,
	PowLimitArgon2: regressionPowLimit,

	MHPForkHeight:         0,
	MHPKeyInterval:        32,
	Argon2EmergencyHeight: -1,
	Argon2MemoryCost:      1 << 13,
	Argon2TimeCost:        1,
	Argon2Parallelism:     1,

	CoinbaseMaturity: 100,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      false,
	MinDiffReductionTime:     0,
	NoRetargeting:            true,
}

// mustCompact returns the compact encoding of limit, matching PowLimitBits
// for the networks above.  It exists purely as a cross-check that the
// hardcoded *Bits fields agree with chainhash.BigToCompact; unit tests use
// it to catch drift if a limit is ever edited without updating its bits.
func mustCompact(limit *big.Int) uint32 {
	return chainhash.BigToCompact(limit)
}
