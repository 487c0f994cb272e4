// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/opensyria/opensy/chaincfg"
)

// AlgorithmSelector answers which proof-of-work algorithm, and which
// proof-of-work limit, applies at a given block height.  It is a thin,
// logging-aware wrapper around the consensus parameters: the selection
// logic itself belongs to chaincfg.Params so that it can be unit tested
// independently of any logging side effects.
type AlgorithmSelector struct {
	params *chaincfg.Params

	// lastLogged is the most recently logged algorithm, used only to
	// avoid emitting a log line for every block once steady state is
	// reached; it is not consulted by AlgorithmAt's return value.
	lastLogged chaincfg.PowAlgorithm
	loggedOnce bool
}

// NewAlgorithmSelector returns an AlgorithmSelector bound to params.
func NewAlgorithmSelector(params *chaincfg.Params) *AlgorithmSelector {
	return &AlgorithmSelector{params: params}
}

// AlgorithmAt returns the proof-of-work algorithm required at height,
// logging it on the first call and whenever it differs from the algorithm
// last logged.
func (s *AlgorithmSelector) AlgorithmAt(height int32) chaincfg.PowAlgorithm {
	algo := s.params.ActivePowAlgorithm(height)
	if !s.loggedOnce || algo != s.lastLogged {
		log.Infof("proof-of-work algorithm at height %d is %s", height, algo)
		s.lastLogged = algo
		s.loggedOnce = true
	}
	return algo
}

// LimitAt returns the proof-of-work ceiling required at height.
func (s *AlgorithmSelector) LimitAt(height int32) *big.Int {
	return s.params.ActivePowLimit(height)
}

// KeyBlockHeightAt returns the height of the block whose hash seeds the
// RandomX cache in effect at height.  It is meaningless outside the MHP
// algorithm but always computable, since key epochs are defined purely in
// terms of MHPKeyInterval.
func (s *AlgorithmSelector) KeyBlockHeightAt(height int32) int32 {
	return s.params.MHPKeyBlockHeight(height)
}
