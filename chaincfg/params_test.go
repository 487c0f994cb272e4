// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() *Params {
	return &Params{
		MHPForkHeight:         100,
		MHPKeyInterval:        32,
		Argon2EmergencyHeight: -1,
	}
}

func TestActivePowAlgorithmBeforeFork(t *testing.T) {
	p := testParams()
	require.Equal(t, SHA256D, p.ActivePowAlgorithm(0))
	require.Equal(t, SHA256D, p.ActivePowAlgorithm(99))
}

func TestActivePowAlgorithmAtAndAfterFork(t *testing.T) {
	p := testParams()
	require.Equal(t, MHP, p.ActivePowAlgorithm(100))
	require.Equal(t, MHP, p.ActivePowAlgorithm(1000))
}

func TestArgon2EmergencyPreemptsMHP(t *testing.T) {
	p := testParams()
	p.Argon2EmergencyHeight = 500
	require.Equal(t, MHP, p.ActivePowAlgorithm(499))
	require.Equal(t, Argon2ID, p.ActivePowAlgorithm(500))
	require.Equal(t, Argon2ID, p.ActivePowAlgorithm(1000))
}

func TestArgon2EmergencyNegativeMeansInactive(t *testing.T) {
	p := testParams()
	require.Equal(t, MHP, p.ActivePowAlgorithm(1<<20))
}

// TestMHPKeyBlockHeight exercises the exact boundary behavior of the
// reference implementation's GetRandomXKeyBlockHeight: key epochs are
// MHPKeyInterval wide and lag one full epoch behind the current height,
// clamped to never go negative.
func TestMHPKeyBlockHeight(t *testing.T) {
	p := testParams()
	p.MHPKeyInterval = 32

	cases := []struct {
		height   int32
		keyBlock int32
	}{
		{0, 0},
		{31, 0},
		{32, 0},
		{63, 0},
		{64, 32},
		{95, 32},
		{96, 64},
	}
	for _, c := range cases {
		require.Equal(t, c.keyBlock, p.MHPKeyBlockHeight(c.height),
			"height %d", c.height)
	}
}

func TestMHPKeyBlockHeightZeroInterval(t *testing.T) {
	p := testParams()
	p.MHPKeyInterval = 0
	require.Equal(t, int32(0), p.MHPKeyBlockHeight(1000))
}

func TestActivePowLimitFallsBackWhenUnset(t *testing.T) {
	p := testParams()
	p.PowLimit = mainPowLimit
	p.PowLimitMHP = nil
	p.PowLimitArgon2 = nil

	require.Same(t, mainPowLimit, p.ActivePowLimit(0))
	require.Same(t, mainPowLimit, p.ActivePowLimit(200))
}

func TestActivePowLimitUsesFinerGrainedWhenSet(t *testing.T) {
	p := testParams()
	p.PowLimit = mainPowLimit
	p.PowLimitMHP = mainPowLimitMHP

	require.Same(t, mainPowLimitMHP, p.ActivePowLimit(200))
}

func TestDifficultyAdjustmentInterval(t *testing.T) {
	require.Equal(t, int32(2016), MainNetParams.DifficultyAdjustmentInterval())
}

func TestMainNetPresetConsistency(t *testing.T) {
	require.Equal(t, PowAlgorithm(SHA256D), MainNetParams.ActivePowAlgorithm(0))
	require.Equal(t, MHP, MainNetParams.ActivePowAlgorithm(MainNetParams.MHPForkHeight))
}

func TestMainNetPowLimitBitsMatchesPowLimit(t *testing.T) {
	require.Equal(t, MainNetParams.PowLimitBits, mustCompact(MainNetParams.PowLimit))
}

func TestRegressionNetPowLimitBitsMatchesPowLimit(t *testing.T) {
	require.Equal(t, RegressionNetParams.PowLimitBits, mustCompact(RegressionNetParams.PowLimit))
}
