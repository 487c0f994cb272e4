// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAmountRejectsNaNAndInf(t *testing.T) {
	_, err := NewAmount(math.NaN())
	require.Error(t, err)

	_, err = NewAmount(math.Inf(1))
	require.Error(t, err)

	_, err = NewAmount(math.Inf(-1))
	require.Error(t, err)
}

func TestNewAmountRoundsToNearestSatoshi(t *testing.T) {
	amt, err := NewAmount(0.123456789)
	require.NoError(t, err)
	require.EqualValues(t, 12345679, amt)
}

func TestAmountToBTC(t *testing.T) {
	amt := Amount(SatoshiPerBitcoin * 2)
	require.Equal(t, 2.0, amt.ToBTC())
}

func TestAmountToUnitConversions(t *testing.T) {
	amt := Amount(SatoshiPerBitcoin)
	require.Equal(t, 1e8, amt.ToUnit(AmountSatoshi))
	require.Equal(t, 1e-3, amt.ToUnit(AmountKiloCoin))
}

func TestAmountStringUsesBTCUnit(t *testing.T) {
	amt := Amount(SatoshiPerBitcoin)
	require.Equal(t, "1 BTC", amt.String())
}

func TestAmountMulF64RoundsHalfAwayFromZero(t *testing.T) {
	amt := Amount(5)
	require.EqualValues(t, 3, amt.MulF64(0.5))

	neg := Amount(-5)
	require.EqualValues(t, -3, neg.MulF64(0.5))
}

func TestMaxSatoshiMatchesSupplyCap(t *testing.T) {
	require.EqualValues(t, 21e6*SatoshiPerBitcoin, MaxSatoshi)
}
