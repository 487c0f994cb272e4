// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"errors"
	"math"
	"strconv"
)

// AmountUnit describes a possible unit associated with a monetary amount.
type AmountUnit int

// These constants define various units used when describing a monetary
// amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountSatoshi   AmountUnit = -8
)

// SatoshiPerBitcoin is the number of satoshis in one bitcoin (1 BTC).
const SatoshiPerBitcoin = 1e8

// MaxSatoshi is the maximum transaction amount allowed in satoshis,
// referred to elsewhere in consensus discussions as MAX_MONEY.  It bounds
// any single input or output value, and the total money supply.
const MaxSatoshi = 21e6 * SatoshiPerBitcoin

// Amount represents the base bitcoin monetary unit (colloquially referred
// to as a `Satoshi`).  A single Amount is equal to 1e-8 of a bitcoin.
type Amount int64

// round half away from zero, matching the rounding rule used by the
// reference client's amount parsing.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing an
// amount of bitcoin.  NewAmount errors if f is NaN or +-Infinity, but does
// not check that the amount is within the total bitcoin supply.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return 0, errors.New("invalid bitcoin amount")
	}
	return round(f * SatoshiPerBitcoin), nil
}

// ToUnit converts a monetary amount counted in bitcoin base units to a
// floating point value representing an amount of the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToBTC is the equivalent of calling ToUnit with AmountCoin.
func (a Amount) ToBTC() float64 {
	return a.ToUnit(AmountCoin)
}

// Format formats a monetary amount counted in bitcoin base units as a
// string for a given unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + unitString(u)
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)
	return formatted + units
}

// String is the equivalent of calling Format with AmountCoin.
func (a Amount) String() string {
	return a.Format(AmountCoin)
}

// MulF64 multiplies an Amount by a floating point value, rounding half
// away from zero to the nearest base unit.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}

func unitString(u AmountUnit) string {
	switch u {
	case AmountMegaCoin:
		return "MBTC"
	case AmountKiloCoin:
		return "kBTC"
	case AmountCoin:
		return "BTC"
	case AmountMilliCoin:
		return "mBTC"
	case AmountMicroCoin:
		return "μBTC"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " BTC"
	}
}
