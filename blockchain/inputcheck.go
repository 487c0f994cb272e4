// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/opensyria/opensy/btcutil"
	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/wire"
)

// Coin records what a UtxoViewpoint knows about a single unspent
// transaction output: its value, whether it came from a coinbase
// transaction, and the height of the block that created it.  Maturity and
// MAX_MONEY checks both depend on knowing that height and origin.
type Coin struct {
	Amount      btcutil.Amount
	IsCoinBase  bool
	BlockHeight int32
}

// UtxoViewpoint resolves transaction inputs to the Coin that funds them.
// A zero Coin with ok == false means the outpoint is unknown — either it
// was never created or it has already been spent — and CheckTxInputs
// reports that outpoint as a missing input.
type UtxoViewpoint interface {
	LookupEntry(op wire.OutPoint) (Coin, bool)
}

// CheckTxInputs validates tx's inputs against view at the given spend
// height: every referenced coin must exist, every coinbase input must have
// reached CoinbaseMaturity confirmations, no single input and no running
// total of inputs may exceed MaxSatoshi, and the sum of outputs may not
// exceed the sum of inputs.  On success it returns the transaction fee
// (sum of inputs minus sum of outputs).
func CheckTxInputs(tx *wire.MsgTx, spendHeight int32, view UtxoViewpoint, params *chaincfg.Params) (btcutil.Amount, error) {
	var totalIn btcutil.Amount

	for txInIndex, txIn := range tx.TxIn {
		coin, ok := view.LookupEntry(txIn.PreviousOutPoint)
		if !ok {
			str := fmt.Sprintf("output %v referenced from transaction input %d either "+
				"does not exist or has already been spent", txIn.PreviousOutPoint, txInIndex)
			return 0, ruleError(ErrMissingInputs, str)
		}

		if coin.IsCoinBase {
			originHeight := coin.BlockHeight
			blocksSincePrev := spendHeight - originHeight
			coinbaseMaturity := int32(params.CoinbaseMaturity)
			if blocksSincePrev < coinbaseMaturity {
				str := fmt.Sprintf("tried to spend coinbase output %v from height %v "+
					"at height %v before required maturity of %v blocks (premature spend)",
					txIn.PreviousOutPoint, originHeight, spendHeight, coinbaseMaturity)
				return 0, ruleError(ErrPrematureSpend, str)
			}
		}

		if coin.Amount < 0 || coin.Amount > btcutil.MaxSatoshi {
			str := fmt.Sprintf("transaction output value of %v is out of range", coin.Amount)
			return 0, ruleError(ErrInputValueOutOfRange, str)
		}

		totalIn += coin.Amount
		if totalIn < 0 || totalIn > btcutil.MaxSatoshi {
			return 0, ruleError(ErrInputValueOutOfRange, "total value of all transaction inputs is out of range")
		}
	}

	var totalOut btcutil.Amount
	for _, txOut := range tx.TxOut {
		totalOut += btcutil.Amount(txOut.Value)
	}

	if totalIn < totalOut {
		str := fmt.Sprintf("total value of all transaction inputs for transaction is "+
			"%v which is less than the amount spent of %v", totalIn, totalOut)
		return 0, ruleError(ErrBadFee, str)
	}

	txFeeInSatoshi := totalIn - totalOut
	return txFeeInSatoshi, nil
}
