// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensyria/opensy/chaincfg/chainhash"
)

func TestIsCoinBaseOutPoint(t *testing.T) {
	cb := OutPoint{Hash: chainhash.Hash{}, Index: MaxPrevOutIndex}
	require.True(t, cb.IsCoinBaseOutPoint())

	notCB := OutPoint{Hash: chainhash.DoubleHashH([]byte("x")), Index: MaxPrevOutIndex}
	require.False(t, notCB.IsCoinBaseOutPoint())

	wrongIndex := OutPoint{Hash: chainhash.Hash{}, Index: 0}
	require.False(t, wrongIndex.IsCoinBaseOutPoint())
}

func TestOutPointString(t *testing.T) {
	h := chainhash.DoubleHashH([]byte("x"))
	op := OutPoint{Hash: h, Index: 3}
	require.Equal(t, h.String()+":3", op.String())
}

func TestMsgTxIsCoinBase(t *testing.T) {
	tx := NewMsgTx(1)
	tx.AddTxIn(NewTxIn(&OutPoint{Hash: chainhash.Hash{}, Index: MaxPrevOutIndex}, nil))
	require.True(t, tx.IsCoinBase())

	tx.AddTxIn(NewTxIn(&OutPoint{Hash: chainhash.DoubleHashH([]byte("y")), Index: 0}, nil))
	require.False(t, tx.IsCoinBase(), "a second input disqualifies a transaction from being a coinbase")
}

func TestNewTxInDefaultsSequence(t *testing.T) {
	op := &OutPoint{Hash: chainhash.DoubleHashH([]byte("z")), Index: 1}
	in := NewTxIn(op, []byte{0x01})
	require.Equal(t, MaxTxInSequenceNum, in.Sequence)
	require.Equal(t, *op, in.PreviousOutPoint)
}

func TestAddTxInAddTxOut(t *testing.T) {
	tx := NewMsgTx(1)
	tx.AddTxOut(NewTxOut(5000, []byte{0xAB}))
	require.Len(t, tx.TxOut, 1)
	require.Equal(t, int64(5000), tx.TxOut[0].Value)
}
