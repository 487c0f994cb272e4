// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxoview

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opensyria/opensy/blockchain"
	"github.com/opensyria/opensy/btcutil"
	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/wire"
)

func openTestView(t *testing.T) *LevelDBView {
	dir := t.TempDir()
	v, err := Open(filepath.Join(dir, "utxo"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func testOutPoint(b byte) wire.OutPoint {
	return wire.OutPoint{Hash: chainhash.DoubleHashH([]byte{b}), Index: 0}
}

func TestLevelDBViewPutLookupRoundTrip(t *testing.T) {
	v := openTestView(t)

	op := testOutPoint(1)
	coin := blockchain.Coin{Amount: btcutil.Amount(5000), IsCoinBase: true, BlockHeight: 42}

	require.NoError(t, v.PutEntry(op, coin))

	got, ok := v.LookupEntry(op)
	require.True(t, ok)
	require.Equal(t, coin, got)
}

func TestLevelDBViewLookupMissingEntry(t *testing.T) {
	v := openTestView(t)

	_, ok := v.LookupEntry(testOutPoint(2))
	require.False(t, ok)
}

func TestLevelDBViewSpendEntryRemovesCoin(t *testing.T) {
	v := openTestView(t)

	op := testOutPoint(3)
	require.NoError(t, v.PutEntry(op, blockchain.Coin{Amount: 1}))

	require.NoError(t, v.SpendEntry(op))

	_, ok := v.LookupEntry(op)
	require.False(t, ok)
}

func TestLevelDBViewPutOverwritesExistingEntry(t *testing.T) {
	v := openTestView(t)

	op := testOutPoint(4)
	require.NoError(t, v.PutEntry(op, blockchain.Coin{Amount: 100}))
	require.NoError(t, v.PutEntry(op, blockchain.Coin{Amount: 200}))

	got, ok := v.LookupEntry(op)
	require.True(t, ok)
	require.EqualValues(t, 200, got.Amount)
}

func TestLevelDBViewDistinctIndicesAreIndependentCoins(t *testing.T) {
	v := openTestView(t)

	hash := chainhash.DoubleHashH([]byte("shared"))
	op0 := wire.OutPoint{Hash: hash, Index: 0}
	op1 := wire.OutPoint{Hash: hash, Index: 1}

	require.NoError(t, v.PutEntry(op0, blockchain.Coin{Amount: 1}))
	require.NoError(t, v.PutEntry(op1, blockchain.Coin{Amount: 2}))

	got0, ok := v.LookupEntry(op0)
	require.True(t, ok)
	got1, ok := v.LookupEntry(op1)
	require.True(t, ok)
	require.NotEqual(t, got0.Amount, got1.Amount)
}
