// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utxoview provides a reference blockchain.UtxoViewpoint backed
// by a LevelDB key-value store, in the spirit of the full node's own
// ffldb backend: coins are addressed by their outpoint and carry just
// enough metadata (amount, coinbase origin, creation height) for input
// checking, not a full transaction index.
package utxoview

import (
	"encoding/binary"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/opensyria/opensy/blockchain"
	"github.com/opensyria/opensy/btcutil"
	"github.com/opensyria/opensy/wire"
)

// entryLen is the serialized length of a coin entry: 8 bytes for amount,
// 1 byte for the coinbase flag, 4 bytes for the creation height.
const entryLen = 8 + 1 + 4

// LevelDBView is a blockchain.UtxoViewpoint backed by a LevelDB database.
// Unlike a full node's UTXO set, it never itself applies a block; callers
// add and remove coins explicitly via PutEntry and SpendEntry as they
// connect and disconnect blocks, which keeps this package focused purely
// on being a lookup surface for CheckTxInputs.
type LevelDBView struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a LevelDBView at path.
func Open(path string) (*LevelDBView, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDBView{db: db}, nil
}

// Close closes the underlying database.
func (v *LevelDBView) Close() error {
	return v.db.Close()
}

// LookupEntry implements blockchain.UtxoViewpoint.
func (v *LevelDBView) LookupEntry(op wire.OutPoint) (blockchain.Coin, bool) {
	raw, err := v.db.Get(outpointKey(op), nil)
	if err != nil {
		return blockchain.Coin{}, false
	}
	coin, ok := decodeCoin(raw)
	return coin, ok
}

// PutEntry records coin as the unspent output at op, overwriting any
// existing entry.
func (v *LevelDBView) PutEntry(op wire.OutPoint, coin blockchain.Coin) error {
	return v.db.Put(outpointKey(op), encodeCoin(coin), nil)
}

// SpendEntry removes the entry at op, if any.
func (v *LevelDBView) SpendEntry(op wire.OutPoint) error {
	return v.db.Delete(outpointKey(op), nil)
}

func outpointKey(op wire.OutPoint) []byte {
	key := make([]byte, chainhashSize+4)
	copy(key, op.Hash[:])
	binary.LittleEndian.PutUint32(key[chainhashSize:], op.Index)
	return key
}

// chainhashSize mirrors chainhash.HashSize without importing the package
// just for the constant, since outpointKey only needs the numeric value.
const chainhashSize = 32

func encodeCoin(coin blockchain.Coin) []byte {
	buf := make([]byte, entryLen)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(coin.Amount))
	if coin.IsCoinBase {
		buf[8] = 1
	}
	binary.LittleEndian.PutUint32(buf[9:13], uint32(coin.BlockHeight))
	return buf
}

func decodeCoin(raw []byte) (blockchain.Coin, bool) {
	if len(raw) != entryLen {
		return blockchain.Coin{}, false
	}
	return blockchain.Coin{
		Amount:      btcutil.Amount(int64(binary.LittleEndian.Uint64(raw[0:8]))),
		IsCoinBase:  raw[8] == 1,
		BlockHeight: int32(binary.LittleEndian.Uint32(raw[9:13])),
	}, true
}

// ErrNotFound is returned by callers that want to distinguish a genuinely
// missing entry from other LevelDB errors; LookupEntry itself collapses
// every error to a plain "not found" per the UtxoViewpoint contract.
var ErrNotFound = errors.New("utxoview: entry not found")
