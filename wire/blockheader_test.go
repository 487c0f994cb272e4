// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opensyria/opensy/chaincfg/chainhash"
)

func sampleHeader() *BlockHeader {
	prev := chainhash.DoubleHashH([]byte("prev"))
	merkle := chainhash.DoubleHashH([]byte("merkle"))
	return &BlockHeader{
		Version:    1,
		PrevBlock:  prev,
		MerkleRoot: merkle,
		Timestamp:  time.Unix(1700000000, 0),
		Bits:       0x1d00ffff,
		Nonce:      12345,
	}
}

func TestBlockHeaderSerializeDeserializeRoundTrip(t *testing.T) {
	h := sampleHeader()

	var buf bytes.Buffer
	require.NoError(t, h.Serialize(&buf))
	require.Equal(t, BlockHeaderLen, buf.Len())

	var got BlockHeader
	require.NoError(t, got.Deserialize(bytes.NewReader(buf.Bytes())))

	require.Equal(t, h.Version, got.Version)
	require.Equal(t, h.PrevBlock, got.PrevBlock)
	require.Equal(t, h.MerkleRoot, got.MerkleRoot)
	require.Equal(t, h.Timestamp.Unix(), got.Timestamp.Unix())
	require.Equal(t, h.Bits, got.Bits)
	require.Equal(t, h.Nonce, got.Nonce)
}

func TestBlockHeaderBytesLength(t *testing.T) {
	h := sampleHeader()
	require.Len(t, h.Bytes(), BlockHeaderLen)
}

func TestBlockHeaderBlockHashDeterministic(t *testing.T) {
	h := sampleHeader()
	require.Equal(t, h.BlockHash(), h.BlockHash())
}

func TestBlockHeaderBlockHashChangesWithNonce(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Nonce++
	require.NotEqual(t, h1.BlockHash(), h2.BlockHash())
}

func TestNewBlockHeaderDefaultsFields(t *testing.T) {
	prev := chainhash.DoubleHashH([]byte("a"))
	merkle := chainhash.DoubleHashH([]byte("b"))
	h := NewBlockHeader(1, &prev, &merkle, 0x1d00ffff, 7)

	require.Equal(t, prev, h.PrevBlock)
	require.Equal(t, merkle, h.MerkleRoot)
	require.Equal(t, uint32(7), h.Nonce)
}
