// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/opensyria/opensy/chaincfg/chainhash"
)

// BlockHeaderLen is the number of bytes in the fixed, on-wire serialization
// of a BlockHeader: 4 (version) + 32 (prev block) + 32 (merkle root) + 4
// (timestamp) + 4 (bits) + 4 (nonce).
const BlockHeaderLen = 80

// BlockHeader defines information about a block.  Its fixed 80-byte
// layout is shared across all three proof-of-work algorithms: only the
// digest used to check Bits against the header's byte content changes
// between algorithms, never the header's shape.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block, encoded in compact form.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identity hash: the double-SHA256 of the
// serialized header.  This is distinct from the proof-of-work digest used
// to check Bits, which depends on the algorithm active at the block's
// height; the identity hash is always SHA256d so that block references
// (PrevBlock links, merkle paths, peer inventory) remain stable across a
// proof-of-work algorithm fork boundary.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Bytes returns the 80-byte serialized form of the header, the exact input
// to both BlockHash and every PoW digest function.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return buf.Bytes()
}

// Serialize encodes h to w in the standard header format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Deserialize decodes r in the standard header format into h.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

func writeBlockHeader(w io.Writer, h *BlockHeader) error {
	var buf [BlockHeaderLen]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], uint32(h.Timestamp.Unix()))
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	_, err := w.Write(buf[:])
	return err
}

func readBlockHeader(r io.Reader, h *BlockHeader) error {
	var buf [BlockHeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	h.Version = int32(binary.LittleEndian.Uint32(buf[0:4]))
	copy(h.PrevBlock[:], buf[4:36])
	copy(h.MerkleRoot[:], buf[36:68])
	h.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(buf[68:72])), 0)
	h.Bits = binary.LittleEndian.Uint32(buf[72:76])
	h.Nonce = binary.LittleEndian.Uint32(buf[76:80])
	return nil
}

// NewBlockHeader returns a new BlockHeader using the provided previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate
// the block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash, bits uint32, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// String implements fmt.Stringer, printing a brief single-line summary of
// the header useful in log messages.
func (h *BlockHeader) String() string {
	hash := h.BlockHash()
	return fmt.Sprintf("BlockHeader{hash=%s prev=%s bits=%08x nonce=%d}",
		hash.String(), h.PrevBlock.String(), h.Bits, h.Nonce)
}
