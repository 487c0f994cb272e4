// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command opensyd-powcheck verifies a single block header's proof of work
// against the consensus rules for a given network and height.  It exists
// mainly as an operational tool and as the simplest possible exerciser of
// the blockchain package's PowVerifier, AlgorithmSelector, and
// MHPContextPool end to end.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/opensyria/opensy/blockchain"
	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/internal/opsylog"
	"github.com/opensyria/opensy/wire"
)

// staticChain is a BlockHashSource that always answers with the null
// hash.  It lets this tool verify headers whose algorithm is SHA256d or
// Argon2id, which need no key-block lookup.  MHP headers are hashed with
// the null hash as their key-block hash at every height, so an MHP header
// mined under a real key block does not verify with this tool.
type staticChain struct{}

func (staticChain) BlockHashByHeight(height int32) (chainhash.Hash, error) {
	return chainhash.Hash{}, nil
}

func realMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if err := opsylog.InitLogRotator(defaultLogFile(cfg)); err != nil {
		return fmt.Errorf("failed to init log rotator: %v", err)
	}
	opsylog.SetLogLevels(cfg.LogLevel)

	priority, err := parsePriorityFlag(cfg.Priority)
	if err != nil {
		return err
	}

	params, err := networkParams(cfg.Network)
	if err != nil {
		return err
	}

	headerBytes, err := hex.DecodeString(cfg.HeaderHex)
	if err != nil {
		return fmt.Errorf("invalid header hex: %v", err)
	}
	if len(headerBytes) != wire.BlockHeaderLen {
		return fmt.Errorf("header must be exactly %d bytes, got %d", wire.BlockHeaderLen, len(headerBytes))
	}

	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(headerBytes)); err != nil {
		return fmt.Errorf("failed to parse header: %v", err)
	}

	services, err := blockchain.InitServices(params)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %v", err)
	}
	defer blockchain.DestroyServices()

	services.Pool.SetMaxContexts(cfg.MaxContexts)

	verifier := blockchain.NewPowVerifier(params, services.Pool, services.Argon2, staticChain{})

	ok, err := verifier.VerifyHeader(&header, cfg.Height, priorityFromFlag(priority))
	if err != nil {
		return fmt.Errorf("verification error: %v", err)
	}

	hash := header.BlockHash()
	algo := params.ActivePowAlgorithm(cfg.Height)
	if ok {
		fmt.Printf("OK: block %s satisfies %s proof of work at height %d\n", hash, algo, cfg.Height)
	} else {
		fmt.Printf("FAIL: block %s does not satisfy %s proof of work at height %d\n", hash, algo, cfg.Height)
		os.Exit(1)
	}
	return nil
}

func priorityFromFlag(p string) blockchain.AcquisitionPriority {
	switch p {
	case "high":
		return blockchain.PriorityHigh
	case "consensus":
		return blockchain.PriorityConsensusCritical
	default:
		return blockchain.PriorityNormal
	}
}

func networkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unrecognized network %q", name)
	}
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
