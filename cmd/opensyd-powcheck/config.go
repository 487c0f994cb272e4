// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "opensyd-powcheck.log"
	defaultLogLevel    = "info"
	defaultMaxContexts = 8
)

// config defines the configuration options for opensyd-powcheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	HeaderHex   string `short:"H" long:"header" description:"Hex-encoded 80-byte block header to verify" required:"true"`
	Height      int32  `short:"h" long:"height" description:"Height of the block being verified" required:"true"`
	Network     string `short:"n" long:"network" description:"Network to use {mainnet, regtest, simnet}" default:"mainnet"`
	Priority    string `short:"p" long:"priority" description:"Pool acquisition priority {normal, high, consensus}" default:"normal"`
	MaxContexts int    `long:"maxcontexts" description:"Maximum simultaneous RandomX contexts" default:"8"`
	LogLevel    string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	LogDir      string `long:"logdir" description:"Directory to log output to"`
}

// loadConfig parses the command line options and returns a fully
// populated config along with any remaining command line arguments.
func loadConfig() (*config, []string, error) {
	cfg := config{
		Network:     "mainnet",
		Priority:    "normal",
		MaxContexts: defaultMaxContexts,
		LogLevel:    defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(defaultHomeDir(), "logs")
	}

	return &cfg, remainingArgs, nil
}

func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".opensyd-powcheck")
}

func defaultLogFile(cfg *config) string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}

func parsePriorityFlag(s string) (string, error) {
	switch s {
	case "normal", "high", "consensus":
		return s, nil
	default:
		return "", fmt.Errorf("unrecognized priority %q", s)
	}
}
