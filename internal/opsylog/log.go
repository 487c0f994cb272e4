// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package opsylog wires up the per-subsystem loggers shared across the
// module's commands, following the same btclog-backed pattern used
// throughout the btcsuite ecosystem: a single rotating file-and-stdout
// backend, with one named, independently levelled Logger handed out per
// subsystem.
package opsylog

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/opensyria/opensy/blockchain"
)

var (
	backendLog = btclog.NewBackend(logWriter{})
	logRotator *rotator.Rotator

	// Subsystem loggers.  POOL covers MHPContextPool acquisitions and
	// evictions, POW covers algorithm selection and difficulty
	// decisions, TXVL covers CheckTxInputs.
	poolLog = backendLog.Logger("POOL")
	powLog  = backendLog.Logger("POW")
	txvlLog = backendLog.Logger("TXVL")
)

// subsystemLoggers maps each subsystem tag to its Logger, letting
// InitLogRotator and SetLogLevels address them by name the way btcd's own
// subsystemLoggers map does.
var subsystemLoggers = map[string]btclog.Logger{
	"POOL": poolLog,
	"POW":  powLog,
	"TXVL": txvlLog,
}

func init() {
	blockchain.UseLogger(powLog)
	blockchain.UsePoolLogger(poolLog)
}

// logWriter implements an io.Writer that outputs to both standard output
// and the write-end of a logging rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// InitLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory.  It must be called
// before the package's loggers are used.
func InitLogRotator(logFile string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.  Uninitialized subsystems are rejected.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for every registered subsystem.  Use
// SetLogLevel to set the log level for a specific subsystem.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// PoolLogger, PowLogger, and TxvlLogger expose the package's per-subsystem
// loggers to callers that want to log alongside this module without
// importing the lower-level btclog types directly.
func PoolLogger() btclog.Logger { return poolLog }
func PowLogger() btclog.Logger  { return powLog }
func TxvlLogger() btclog.Logger { return txvlLog }
