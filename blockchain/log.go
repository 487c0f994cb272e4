// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/btcsuite/btclog"

// log and poolLog are initialized with no output filters.  This means the
// package will not perform any logging by default until the caller
// requests it.  They are separate so that a caller can route algorithm and
// difficulty decisions (log) separately from RandomX context pool activity
// (poolLog), matching the POW/POOL subsystem split used elsewhere in this
// module.
var (
	log     = btclog.Disabled
	poolLog = btclog.Disabled
)

// DisableLog disables all library log output.  Logging output is disabled
// by default until UseLogger and UsePoolLogger are called.
func DisableLog() {
	log = btclog.Disabled
	poolLog = btclog.Disabled
}

// UseLogger uses a specified Logger to output algorithm-selection and
// difficulty-retarget logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// UsePoolLogger uses a specified Logger to output RandomX context pool
// logging info.
func UsePoolLogger(logger btclog.Logger) {
	poolLog = logger
}
