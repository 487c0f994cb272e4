// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = ruleError(ErrHighHash, "hash exceeds target")
	require.EqualError(t, err, "hash exceeds target")
}

func TestIsErrorCodeMatchesAndRejects(t *testing.T) {
	err := ruleError(ErrPrematureSpend, "too soon")
	require.True(t, IsErrorCode(err, ErrPrematureSpend))
	require.False(t, IsErrorCode(err, ErrHighHash))
	require.False(t, IsErrorCode(errors.New("plain error"), ErrPrematureSpend))
}

func TestErrorCodeStringKnownAndUnknown(t *testing.T) {
	require.Equal(t, "ErrHighHash", ErrHighHash.String())
	require.Contains(t, numErrorCodes.String(), "Unknown")
}
