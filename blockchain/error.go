// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

const (
	// ErrDifficultyTooLow indicates the difficulty for a given block is
	// below the minimum required difficulty.
	ErrDifficultyTooLow ErrorCode = iota

	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value either because it doesn't match the calculated
	// value based on difficulty retarget rules or it is out of the valid
	// range.
	ErrUnexpectedDifficulty

	// ErrHighHash indicates the block does not hash to a value which is
	// lower than the required target difficulty.
	ErrHighHash

	// ErrMissingInputs indicates a transaction references an outpoint
	// that cannot be found in the view supplied to CheckTxInputs, either
	// because it was never created or has already been spent.
	ErrMissingInputs

	// ErrPrematureSpend indicates a transaction attempts to spend a
	// coinbase output before it has reached the required maturity.
	ErrPrematureSpend

	// ErrBadFee indicates the sum of a transaction's outputs exceeds the
	// sum of its inputs.
	ErrBadFee

	// ErrInputValueOutOfRange indicates a single input's value, or the
	// running total of input values seen so far, exceeds MaxSatoshi.
	ErrInputValueOutOfRange

	// ErrBadConfig indicates a component was constructed, or
	// reconfigured at runtime, with a parameter outside its accepted
	// range.
	ErrBadConfig

	// ErrResourceExhausted indicates a bounded resource — most notably
	// the memory-hard context pool — could not satisfy a request within
	// the budget available to it.
	ErrResourceExhausted

	numErrorCodes
)

// errorCodeStrings is a map of ErrorCode values back to their constant
// names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrDifficultyTooLow:     "ErrDifficultyTooLow",
	ErrUnexpectedDifficulty: "ErrUnexpectedDifficulty",
	ErrHighHash:             "ErrHighHash",
	ErrMissingInputs:        "ErrMissingInputs",
	ErrPrematureSpend:       "ErrPrematureSpend",
	ErrBadFee:               "ErrBadFee",
	ErrInputValueOutOfRange: "ErrInputValueOutOfRange",
	ErrBadConfig:            "ErrBadConfig",
	ErrResourceExhausted:    "ErrResourceExhausted",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that
// processing of a block or transaction failed due to one of the many
// validation rules.  The caller can use type assertions to determine if a
// failure was specifically due to a rule violation and access the
// ErrorCode field to ascertain the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a RuleError with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	rerr, ok := err.(RuleError)
	return ok && rerr.ErrorCode == c
}
