// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import "errors"

var (
	// ErrInsufficientFunds is returned when the eligible UTXO set cannot
	// cover the target amount plus the fee required to spend it, under
	// every available strategy.
	ErrInsufficientFunds = errors.New("insufficient funds available to " +
		"construct transaction")

	// ErrInvalidRequest is returned when a selection request fails
	// validation before any strategy is attempted.
	ErrInvalidRequest = errors.New("invalid selection request")
)
