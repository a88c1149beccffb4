// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txfees

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/pkg/btcunit"
)

// InputSpendCost returns the fee required to spend a single input at the
// given fee rate.
func InputSpendCost(rate btcunit.SatPerVByte) btcutil.Amount {
	return rate.FeeForVSize(InputVSize)
}

// IsDust reports whether an output is uneconomic to spend at the given fee
// rate, i.e. whether the fee to add it as an input exceeds the value it
// contributes. An output worth exactly its spend cost is not dust.
// Non-positive amounts are always dust.
//
// Dust here is relative to the current fee environment rather than a fixed
// relay limit, matching how a selector must value coins it is about to spend.
func IsDust(amount btcutil.Amount, rate btcunit.SatPerVByte) bool {
	return amount <= 0 || amount < InputSpendCost(rate)
}
