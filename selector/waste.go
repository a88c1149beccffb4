// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/txfees"
)

// changeOutputCount is the transaction shape assumed while searching: one
// payment output plus one change output.
const changeOutputCount = 2

// changeAndFee applies the change policy to a funded input set and returns
// the resulting fee and change. The set pays the fee of a two-output
// transaction and keeps the remainder as change, unless the remainder falls
// below the caller's change floor, in which case it is folded into the fee
// and the transaction carries the payment output only.
//
// The caller must hand in a funded set, so the remainder is never negative.
func changeAndFee(total btcutil.Amount, inputCount int,
	req *Request) (btcutil.Amount, btcutil.Amount) {

	fee := txfees.EstimateFee(inputCount, changeOutputCount, req.FeeRate)

	change := total - req.TargetAmount - fee
	if change > 0 && change >= req.MinChange {
		return fee, change
	}

	// The remainder is not worth a change output. Absorb it into the fee.
	return total - req.TargetAmount, 0
}

// wasteScore scores a funded selection by the fee it overpays compared to a
// hypothetical single-input selection at the same rate, plus the amortized
// cost of the change output when one is produced. Lower scores mean more
// frugal selections; a changeless single-input exact match scores zero.
func wasteScore(fee, change btcutil.Amount, req *Request) btcutil.Amount {
	baseline := txfees.EstimateFee(1, changeOutputCount, req.FeeRate)

	waste := fee - baseline
	if change > 0 {
		waste += req.CostOfChange
	}

	return waste
}
