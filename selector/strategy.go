// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/txfees"
	"github.com/btcsuite/coinselect/utxo"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// strategy tags a search pass with the algorithm name it reports in results.
// A pass returns the selected subset, or None when it cannot fund the target
// within its constraints.
type strategy struct {
	algo Algorithm
	run  func(pool []utxo.UTXO, req *Request) fn.Option[[]utxo.UTXO]
}

// funded reports whether an input set of the given size and total funds the
// request: it must cover the target plus the fee of a transaction spending
// the set with a payment and a change output.
func funded(total btcutil.Amount, inputCount int, req *Request) bool {
	fee := txfees.EstimateFee(inputCount, changeOutputCount, req.FeeRate)

	return total >= req.TargetAmount+fee
}

// accumulate walks the pool in order, adding outputs until the running set
// funds the request. It returns None when the input cap or the pool runs out
// first.
//
// Progress is guaranteed because the pool holds no dust: every added output
// contributes at least its own spend cost, so the gap to the funding
// threshold never widens.
func accumulate(pool []utxo.UTXO, req *Request) fn.Option[[]utxo.UTXO] {
	maxInputs := req.MaxInputs.UnwrapOr(len(pool))

	var (
		selected []utxo.UTXO
		total    btcutil.Amount
	)
	for _, u := range pool {
		if len(selected) == maxInputs {
			break
		}

		selected = append(selected, u)
		total += u.Amount

		if funded(total, len(selected), req) {
			return fn.Some(selected)
		}
	}

	return fn.None[[]utxo.UTXO]()
}
