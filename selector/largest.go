// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"sort"

	"github.com/btcsuite/coinselect/utxo"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// largestFirst funds the request by accumulating the pool in descending
// amount order. For any input count the descending prefix maximizes the
// achievable sum, so when this strategy fails under the input cap, no other
// subset of the pool can fund the request either.
func largestFirst(pool []utxo.UTXO, req *Request) fn.Option[[]utxo.UTXO] {
	return accumulate(sortedByAmountDesc(pool), req)
}

// sortedByAmountDesc returns a copy of the pool in descending amount order.
// The sort is stable, so outputs of equal amount keep their caller-provided
// order and repeated calls stay deterministic.
func sortedByAmountDesc(pool []utxo.UTXO) []utxo.UTXO {
	sorted := make([]utxo.UTXO, len(pool))
	copy(sorted, pool)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	return sorted
}
