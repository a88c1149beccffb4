// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"github.com/btcsuite/coinselect/utxo"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Shuffler is the source of randomness consumed by the single random draw
// strategy. *math/rand.Rand satisfies it directly, so tests can inject a
// fixed seed and replay a selection.
type Shuffler interface {
	// Shuffle pseudo-randomizes the order of n elements through the swap
	// callback.
	Shuffle(n int, swap func(i, j int))
}

// ShuffleFunc adapts a plain shuffle function, such as the global
// rand.Shuffle, to the Shuffler interface.
type ShuffleFunc func(n int, swap func(i, j int))

// Shuffle calls the wrapped function.
func (f ShuffleFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// singleRandomDraw funds the request by accumulating a uniformly shuffled
// copy of the pool. Drawing at random prevents the creation of ever smaller
// utxos over time and avoids the fingerprint a deterministic order leaves on
// chain.
func singleRandomDraw(pool []utxo.UTXO, req *Request,
	shuffle Shuffler) fn.Option[[]utxo.UTXO] {

	shuffled := make([]utxo.UTXO, len(pool))
	copy(shuffled, pool)

	shuffle.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return accumulate(shuffled, req)
}
