// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Balances is an aggregate snapshot of a UTXO set, broken down by
// confirmation state.
type Balances struct {
	// Total is the sum of every output in the set.
	Total btcutil.Amount

	// Confirmed is the sum of the outputs carrying at least the requested
	// number of confirmations.
	Confirmed btcutil.Amount

	// Unconfirmed is the sum of the outputs whose funding transaction has
	// not confirmed yet.
	Unconfirmed btcutil.Amount
}

// TotalBalance returns the sum of every output amount in the set, regardless
// of confirmation state.
func TotalBalance(utxos []UTXO) btcutil.Amount {
	vals := fn.Map(utxos, func(u UTXO) int64 {
		return int64(u.Amount)
	})

	return btcutil.Amount(fn.Sum(vals))
}

// ConfirmedBalance returns the sum of the outputs carrying at least minConf
// confirmations. A minConf of zero counts the whole set.
func ConfirmedBalance(utxos []UTXO, minConf uint32) btcutil.Amount {
	confirmed := fn.Filter(utxos, func(u UTXO) bool {
		return u.HasMinConfs(minConf)
	})

	return TotalBalance(confirmed)
}

// UnconfirmedBalance returns the sum of the outputs that have not confirmed
// yet.
func UnconfirmedBalance(utxos []UTXO) btcutil.Amount {
	unconfirmed := fn.Filter(utxos, func(u UTXO) bool {
		return !u.Confirmed()
	})

	return TotalBalance(unconfirmed)
}

// CalculateBalances returns the total, confirmed and unconfirmed balances of
// the set in one snapshot. minConf applies to the confirmed figure only.
func CalculateBalances(utxos []UTXO, minConf uint32) Balances {
	return Balances{
		Total:       TotalBalance(utxos),
		Confirmed:   ConfirmedBalance(utxos, minConf),
		Unconfirmed: UnconfirmedBalance(utxos),
	}
}
