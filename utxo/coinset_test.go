// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/coinset"
	"github.com/stretchr/testify/require"
)

// TestCoinAdapter checks the field mapping of the coinset.Coin view.
func TestCoinAdapter(t *testing.T) {
	t.Parallel()

	u := testUTXO(7, 25_000, 12)
	coin := NewCoin(u)

	require.Equal(t, u.OutPoint.Hash, *coin.Hash())
	require.Equal(t, u.OutPoint.Index, coin.Index())
	require.Equal(t, btcutil.Amount(25_000), coin.Value())
	require.Nil(t, coin.PkScript())
	require.Equal(t, int64(12), coin.NumConfs())

	// ValueAge is the output value weighted by chain depth.
	require.Equal(t, int64(25_000*12), coin.ValueAge())

	// An unconfirmed output carries no age.
	require.Zero(t, NewCoin(testUTXO(8, 25_000, 0)).ValueAge())
}

// TestCoinAdapterWithSelector feeds adapted coins through one of btcd's own
// selectors to make sure the view is usable end to end.
func TestCoinAdapterWithSelector(t *testing.T) {
	t.Parallel()

	pool := []UTXO{
		testUTXO(1, 10_000, 4),
		testUTXO(2, 5_000, 2),
		testUTXO(3, 1_000, 50),
	}

	coins := make([]coinset.Coin, 0, len(pool))
	for _, u := range pool {
		coins = append(coins, NewCoin(u))
	}

	selector := coinset.MinNumberCoinSelector{
		MaxInputs:       10,
		MinChangeAmount: 0,
	}

	target := btcutil.Amount(12_000)
	selected, err := selector.CoinSelect(target, coins)
	require.NoError(t, err)

	var total btcutil.Amount
	for _, c := range selected.Coins() {
		total += c.Value()
	}
	require.GreaterOrEqual(t, total, target)
}
