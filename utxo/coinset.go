// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/coinset"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Coin wraps a UTXO to satisfy btcd's coinset.Coin interface, so the same
// outputs can be handed to the selectors shipped with btcd.
type Coin struct {
	utxo UTXO
}

// A compile-time check that Coin satisfies the coinset.Coin interface.
var _ coinset.Coin = (*Coin)(nil)

// NewCoin returns a coinset.Coin view of the given output.
func NewCoin(u UTXO) coinset.Coin {
	return &Coin{utxo: u}
}

// Hash returns the hash of the transaction that created the output.
func (c *Coin) Hash() *chainhash.Hash {
	return &c.utxo.OutPoint.Hash
}

// Index returns the output's index within its funding transaction.
func (c *Coin) Index() uint32 {
	return c.utxo.OutPoint.Index
}

// Value returns the output value in satoshis.
func (c *Coin) Value() btcutil.Amount {
	return c.utxo.Amount
}

// PkScript returns nil: output scripts are not modeled here.
func (c *Coin) PkScript() []byte {
	return nil
}

// NumConfs returns the number of confirmations of the funding transaction.
func (c *Coin) NumConfs() int64 {
	return int64(c.utxo.Confirmations)
}

// ValueAge returns the value of the output weighted by its depth in the
// chain, the priority measure used by coinset.MaxValueAgeCoinSelector.
func (c *Coin) ValueAge() int64 {
	return int64(c.utxo.Amount) * int64(c.utxo.Confirmations)
}
