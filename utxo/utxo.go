// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utxo defines the unspent transaction output model shared by the
// balance and coin selection subsystems.
package utxo

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// UTXO describes a single unspent transaction output, identified by the
// outpoint that created it. It is a plain value type: the selection code
// copies it freely and never mutates the caller's slice.
type UTXO struct {
	// OutPoint identifies the transaction hash and output index of this
	// output on chain.
	wire.OutPoint

	// Amount is the value of the output in satoshis.
	Amount btcutil.Amount

	// Confirmations is the number of blocks mined on top of and including
	// the one containing this output. Zero means the funding transaction
	// is still unconfirmed.
	Confirmations uint32

	// Address is the address the output pays to. It is carried opaquely
	// for callers that want script-type inference downstream and is never
	// parsed or validated here.
	Address string
}

// Confirmed reports whether the output has at least one confirmation.
func (u UTXO) Confirmed() bool {
	return u.Confirmations >= 1
}

// HasMinConfs reports whether the output has at least minConf confirmations.
// A minConf of zero admits unconfirmed outputs.
func (u UTXO) HasMinConfs(minConf uint32) bool {
	return u.Confirmations >= minConf
}
