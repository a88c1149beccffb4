// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txfees estimates transaction fees under a fixed-weight model and
// classifies outputs as economically spendable or dust.
//
// The model is deliberately script-blind: every input is costed as a signed
// P2WPKH spend and every output as a P2WPKH output, so an estimate is a pure
// linear function of the input and output counts. Callers that need
// script-aware sizing belong one layer up, next to the transaction builder.
package txfees

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/pkg/btcunit"
)

const (
	// BaseTxVSize is the virtual size of an empty transaction: version,
	// segwit marker and flag, input and output counts, and locktime.
	BaseTxVSize btcunit.VByte = 10

	// InputVSize is the virtual size contributed by one signed P2WPKH
	// input, including its share of the witness data.
	InputVSize btcunit.VByte = 68

	// OutputVSize is the virtual size contributed by one P2WPKH output.
	OutputVSize btcunit.VByte = 31
)

// TxVSize returns the virtual size of a transaction with the given number of
// inputs and outputs under the fixed-weight model.
func TxVSize(inputCount, outputCount int) btcunit.VByte {
	return BaseTxVSize +
		btcunit.VByte(inputCount)*InputVSize +
		btcunit.VByte(outputCount)*OutputVSize
}

// EstimateFee returns the fee required to pay for a transaction with the
// given shape at the given fee rate. The result is an exact integer product
// of the model size and the rate, so equal shapes always price equally.
func EstimateFee(inputCount, outputCount int,
	rate btcunit.SatPerVByte) btcutil.Amount {

	return rate.FeeForVSize(TxVSize(inputCount, outputCount))
}
