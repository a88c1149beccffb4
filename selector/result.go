// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/coinselect/utxo"
)

// Algorithm identifies the search strategy that produced a selection.
type Algorithm uint8

const (
	// BranchAndBound is the exhaustive search that looks for an input set
	// whose overshoot stays within the cost-of-change window.
	BranchAndBound Algorithm = iota

	// SingleRandomDraw accumulates a uniformly shuffled pool until the
	// target is funded.
	SingleRandomDraw

	// LargestFirst accumulates the pool in descending amount order until
	// the target is funded.
	LargestFirst
)

// String returns a human-readable name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BranchAndBound:
		return "branch_and_bound"

	case SingleRandomDraw:
		return "single_random_draw"

	case LargestFirst:
		return "largest_first"

	default:
		return fmt.Sprintf("unknown<%d>", uint8(a))
	}
}

// Result describes a funded selection. The amount fields always satisfy the
// accounting identity TotalInput = TargetAmount + Fee + Change.
type Result struct {
	// UTXOs are the selected outputs, in selection order.
	UTXOs []utxo.UTXO

	// TotalInput is the sum of the selected output amounts.
	TotalInput btcutil.Amount

	// Fee is the fee the resulting transaction will pay. When a
	// sub-minimum change remainder is folded, the fold is included here.
	Fee btcutil.Amount

	// Change is the value of the change output, or zero when the
	// remainder was folded into the fee.
	Change btcutil.Amount

	// Waste scores how expensive this selection is compared to a minimal
	// single-input selection at the same fee rate. Lower is better.
	Waste btcutil.Amount

	// Algorithm names the strategy that produced the selection.
	Algorithm Algorithm
}

// TxIns returns the selected outputs as wire transaction inputs, in selection
// order, ready to hand to a transaction builder. Signature scripts, witness
// data and sequence numbers are left for the signer to fill in.
func (r *Result) TxIns() []*wire.TxIn {
	txIns := make([]*wire.TxIn, 0, len(r.UTXOs))
	for _, u := range r.UTXOs {
		txIns = append(txIns, wire.NewTxIn(&u.OutPoint, nil, nil))
	}

	return txIns
}

// buildResult derives the full accounting of a funded input set: total,
// change policy, fee and waste score.
func buildResult(selected []utxo.UTXO, req *Request, algo Algorithm) *Result {
	total := utxo.TotalBalance(selected)
	fee, change := changeAndFee(total, len(selected), req)

	return &Result{
		UTXOs:      selected,
		TotalInput: total,
		Fee:        fee,
		Change:     change,
		Waste:      wasteScore(fee, change, req),
		Algorithm:  algo,
	}
}
