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

// branchAndBound searches for the cheapest input set whose overshoot stays
// within the caller's cost-of-change window, preferring changeless matches.
//
// The search walks include/omit decisions over the pool in descending amount
// order, tracking effective values: the amount an input contributes net of
// its own spend cost. Working net of spend cost makes the funding threshold
// a single constant independent of how many inputs a branch holds, which
// keeps both prune rules valid at any depth:
//
//   - a branch whose selected value plus all value still undecided cannot
//     reach the threshold is abandoned;
//   - a branch whose selected value already exceeds the threshold plus the
//     cost-of-change window is abandoned, because effective values are
//     non-negative and descending further only overshoots more.
//
// The decision stack is explicit, so pool size never threatens the goroutine
// stack, and the search visits at most maxNodes nodes so termination does
// not depend on the pool shape. Running out of budget ends the search with
// the best candidate recorded so far; None is returned only when no funded
// candidate was seen at all.
func branchAndBound(pool []utxo.UTXO, req *Request,
	maxNodes int) fn.Option[[]utxo.UTXO] {

	sorted := sortedByAmountDesc(pool)

	spendCost := txfees.InputSpendCost(req.FeeRate)
	effTarget := req.TargetAmount +
		txfees.EstimateFee(0, changeOutputCount, req.FeeRate)

	// Effective values are non-negative because dust never enters the
	// pool.
	eff := make([]btcutil.Amount, len(sorted))

	// available is the total effective value of the outputs no decision
	// has been made on yet.
	var available btcutil.Amount
	for i, u := range sorted {
		eff[i] = u.Amount - spendCost
		available += eff[i]
	}

	maxInputs := req.MaxInputs.UnwrapOr(len(sorted))

	var (
		// selection is the decision stack: selection[i] reports
		// whether sorted[i] is included on the branch currently being
		// explored. Its length is the number of outputs decided on.
		selection []bool

		selectedEff   btcutil.Amount
		selectedCount int

		best      []bool
		bestWaste btcutil.Amount
		bestCount int
	)

	nodes := 0
	for ; nodes < maxNodes; nodes++ {
		backtrack := false

		switch {
		// Even taking every undecided output cannot reach the funding
		// threshold on this branch.
		case selectedEff+available < effTarget:
			backtrack = true

		// The branch has overshot the acceptable window. Deeper nodes
		// only overshoot further.
		case selectedEff > effTarget+req.CostOfChange:
			backtrack = true

		// The branch funds the request. Score it, keep it when it
		// beats the best so far, then backtrack in search of a
		// cheaper candidate: descending from a funded node only adds
		// inputs and fees.
		case selectedEff >= effTarget:
			total := selectedEff +
				btcutil.Amount(selectedCount)*spendCost
			fee, change := changeAndFee(total, selectedCount, req)
			waste := wasteScore(fee, change, req)

			if best == nil || waste < bestWaste ||
				(waste == bestWaste &&
					selectedCount < bestCount) {

				best = append(best[:0], selection...)
				bestWaste = waste
				bestCount = selectedCount
			}

			backtrack = true

		// The input cap is spent and the branch is still short.
		case selectedCount == maxInputs:
			backtrack = true
		}

		if backtrack {
			// Unwind omit decisions, then flip the deepest
			// include into an omit and explore that subtree.
			for len(selection) > 0 &&
				!selection[len(selection)-1] {

				selection = selection[:len(selection)-1]
				available += eff[len(selection)]
			}

			// The whole tree has been explored.
			if len(selection) == 0 {
				break
			}

			last := len(selection) - 1
			selection[last] = false
			selectedEff -= eff[last]
			selectedCount--

			continue
		}

		// Descend by deciding on the next output. Including an output
		// whose effective value equals one just omitted would
		// re-explore an equivalent subtree, so it is omitted outright.
		next := len(selection)
		available -= eff[next]

		if next > 0 && !selection[next-1] && eff[next] == eff[next-1] {
			selection = append(selection, false)
		} else {
			selection = append(selection, true)
			selectedEff += eff[next]
			selectedCount++
		}
	}

	if best == nil {
		log.Debugf("Branch and bound found no candidate after %d "+
			"nodes (budget %d)", nodes, maxNodes)

		return fn.None[[]utxo.UTXO]()
	}

	log.Tracef("Branch and bound candidate: %d inputs, waste %v, %d "+
		"nodes visited", bestCount, bestWaste, nodes)

	selected := make([]utxo.UTXO, 0, bestCount)
	for i, include := range best {
		if include {
			selected = append(selected, sorted[i])
		}
	}

	return fn.Some(selected)
}
