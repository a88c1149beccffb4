// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package selector picks the unspent transaction outputs a wallet spends to
// fund a payment, and accounts for the resulting fee, change and waste.
//
// Selection runs a fixed chain of strategies over the eligible pool and
// returns the first funded result: an exhaustive branch and bound search for
// a changeless match, a single random draw when a randomness source is
// configured, and a largest-first sweep as the final word on whether the
// pool can fund the request at all.
package selector

import (
	"errors"
	"fmt"

	"github.com/btcsuite/coinselect/txfees"
	"github.com/btcsuite/coinselect/utxo"
	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// DefaultMaxSearchNodes is the number of search nodes the branch and bound
// strategy may visit before it gives up on improving its candidate. The
// budget is counted in nodes rather than wall-clock time so a search behaves
// identically on any machine.
const DefaultMaxSearchNodes = 100_000

// Config bundles the tunables of a Selector.
type Config struct {
	// MaxSearchNodes caps the nodes the exhaustive search visits per
	// selection. Zero selects DefaultMaxSearchNodes.
	MaxSearchNodes int

	// Shuffle supplies the randomness used by the single random draw
	// strategy. When nil, that strategy is skipped and selection is fully
	// deterministic.
	Shuffle Shuffler
}

// Selector picks UTXO subsets that fund payment requests. It holds no
// per-call state, so a single Selector may serve concurrent callers, aside
// from any locking the injected Shuffler itself requires.
type Selector struct {
	cfg Config
}

// New returns a Selector with the given configuration, normalizing unset
// values to their defaults.
func New(cfg Config) *Selector {
	if cfg.MaxSearchNodes <= 0 {
		cfg.MaxSearchNodes = DefaultMaxSearchNodes
	}

	return &Selector{cfg: cfg}
}

// Select funds the request from the given pool using a default Selector with
// no randomness source, so results are deterministic for identical inputs.
// Callers that want the random draw fallback or a custom search budget
// construct their own Selector via New.
func Select(pool []utxo.UTXO, req *Request) (*Result, error) {
	return New(Config{}).Select(pool, req)
}

// Select picks a subset of the pool that covers the request's target amount
// plus the fee of spending the subset, returning the accounting for the
// cheapest selection found. The pool is never mutated and the result shares
// no memory with it.
//
// The returned error wraps ErrInvalidRequest when the request is malformed
// and ErrInsufficientFunds when the eligible pool cannot fund the target
// under any strategy.
func (s *Selector) Select(pool []utxo.UTXO, req *Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Dust can never pay for its own spending, so it is dropped before
	// any strategy runs. This also evicts zero and negative amounts.
	eligible := fn.Filter(pool, func(u utxo.UTXO) bool {
		return !txfees.IsDust(u.Amount, req.FeeRate)
	})

	log.Debugf("Selecting coins for target %v at %v: pool holds %d "+
		"utxos, %d eligible", req.TargetAmount, req.FeeRate,
		len(pool), len(eligible))

	// When confirmed outputs are preferred, try to fund the request from
	// them alone, and only fall back to the whole eligible pool when they
	// are insufficient.
	if req.PreferConfirmed {
		confirmed := fn.Filter(eligible, func(u utxo.UTXO) bool {
			return u.Confirmed()
		})

		result, err := s.selectFrom(confirmed, req)
		switch {
		case err == nil:
			return result, nil

		case !errors.Is(err, ErrInsufficientFunds):
			return nil, err
		}

		log.Debugf("Confirmed outputs cannot fund target %v, "+
			"retrying with unconfirmed outputs included",
			req.TargetAmount)
	}

	return s.selectFrom(eligible, req)
}

// selectFrom runs the strategy chain over an eligible pool and returns the
// first funded selection.
func (s *Selector) selectFrom(pool []utxo.UTXO,
	req *Request) (*Result, error) {

	// No strategy can beat simple arithmetic: a pool whose total cannot
	// cover the target plus the smallest conceivable fee is insufficient,
	// and detecting that here costs no search budget.
	available := utxo.TotalBalance(pool)
	floor := req.TargetAmount +
		txfees.EstimateFee(1, changeOutputCount, req.FeeRate)
	if available < floor {
		return nil, fmt.Errorf("%w: need %v, have %v eligible",
			ErrInsufficientFunds, floor, available)
	}

	for _, strat := range s.strategies() {
		picked := strat.run(pool, req)
		if picked.IsNone() {
			continue
		}

		result := buildResult(picked.UnwrapOr(nil), req, strat.algo)

		log.Debugf("Selected %d utxos via %v: total=%v fee=%v "+
			"change=%v waste=%v", len(result.UTXOs),
			result.Algorithm, result.TotalInput, result.Fee,
			result.Change, result.Waste)
		log.Tracef("Selection result: %v",
			newLogClosure(func() string {
				return spew.Sdump(result)
			}))

		return result, nil
	}

	// The largest-first sweep maximizes the reachable sum for every
	// input count, so the whole chain coming up empty proves the pool
	// cannot fund the request within the input cap.
	return nil, fmt.Errorf("%w: need %v, have %v eligible",
		ErrInsufficientFunds, floor, available)
}

// strategies returns the strategy chain in fixed execution order.
func (s *Selector) strategies() []strategy {
	chain := []strategy{{
		algo: BranchAndBound,
		run: func(pool []utxo.UTXO,
			req *Request) fn.Option[[]utxo.UTXO] {

			return branchAndBound(pool, req, s.cfg.MaxSearchNodes)
		},
	}}

	// Without a randomness source the random draw is skipped and the
	// chain stays deterministic.
	if s.cfg.Shuffle != nil {
		chain = append(chain, strategy{
			algo: SingleRandomDraw,
			run: func(pool []utxo.UTXO,
				req *Request) fn.Option[[]utxo.UTXO] {

				return singleRandomDraw(
					pool, req, s.cfg.Shuffle,
				)
			},
		})
	}

	return append(chain, strategy{
		algo: LargestFirst,
		run:  largestFirst,
	})
}
