// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/pkg/btcunit"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Request bundles all the parameters needed to fund a payment from a UTXO
// pool into a single, coherent structure. The zero value is not usable: a
// request must carry a positive target amount and a positive fee rate.
type Request struct {
	// TargetAmount is the payment amount to fund, in satoshis. It
	// excludes the fee, which is computed on top of it. This field is
	// required and must be positive.
	TargetAmount btcutil.Amount

	// FeeRate is the fee rate the resulting transaction should pay,
	// expressed in whole satoshis per virtual byte. This field is
	// required and must be positive.
	FeeRate btcunit.SatPerVByte

	// CostOfChange is the amortized cost, in satoshis, of creating a
	// change output now and spending it later. It widens the window the
	// exhaustive search accepts around an exact match and is charged to
	// the waste score of any selection that produces change.
	CostOfChange btcutil.Amount

	// MinChange is the smallest change output worth creating, in
	// satoshis. A would-be change amount below this threshold is folded
	// into the fee instead.
	MinChange btcutil.Amount

	// MaxInputs optionally caps the number of inputs a selection may
	// spend. None means the whole pool may be drawn from.
	MaxInputs fn.Option[int]

	// PreferConfirmed restricts the search to confirmed outputs first,
	// falling back to the whole eligible pool only when the confirmed
	// subset alone cannot fund the request.
	PreferConfirmed bool
}

// validateRequest performs a series of checks on a Request to ensure it is
// well-formed. It is called before any selection logic runs, so a malformed
// request never burns search budget.
//
// The following checks are performed:
//   - The request must be non-nil.
//   - The target amount must be positive.
//   - The fee rate must be positive.
//   - The cost of change and min change must not be negative.
//   - An input cap, when set, must allow at least one input.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}

	// The payment amount must be positive.
	if req.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount of %v must be positive",
			ErrInvalidRequest, req.TargetAmount)
	}

	// The fee rate must be positive. A non-positive rate would let the
	// dust classifier admit outputs that cannot pay for themselves.
	if req.FeeRate.LessThanOrEqual(btcunit.ZeroSatPerVByte) {
		return fmt.Errorf("%w: fee rate of %v must be positive",
			ErrInvalidRequest, req.FeeRate)
	}

	// Negative cost parameters would make the waste score meaningless.
	if req.CostOfChange < 0 {
		return fmt.Errorf("%w: cost of change must not be negative, "+
			"got %v", ErrInvalidRequest, req.CostOfChange)
	}
	if req.MinChange < 0 {
		return fmt.Errorf("%w: min change must not be negative, "+
			"got %v", ErrInvalidRequest, req.MinChange)
	}

	// An input cap that admits no inputs can never fund anything.
	if req.MaxInputs.IsSome() {
		maxInputs := req.MaxInputs.UnwrapOr(0)
		if maxInputs < 1 {
			return fmt.Errorf("%w: max inputs of %d must allow "+
				"at least one input", ErrInvalidRequest,
				maxInputs)
		}
	}

	return nil
}
