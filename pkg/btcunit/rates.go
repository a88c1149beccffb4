// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcunit provides a set of types for dealing with bitcoin units.
package btcunit

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

var (
	// ZeroSatPerVByte is a fee rate of 0 sat/vb.
	ZeroSatPerVByte = NewSatPerVByte(0)
)

// SatPerVByte represents a fee rate in whole satoshis per virtual byte. The
// rate is stored as an exact integer, so every fee derived from it is the
// product of two integers and no rounding occurs anywhere in this package.
type SatPerVByte struct {
	rate btcutil.Amount
}

// NewSatPerVByte creates a new fee rate in sat/vb.
func NewSatPerVByte(rate btcutil.Amount) SatPerVByte {
	return SatPerVByte{rate: rate}
}

// Val returns the raw fee rate in satoshis per virtual byte.
func (s SatPerVByte) Val() btcutil.Amount {
	return s.rate
}

// FeeForVSize calculates the fee resulting from this fee rate and the given
// virtual size.
func (s SatPerVByte) FeeForVSize(size VByte) btcutil.Amount {
	return s.rate * btcutil.Amount(size)
}

// String returns a human-readable string of the fee rate.
func (s SatPerVByte) String() string {
	return fmt.Sprintf("%d sat/vb", int64(s.rate))
}

// Equal returns true if the fee rate is equal to the other fee rate.
func (s SatPerVByte) Equal(other SatPerVByte) bool {
	return s.rate == other.rate
}

// GreaterThan returns true if the fee rate is greater than the other fee rate.
func (s SatPerVByte) GreaterThan(other SatPerVByte) bool {
	return s.rate > other.rate
}

// LessThan returns true if the fee rate is less than the other fee rate.
func (s SatPerVByte) LessThan(other SatPerVByte) bool {
	return s.rate < other.rate
}

// GreaterThanOrEqual returns true if the fee rate is greater than or equal to
// the other fee rate.
func (s SatPerVByte) GreaterThanOrEqual(other SatPerVByte) bool {
	return s.rate >= other.rate
}

// LessThanOrEqual returns true if the fee rate is less than or equal to the
// other fee rate.
func (s SatPerVByte) LessThanOrEqual(other SatPerVByte) bool {
	return s.rate <= other.rate
}
