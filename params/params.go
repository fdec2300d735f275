// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package params holds the bit-exact constants the engine is specified
// against. They are deliberately package vars, not a config file or flag
// set: the engine has no deployment/configuration surface of its own, and
// changing these changes the accounting semantics, not a tunable.
package params

import "math/big"

// Precision is the fixed-point scale (P in the spec) used for factors,
// indexes and the reward math derived from them.
var Precision = big.NewInt(1e18)

const (
	// MaxBoostsPerVault bounds how many boost assets a single vault may
	// ever have staked against it.
	MaxBoostsPerVault = 2

	// BoostMultiplierBps is the multiplier increment (in units of 1/100)
	// a vault gains for every boost asset staked against it.
	BoostMultiplierBps = 250
)

// DurationClass enumerates the three staking windows a vault may be
// created with.
type DurationClass int

const (
	Duration30Days DurationClass = iota
	Duration60Days
	Duration90Days
)

const secondsPerDay = 24 * 60 * 60

// Duration returns the vault lifetime, in seconds, for a duration class.
func (d DurationClass) Duration() (int64, bool) {
	switch d {
	case Duration30Days:
		return 30 * secondsPerDay, true
	case Duration60Days:
		return 60 * secondsPerDay, true
	case Duration90Days:
		return 90 * secondsPerDay, true
	default:
		return 0, false
	}
}

// Multiplier returns the base multiplier (in units of 1/100) a vault of
// this duration class is created with.
func (d DurationClass) Multiplier() (int64, bool) {
	switch d {
	case Duration30Days:
		return 100, true
	case Duration60Days:
		return 125, true
	case Duration90Days:
		return 150, true
	default:
		return 0, false
	}
}

// String renders the duration class the way it is logged and labeled on
// metrics, e.g. "30d".
func (d DurationClass) String() string {
	switch d {
	case Duration30Days:
		return "30d"
	case Duration60Days:
		return "60d"
	case Duration90Days:
		return "90d"
	default:
		return "unknown"
	}
}

var (
	// BaseLimit is the principal_limit a newly created vault starts with.
	BaseLimit = new(big.Int).Mul(big.NewInt(200_000), big.NewInt(1e18))

	// GlobalPrincipalCap is the hard ceiling every vault's principal_limit
	// is clamped under.
	GlobalPrincipalCap = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18))
)

// MulDivP returns a * b / P, truncated toward zero. The vault ledger's
// creator-fee and boost-fee computations go through this helper; its
// per-token and per-boost updates divide directly.
func MulDivP(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(a, b)
	return product.Quo(product, Precision)
}

// MinBig returns the lesser of a and b, leaving both arguments untouched.
func MinBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}
