// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/mocaverse/stakingpool/params"
)

// AdvanceIndex computes the next pool index, the effective timestamp the
// advancement happened at, and the reward amount emitted over the interval.
// It is a pure function and the only place in the engine where a reward
// amount is computed from elapsed time. Together with RewardsFromIndex
// below it forms the index arithmetic; the vault ledger's fee split and
// per-token and per-boost updates also use truncating integer division.
//
// Division truncates toward zero, matching Go's native integer division
// for non-negative operands; this truncation is the canonical rounding
// policy and must not be "improved" to round-to-nearest.
func AdvanceIndex(
	currentIndex *big.Int,
	eps *big.Int,
	lastTS int64,
	totalAlloc *big.Int,
	now int64,
	endTime int64,
) (nextIndex *big.Int, effectiveTS int64, emitted *big.Int) {
	if eps.Sign() == 0 || totalAlloc.Sign() == 0 || lastTS >= now || lastTS >= endTime {
		return new(big.Int).Set(currentIndex), lastTS, new(big.Int)
	}

	effectiveTS = now
	if endTime < now {
		effectiveTS = endTime
	}

	deltaT := big.NewInt(effectiveTS - lastTS)
	emitted = new(big.Int).Mul(eps, deltaT)

	scaled := new(big.Int).Mul(emitted, params.Precision)
	delta := new(big.Int).Quo(scaled, totalAlloc)

	nextIndex = new(big.Int).Add(currentIndex, delta)
	return nextIndex, effectiveTS, emitted
}

// RewardsFromIndex returns balance * (curIndex - priorIndex) / P, truncated
// toward zero.
func RewardsFromIndex(balance, curIndex, priorIndex *big.Int) *big.Int {
	diff := new(big.Int).Sub(curIndex, priorIndex)
	if diff.Sign() == 0 || balance.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(balance, diff)
	return new(big.Int).Quo(product, params.Precision)
}
