// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package pool implements the Pool Ledger: the process-wide singleton that
// tracks global emission state and is the root of the index propagation
// Pool -> Vault -> User.
package pool

import "math/big"

// Pool is the singleton emission ledger. All amounts are non-negative and
// all indexes are cumulative reward-per-alloc-point, scaled by
// params.Precision.
type Pool struct {
	StartTime int64
	EndTime   int64

	EmissionPerSecond *big.Int
	TotalAllocPoints  *big.Int

	Index                *big.Int
	LastUpdateTimestamp  int64

	TotalRewards   *big.Int
	RewardsEmitted *big.Int

	Frozen bool
	Paused bool
}

// New creates the pool singleton. The caller is expected to have already
// asserted totalRewards <= custodian.TotalVaultRewards().
func New(startTime, endTime int64, emissionPerSecond, totalRewards *big.Int) *Pool {
	return &Pool{
		StartTime:           startTime,
		EndTime:              endTime,
		EmissionPerSecond:    new(big.Int).Set(emissionPerSecond),
		TotalAllocPoints:     new(big.Int),
		Index:                new(big.Int),
		LastUpdateTimestamp:  startTime,
		TotalRewards:         new(big.Int).Set(totalRewards),
		RewardsEmitted:       new(big.Int),
	}
}

// Clone returns an independent copy, so operations can mutate a working
// copy and only write it back once every check has passed.
func (p *Pool) Clone() *Pool {
	c := *p
	c.EmissionPerSecond = new(big.Int).Set(p.EmissionPerSecond)
	c.TotalAllocPoints = new(big.Int).Set(p.TotalAllocPoints)
	c.Index = new(big.Int).Set(p.Index)
	c.TotalRewards = new(big.Int).Set(p.TotalRewards)
	c.RewardsEmitted = new(big.Int).Set(p.RewardsEmitted)
	return &c
}
