// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/metrics"
	"github.com/mocaverse/stakingpool/thor"
)

// UpdateEmission implements update_emission: grows the reward envelope
// and/or pushes out the pool's end time, then recomputes emission_per_
// second so the remaining envelope is spread exactly across the new
// remaining duration. extraAmount and extraDuration may each be zero, but
// not both.
func (e *Engine) UpdateEmission(caller thor.Address, now int64, extraAmount, extraDuration *big.Int) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("update_emission", err) }()

	if err := e.authorizeOwner(caller); err != nil {
		return err
	}
	if extraAmount.Sign() == 0 && extraDuration.Sign() == 0 {
		return errorkind.ErrInvalidEmissionParameters
	}
	if extraAmount.Sign() < 0 || extraDuration.Sign() < 0 {
		return errorkind.ErrInvalidEmissionParameters
	}

	snap, err := e.pool.UpdateIndex(now)
	if err != nil {
		return err
	}
	p := snap.Pool

	if now >= p.EndTime {
		return errorkind.ErrInsufficientTimeLeft
	}

	p.TotalRewards = new(big.Int).Add(p.TotalRewards, extraAmount)
	p.EndTime = p.EndTime + extraDuration.Int64()

	remaining := new(big.Int).Sub(p.TotalRewards, p.RewardsEmitted)
	denom := p.EndTime - now
	if denom <= 0 {
		return errorkind.ErrInvalidEmissionParameters
	}

	eps := new(big.Int).Quo(remaining, big.NewInt(denom))
	if eps.Sign() <= 0 {
		return errorkind.ErrInvalidEmissionParameters
	}
	p.EmissionPerSecond = eps

	logger.Info("updated emission", "total_rewards", p.TotalRewards.String(), "end_time", p.EndTime, "eps", eps.String())
	if werr := e.pool.Write(p); werr != nil {
		return werr
	}
	e.recordPoolGauges()
	return nil
}
