// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/pool"
)

func whenStarted(p *pool.Pool, now int64) error {
	if now < p.StartTime {
		return errorkind.ErrNotStarted
	}
	return nil
}

func whenNotPaused(p *pool.Pool) error {
	if p.Paused {
		return errorkind.ErrPoolPaused
	}
	return nil
}

func whenPaused(p *pool.Pool) error {
	if !p.Paused {
		return errorkind.ErrNotPaused
	}
	return nil
}

func whenFrozen(p *pool.Pool) error {
	if !p.Frozen {
		return errorkind.ErrPoolNotFrozen
	}
	return nil
}

func whenNotFrozen(p *pool.Pool) error {
	if p.Frozen {
		return errorkind.ErrPoolFrozen
	}
	return nil
}

// globalPreconditions enforces the "beyond global" row every non-emergency
// operation in §4.5's table shares: started, and not paused.
func globalPreconditions(p *pool.Pool, now int64) error {
	if err := whenStarted(p, now); err != nil {
		return err
	}
	return whenNotPaused(p)
}
