// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/metrics"
	"github.com/mocaverse/stakingpool/thor"
)

// Pause implements pause: owner-only, idempotent.
func (e *Engine) Pause(caller thor.Address) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("pause", err) }()

	if err := e.authorizeOwner(caller); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	p.Paused = true
	logger.Warn("pool paused")
	return e.pool.Write(p)
}

// Unpause implements unpause: owner-only, requires the pool to currently
// be paused and not frozen (freeze is a terminal state per §4.5's state
// machine; only emergency_exit is available from it).
func (e *Engine) Unpause(caller thor.Address) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("unpause", err) }()

	if err := e.authorizeOwner(caller); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := whenPaused(p); err != nil {
		return err
	}
	if err := whenNotFrozen(p); err != nil {
		return err
	}
	p.Paused = false
	logger.Info("pool unpaused")
	return e.pool.Write(p)
}

// Freeze implements freeze: owner-only, requires the pool already paused
// and not already frozen.
func (e *Engine) Freeze(caller thor.Address) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("freeze", err) }()

	if err := e.authorizeOwner(caller); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := whenPaused(p); err != nil {
		return err
	}
	if p.Frozen {
		return errorkind.ErrAlreadyFrozen
	}
	p.Frozen = true
	logger.Warn("pool frozen")
	return e.pool.Write(p)
}
