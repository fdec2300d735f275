// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/log"
)

var logger = log.WithContext("pkg", "pool")

// Service is the Pool Ledger's entry point: every mutating engine operation
// opens by calling UpdateIndex to bring the pool index up to now.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot is the result of advancing a pool to now: the fresh pool state
// plus the effective timestamp the advancement actually happened at, which
// vault-maturity checks key off of. It is min(now, end_time) when the call
// emitted rewards; when nothing was emitted (no alloc points, or the pool
// had already ended) it is the pool's last-update timestamp before the call.
type Snapshot struct {
	Pool        *Pool
	EffectiveTS int64
}

// UpdateIndex is the pool-ledger half of the prologue every operation runs:
// bring the pool index up to now, emitting reward along the way, and
// return the fresh snapshot. now must be monotonically non-decreasing
// across calls; a regression is rejected rather than silently ignored.
func (s *Service) UpdateIndex(now int64) (*Snapshot, error) {
	p, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	if now < p.LastUpdateTimestamp {
		return nil, errors.Wrapf(errorkind.ErrInvalidEmissionParameters,
			"timestamp %d precedes last update %d", now, p.LastUpdateTimestamp)
	}

	if now == p.LastUpdateTimestamp {
		return &Snapshot{Pool: p, EffectiveTS: p.LastUpdateTimestamp}, nil
	}

	nextIndex, effectiveTS, emitted := AdvanceIndex(
		p.Index, p.EmissionPerSecond, p.LastUpdateTimestamp, p.TotalAllocPoints, now, p.EndTime,
	)

	if nextIndex.Cmp(p.Index) != 0 {
		p.Index = nextIndex
		p.RewardsEmitted = new(big.Int).Add(p.RewardsEmitted, emitted)
		p.LastUpdateTimestamp = now

		if p.RewardsEmitted.Cmp(p.TotalRewards) > 0 {
			return nil, errors.New("pool: rewards_emitted would exceed total_rewards, invariant violated")
		}

		logger.Debug("advanced pool index", "now", now, "index", p.Index.String(), "emitted", emitted.String())
	} else {
		p.LastUpdateTimestamp = now
	}

	if err := s.repo.Set(p); err != nil {
		return nil, err
	}
	return &Snapshot{Pool: p, EffectiveTS: effectiveTS}, nil
}

// Get returns the current pool state without advancing it.
func (s *Service) Get() (*Pool, error) {
	return s.repo.Get()
}

// Write commits a pool state a caller has already advanced and mutated
// (e.g. to adjust TotalAllocPoints after a vault's final update).
func (s *Service) Write(p *Pool) error {
	return s.repo.Set(p)
}

// AddAllocPoints adjusts total_alloc_points by delta (which may be
// negative) and persists the result.
func (s *Service) AddAllocPoints(delta *big.Int) error {
	p, err := s.repo.Get()
	if err != nil {
		return err
	}
	p.TotalAllocPoints = new(big.Int).Add(p.TotalAllocPoints, delta)
	if p.TotalAllocPoints.Sign() < 0 {
		return errors.New("pool: total_alloc_points went negative, invariant violated")
	}
	return s.repo.Set(p)
}
