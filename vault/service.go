// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import (
	"math/big"

	"github.com/mocaverse/stakingpool/log"
	"github.com/mocaverse/stakingpool/params"
	"github.com/mocaverse/stakingpool/pool"
	"github.com/mocaverse/stakingpool/thor"
)

var logger = log.WithContext("pkg", "vault")

// Service is the Vault Ledger's entry point. It wraps a pool.Service so
// every vault update opens with the pool-index prologue.
type Service struct {
	pool *pool.Service
	repo *Repository
}

func NewService(poolSvc *pool.Service, repo *Repository) *Service {
	return &Service{pool: poolSvc, repo: repo}
}

// Snapshot is the result of bringing one vault current: the fresh vault,
// the pool snapshot it was brought current against, and the effective
// timestamp maturity checks should use.
type Snapshot struct {
	Vault       *Vault
	Pool        *pool.Pool
	EffectiveTS int64
}

// UpdateIndex implements update_vault_index: advance the pool, then book
// this vault's share of the newly emitted rewards (and run its
// final-update if it has just matured).
func (s *Service) UpdateIndex(id thor.Bytes32, now int64) (*Snapshot, error) {
	poolSnap, err := s.pool.UpdateIndex(now)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if poolSnap.Pool.Index.Cmp(v.VaultIndex) == 0 {
		return &Snapshot{Vault: v, Pool: poolSnap.Pool, EffectiveTS: poolSnap.EffectiveTS}, nil
	}

	if v.AllocPoints.Sign() == 0 {
		// Finalized, or never staked: base-share rewards over this
		// interval are dropped, matching the no-pre-stake-accrual policy.
		return &Snapshot{Vault: v, Pool: poolSnap.Pool, EffectiveTS: poolSnap.EffectiveTS}, nil
	}

	if v.StakedPrincipal.Sign() > 0 {
		accrued := pool.RewardsFromIndex(v.AllocPoints, poolSnap.Pool.Index, v.VaultIndex)

		creatorFee := new(big.Int)
		if v.CreatorFeeFactor.Sign() > 0 {
			creatorFee = params.MulDivP(accrued, v.CreatorFeeFactor)
		}
		boostFee := new(big.Int)
		if v.BoostFeeFactor.Sign() > 0 {
			boostFee = params.MulDivP(accrued, v.BoostFeeFactor)
		}

		v.AccTotalRewards = new(big.Int).Add(v.AccTotalRewards, accrued)
		v.AccCreatorRewards = new(big.Int).Add(v.AccCreatorRewards, creatorFee)
		v.AccBoostRewards = new(big.Int).Add(v.AccBoostRewards, boostFee)

		principalShare := new(big.Int).Sub(accrued, creatorFee)
		principalShare.Sub(principalShare, boostFee)
		perToken := new(big.Int).Mul(principalShare, params.Precision)
		perToken.Quo(perToken, v.StakedPrincipal)
		v.RewardsPerToken = new(big.Int).Add(v.RewardsPerToken, perToken)

		if v.StakedBoosts > 0 {
			perBoost := new(big.Int).Quo(boostFee, big.NewInt(int64(v.StakedBoosts)))
			v.BoostIndex = new(big.Int).Add(v.BoostIndex, perBoost)
		}

		logger.Debug("accrued vault rewards", "vault", v.ID.String(), "accrued", accrued.String())
	}

	v.VaultIndex = new(big.Int).Set(poolSnap.Pool.Index)

	if poolSnap.EffectiveTS >= v.EndTime {
		if err := s.pool.AddAllocPoints(new(big.Int).Neg(v.AllocPoints)); err != nil {
			return nil, err
		}
		logger.Info("vault matured, removed from emission", "vault", v.ID.String())
		v.AllocPoints = new(big.Int)
	}

	if err := s.repo.Set(v); err != nil {
		return nil, err
	}

	freshPool, err := s.pool.Get()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Vault: v, Pool: freshPool, EffectiveTS: poolSnap.EffectiveTS}, nil
}

// Get returns a vault's current state without advancing it.
func (s *Service) Get(id thor.Bytes32) (*Vault, error) {
	return s.repo.Get(id)
}

// Write commits a vault state a caller has already advanced and mutated.
func (s *Service) Write(v *Vault) error {
	return s.repo.Set(v)
}

// Create registers a brand new vault, retrying id generation on collision
// is the caller's responsibility (see engine.CreateVault).
func (s *Service) Create(v *Vault) error {
	return s.repo.Create(v)
}
