// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vault implements the Vault Ledger: per-vault staking state,
// fee partitioning and the vault-level half of index propagation.
package vault

import (
	"math/big"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/params"
	"github.com/mocaverse/stakingpool/thor"
)

// Vault is one staking vault's full state.
type Vault struct {
	ID      thor.Bytes32
	Creator thor.Address

	DurationClass params.DurationClass
	EndTime       int64

	Multiplier int64 // units of 1/100

	StakedPrincipal *big.Int
	StakedBoosts    int

	AllocPoints *big.Int

	PrincipalLimit *big.Int

	CreatorFeeFactor *big.Int
	BoostFeeFactor   *big.Int

	VaultIndex *big.Int
	BoostIndex *big.Int

	RewardsPerToken *big.Int

	AccTotalRewards   *big.Int
	AccCreatorRewards *big.Int
	AccBoostRewards   *big.Int

	TotalClaimed *big.Int
}

// New creates a freshly created vault: no principal, no alloc points yet.
func New(
	id thor.Bytes32,
	creator thor.Address,
	class params.DurationClass,
	now int64,
	creatorFeeFactor, boostFeeFactor *big.Int,
	poolIndex *big.Int,
) (*Vault, error) {
	duration, ok := class.Duration()
	if !ok {
		return nil, errorkind.ErrInvalidVaultPeriod
	}
	multiplier, _ := class.Multiplier()

	return &Vault{
		ID:                id,
		Creator:           creator,
		DurationClass:     class,
		EndTime:           now + duration,
		Multiplier:        multiplier,
		StakedPrincipal:   new(big.Int),
		StakedBoosts:      0,
		AllocPoints:       new(big.Int),
		PrincipalLimit:    new(big.Int).Set(params.BaseLimit),
		CreatorFeeFactor:  new(big.Int).Set(creatorFeeFactor),
		BoostFeeFactor:    new(big.Int).Set(boostFeeFactor),
		VaultIndex:        new(big.Int).Set(poolIndex),
		BoostIndex:        new(big.Int),
		RewardsPerToken:   new(big.Int),
		AccTotalRewards:   new(big.Int),
		AccCreatorRewards: new(big.Int),
		AccBoostRewards:   new(big.Int),
		TotalClaimed:      new(big.Int),
	}, nil
}

// Clone returns an independent deep copy.
func (v *Vault) Clone() *Vault {
	c := *v
	c.StakedPrincipal = new(big.Int).Set(v.StakedPrincipal)
	c.AllocPoints = new(big.Int).Set(v.AllocPoints)
	c.PrincipalLimit = new(big.Int).Set(v.PrincipalLimit)
	c.CreatorFeeFactor = new(big.Int).Set(v.CreatorFeeFactor)
	c.BoostFeeFactor = new(big.Int).Set(v.BoostFeeFactor)
	c.VaultIndex = new(big.Int).Set(v.VaultIndex)
	c.BoostIndex = new(big.Int).Set(v.BoostIndex)
	c.RewardsPerToken = new(big.Int).Set(v.RewardsPerToken)
	c.AccTotalRewards = new(big.Int).Set(v.AccTotalRewards)
	c.AccCreatorRewards = new(big.Int).Set(v.AccCreatorRewards)
	c.AccBoostRewards = new(big.Int).Set(v.AccBoostRewards)
	c.TotalClaimed = new(big.Int).Set(v.TotalClaimed)
	return &c
}

// IsMatured reports whether effective ts is at or past the vault's end.
func (v *Vault) IsMatured(effectiveTS int64) bool {
	return effectiveTS >= v.EndTime
}

// PrincipalPot is the principal-side share of AccTotalRewards: the
// remainder after the creator and boost cuts. Exposed for invariant
// checks (I3) and tests, not used in the hot accrual path.
func (v *Vault) PrincipalPot() *big.Int {
	pot := new(big.Int).Sub(v.AccTotalRewards, v.AccCreatorRewards)
	return pot.Sub(pot, v.AccBoostRewards)
}
