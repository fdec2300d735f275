// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package position implements the User Ledger: per (holder, vault) staking
// state and the user-level half of index propagation.
package position

import (
	"math/big"

	"github.com/mocaverse/stakingpool/thor"
)

// Key identifies a position by holder and vault.
type Key struct {
	Holder thor.Address
	Vault  thor.Bytes32
}

// Position is one holder's stake within one vault.
type Position struct {
	Holder thor.Address
	Vault  thor.Bytes32

	StakedPrincipal *big.Int
	BoostIDs        []thor.Bytes32

	UserIndex      *big.Int
	UserBoostIndex *big.Int

	AccStakingRewards     *big.Int
	ClaimedStakingRewards *big.Int

	AccBoostRewards     *big.Int
	ClaimedBoostRewards *big.Int

	ClaimedCreatorRewards *big.Int
}

// New creates an empty position snapshotted against the vault's current
// per-unit indexes, so it starts owed nothing.
func New(holder thor.Address, vaultID thor.Bytes32, vaultRewardsPerToken, vaultBoostIndex *big.Int) *Position {
	return &Position{
		Holder:                holder,
		Vault:                 vaultID,
		StakedPrincipal:       new(big.Int),
		BoostIDs:              nil,
		UserIndex:             new(big.Int).Set(vaultRewardsPerToken),
		UserBoostIndex:        new(big.Int).Set(vaultBoostIndex),
		AccStakingRewards:     new(big.Int),
		ClaimedStakingRewards: new(big.Int),
		AccBoostRewards:       new(big.Int),
		ClaimedBoostRewards:   new(big.Int),
		ClaimedCreatorRewards: new(big.Int),
	}
}

// Clone returns an independent deep copy.
func (p *Position) Clone() *Position {
	c := *p
	c.StakedPrincipal = new(big.Int).Set(p.StakedPrincipal)
	c.BoostIDs = append([]thor.Bytes32(nil), p.BoostIDs...)
	c.UserIndex = new(big.Int).Set(p.UserIndex)
	c.UserBoostIndex = new(big.Int).Set(p.UserBoostIndex)
	c.AccStakingRewards = new(big.Int).Set(p.AccStakingRewards)
	c.ClaimedStakingRewards = new(big.Int).Set(p.ClaimedStakingRewards)
	c.AccBoostRewards = new(big.Int).Set(p.AccBoostRewards)
	c.ClaimedBoostRewards = new(big.Int).Set(p.ClaimedBoostRewards)
	c.ClaimedCreatorRewards = new(big.Int).Set(p.ClaimedCreatorRewards)
	return &c
}

// HasHoldings reports whether the position has any principal or boosts
// staked, per the precondition of unstake_all / emergency_exit.
func (p *Position) HasHoldings() bool {
	return p.StakedPrincipal.Sign() > 0 || len(p.BoostIDs) > 0
}

// Key returns the (holder, vault) key identifying this position.
func (p *Position) Key() Key {
	return Key{Holder: p.Holder, Vault: p.Vault}
}
