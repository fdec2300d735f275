// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"

	"github.com/mocaverse/stakingpool/metrics"
	"github.com/mocaverse/stakingpool/thor"
)

// ClaimRewards implements claim_rewards: pay out the principal-side
// accrual not yet claimed, and returns the amount paid (0 if nothing was
// owed; claiming twice with no intervening time is a no-op).
func (e *Engine) ClaimRewards(caller, onBehalf thor.Address, vaultID thor.Bytes32, now int64) (owed *big.Int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("claim_rewards", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return nil, err
	}
	p, err := e.pool.Get()
	if err != nil {
		return nil, err
	}
	if err := globalPreconditions(p, now); err != nil {
		return nil, err
	}

	snap, err := e.position.UpdateIndex(onBehalf, vaultID, now)
	if err != nil {
		return nil, err
	}
	pos := snap.Position
	v := snap.Vault.Vault

	owed = new(big.Int).Sub(pos.AccStakingRewards, pos.ClaimedStakingRewards)
	if owed.Sign() <= 0 {
		return new(big.Int), nil
	}

	if err := e.rewards.PayRewards(onBehalf, owed); err != nil {
		return nil, err
	}

	pos.ClaimedStakingRewards = new(big.Int).Add(pos.ClaimedStakingRewards, owed)
	v.TotalClaimed = new(big.Int).Add(v.TotalClaimed, owed)

	e.position.Write(pos)
	if err := e.vault.Write(v); err != nil {
		return nil, err
	}

	logger.Info("claimed staking rewards", "vault", vaultID.String(), "holder", onBehalf.String(), "amount", owed.String())
	return owed, nil
}

// ClaimFees implements claim_fees: the creator-fee bucket and the
// boost-fee bucket are claimed independently of one another, and both are
// paid together through a single custodian call.
func (e *Engine) ClaimFees(caller, onBehalf thor.Address, vaultID thor.Bytes32, now int64) (total *big.Int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("claim_fees", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return nil, err
	}
	p, err := e.pool.Get()
	if err != nil {
		return nil, err
	}
	if err := globalPreconditions(p, now); err != nil {
		return nil, err
	}

	snap, err := e.position.UpdateIndex(onBehalf, vaultID, now)
	if err != nil {
		return nil, err
	}
	pos := snap.Position
	v := snap.Vault.Vault

	var owedCreator, owedBoost *big.Int
	if onBehalf == v.Creator {
		if d := new(big.Int).Sub(v.AccCreatorRewards, pos.ClaimedCreatorRewards); d.Sign() > 0 {
			owedCreator = d
		}
	}
	if d := new(big.Int).Sub(pos.AccBoostRewards, pos.ClaimedBoostRewards); d.Sign() > 0 {
		owedBoost = d
	}

	total = new(big.Int)
	if owedCreator != nil {
		total.Add(total, owedCreator)
	}
	if owedBoost != nil {
		total.Add(total, owedBoost)
	}

	if total.Sign() == 0 {
		return new(big.Int), nil
	}

	if err := e.rewards.PayRewards(onBehalf, total); err != nil {
		return nil, err
	}

	if owedCreator != nil {
		pos.ClaimedCreatorRewards = new(big.Int).Add(pos.ClaimedCreatorRewards, owedCreator)
	}
	if owedBoost != nil {
		pos.ClaimedBoostRewards = new(big.Int).Add(pos.ClaimedBoostRewards, owedBoost)
	}
	v.TotalClaimed = new(big.Int).Add(v.TotalClaimed, total)

	e.position.Write(pos)
	if err := e.vault.Write(v); err != nil {
		return nil, err
	}

	logger.Info("claimed fees", "vault", vaultID.String(), "holder", onBehalf.String(), "amount", total.String())
	return total, nil
}
