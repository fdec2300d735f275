// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/metrics"
	"github.com/mocaverse/stakingpool/params"
	"github.com/mocaverse/stakingpool/thor"
)

// StakeTokens implements stake_tokens: runs the full pool -> vault -> user
// prologue, then moves the tokens in and books the new principal against
// both the vault and pool alloc-point totals.
func (e *Engine) StakeTokens(caller, onBehalf thor.Address, vaultID thor.Bytes32, amount *big.Int, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("stake_tokens", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return errorkind.ErrInvalidAmount
	}

	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	snap, err := e.position.UpdateIndex(onBehalf, vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault.Vault
	pos := snap.Position

	if now >= v.EndTime {
		return errorkind.ErrStakingEnded
	}

	limit := params.MinBig(v.PrincipalLimit, params.GlobalPrincipalCap)
	newStaked := new(big.Int).Add(v.StakedPrincipal, amount)
	if newStaked.Cmp(limit) > 0 {
		return errorkind.ErrStakedTokenLimitExceeded
	}

	if err := e.principal.TransferFrom(onBehalf, e.self, amount); err != nil {
		return err
	}
	if err := e.receipt.Mint(onBehalf, amount); err != nil {
		return err
	}

	deltaAlloc := new(big.Int).Mul(amount, big.NewInt(v.Multiplier))
	v.AllocPoints = new(big.Int).Add(v.AllocPoints, deltaAlloc)
	v.StakedPrincipal = newStaked
	pos.StakedPrincipal = new(big.Int).Add(pos.StakedPrincipal, amount)

	if err := e.vault.Write(v); err != nil {
		return err
	}
	if err := e.pool.AddAllocPoints(deltaAlloc); err != nil {
		return err
	}
	e.recordPoolGauges()
	e.position.Write(pos)

	logger.Info("staked principal", "vault", vaultID.String(), "holder", onBehalf.String(), "amount", amount.String())
	return nil
}

// StakeBoosts implements stake_boosts: appends boost-asset ids to the
// holder's position, grows the vault's multiplier and (if principal is
// already staked) its alloc points, and backfills the first boost staker
// with whatever boost fees the vault accrued before any boost existed.
func (e *Engine) StakeBoosts(caller, onBehalf thor.Address, vaultID thor.Bytes32, ids []thor.Bytes32, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("stake_boosts", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return err
	}
	n := len(ids)
	if n <= 0 || n >= params.MaxBoostsPerVault {
		return errorkind.ErrBoostStakingLimitExceeded
	}

	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	snap, err := e.position.UpdateIndex(onBehalf, vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault.Vault
	pos := snap.Position

	if now >= v.EndTime {
		return errorkind.ErrStakingEnded
	}
	if v.StakedBoosts+n > params.MaxBoostsPerVault {
		return errorkind.ErrBoostStakingLimitExceeded
	}
	if len(pos.BoostIDs)+n > params.MaxBoostsPerVault {
		return errorkind.ErrBoostStakingLimitExceeded
	}

	firstBoostInVault := v.StakedBoosts == 0

	if err := e.registry.RecordStake(onBehalf, ids, vaultID); err != nil {
		return err
	}

	v.StakedBoosts += n
	v.Multiplier += int64(n) * params.BoostMultiplierBps

	if v.StakedPrincipal.Sign() > 0 {
		newAlloc := new(big.Int).Mul(v.StakedPrincipal, big.NewInt(v.Multiplier))
		delta := new(big.Int).Sub(newAlloc, v.AllocPoints)
		v.AllocPoints = newAlloc
		if err := e.pool.AddAllocPoints(delta); err != nil {
			return err
		}
		e.recordPoolGauges()
	}

	pos.BoostIDs = append(pos.BoostIDs, ids...)
	if firstBoostInVault {
		pos.AccBoostRewards = new(big.Int).Add(pos.AccBoostRewards, v.AccBoostRewards)
	}

	if err := e.vault.Write(v); err != nil {
		return err
	}
	e.position.Write(pos)

	logger.Info("staked boosts", "vault", vaultID.String(), "holder", onBehalf.String(), "count", n)
	return nil
}
