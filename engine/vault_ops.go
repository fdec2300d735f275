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
	"github.com/mocaverse/stakingpool/vault"
)

// CreateVault implements create_vault. It runs only the pool half of the
// prologue (no vault exists yet to bring current) and mints a fresh vault
// id, retrying on the astronomically unlikely event of a collision.
func (e *Engine) CreateVault(
	caller, onBehalf thor.Address,
	now int64,
	class params.DurationClass,
	creatorFee, boostFee *big.Int,
) (id thor.Bytes32, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("create_vault", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return thor.Bytes32{}, err
	}

	p, err := e.pool.Get()
	if err != nil {
		return thor.Bytes32{}, err
	}
	if err := globalPreconditions(p, now); err != nil {
		return thor.Bytes32{}, err
	}

	duration, ok := class.Duration()
	if !ok {
		return thor.Bytes32{}, errorkind.ErrInvalidVaultPeriod
	}

	feeTotal := new(big.Int).Add(creatorFee, boostFee)
	if feeTotal.Cmp(params.Precision) > 0 {
		return thor.Bytes32{}, errorkind.ErrTotalFeeFactorExceeded
	}

	vaultEnd := now + duration
	if vaultEnd >= p.EndTime {
		return thor.Bytes32{}, errorkind.ErrInsufficientTimeLeft
	}

	poolSnap, err := e.pool.UpdateIndex(now)
	if err != nil {
		return thor.Bytes32{}, err
	}

	for {
		id := e.nextVaultID(onBehalf, now)
		v, err := vault.New(id, onBehalf, class, now, creatorFee, boostFee, poolSnap.Pool.Index)
		if err != nil {
			return thor.Bytes32{}, err
		}
		if err := e.vault.Create(v); err != nil {
			if err == vault.ErrCollision {
				continue
			}
			return thor.Bytes32{}, err
		}
		metrics.VaultsCreated.WithLabelValues(class.String()).Inc()
		logger.Info("vault created", "vault", id.String(), "creator", onBehalf.String(), "class", class)
		return id, nil
	}
}

// IncreaseVaultLimit implements increase_vault_limit.
func (e *Engine) IncreaseVaultLimit(caller, onBehalf thor.Address, vaultID thor.Bytes32, amount *big.Int, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("increase_vault_limit", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	snap, err := e.vault.UpdateIndex(vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault

	if onBehalf != v.Creator {
		return errorkind.ErrUserIsNotVaultCreator
	}
	if now >= v.EndTime {
		return errorkind.ErrVaultMatured
	}
	if amount.Sign() <= 0 {
		return errorkind.ErrInvalidAmount
	}

	newLimit := new(big.Int).Add(v.PrincipalLimit, amount)
	if newLimit.Cmp(params.GlobalPrincipalCap) > 0 {
		return errorkind.ErrStakedTokenLimitExceeded
	}
	v.PrincipalLimit = newLimit
	return e.vault.Write(v)
}

// UpdateCreatorFee implements update_creator_fee: the creator's cut may
// only move down, and the sum with the boost factor must stay within P.
func (e *Engine) UpdateCreatorFee(caller, onBehalf thor.Address, vaultID thor.Bytes32, newFee *big.Int, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("update_creator_fee", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	snap, err := e.vault.UpdateIndex(vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault

	if onBehalf != v.Creator {
		return errorkind.ErrUserIsNotVaultCreator
	}
	if now >= v.EndTime {
		return errorkind.ErrVaultMatured
	}
	if newFee.Cmp(v.CreatorFeeFactor) >= 0 {
		return errorkind.ErrCreatorFeeCanOnlyBeDecreased
	}
	total := new(big.Int).Add(newFee, v.BoostFeeFactor)
	if total.Cmp(params.Precision) > 0 {
		return errorkind.ErrTotalFeeFactorExceeded
	}

	v.CreatorFeeFactor = new(big.Int).Set(newFee)
	return e.vault.Write(v)
}

// UpdateBoostFee implements update_boost_fee: the boost cut may only move
// up, and the sum with the creator factor must stay within P.
func (e *Engine) UpdateBoostFee(caller, onBehalf thor.Address, vaultID thor.Bytes32, newFee *big.Int, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("update_boost_fee", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return err
	}
	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	snap, err := e.vault.UpdateIndex(vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault

	if onBehalf != v.Creator {
		return errorkind.ErrUserIsNotVaultCreator
	}
	if now >= v.EndTime {
		return errorkind.ErrVaultMatured
	}
	if newFee.Cmp(v.BoostFeeFactor) <= 0 {
		return errorkind.ErrBoostFeeCanOnlyBeIncreased
	}
	total := new(big.Int).Add(newFee, v.CreatorFeeFactor)
	if total.Cmp(params.Precision) > 0 {
		return errorkind.ErrTotalFeeFactorExceeded
	}

	v.BoostFeeFactor = new(big.Int).Set(newFee)
	return e.vault.Write(v)
}

// UpdateVault implements update_vault: pure bookkeeping, bringing every
// listed vault's index current without any business-rule change. It is the
// only operation with no caller-authorization check; any party may keep
// the ledgers fresh.
func (e *Engine) UpdateVault(ids []thor.Bytes32, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("update_vault", err) }()

	p, err := e.pool.Get()
	if err != nil {
		return err
	}
	if err := globalPreconditions(p, now); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := e.vault.UpdateIndex(id, now); err != nil {
			return err
		}
	}
	return nil
}
