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

// UnstakeAll implements unstake_all: refunds principal and releases boost
// holdings for a matured vault. Accrued and claimed balances are left
// untouched; they remain claimable through claim_rewards / claim_fees.
func (e *Engine) UnstakeAll(caller, onBehalf thor.Address, vaultID thor.Bytes32, now int64) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("unstake_all", err) }()

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

	snap, err := e.position.UpdateIndex(onBehalf, vaultID, now)
	if err != nil {
		return err
	}
	v := snap.Vault.Vault
	pos := snap.Position

	if now < v.EndTime {
		return errorkind.ErrVaultNotMatured
	}
	if !pos.HasHoldings() {
		return errorkind.ErrUserHasNothingStaked
	}

	principalAmt := new(big.Int).Set(pos.StakedPrincipal)
	boostIDs := append([]thor.Bytes32(nil), pos.BoostIDs...)

	if len(boostIDs) > 0 {
		if err := e.registry.RecordUnstake(onBehalf, boostIDs, vaultID); err != nil {
			return err
		}
	}
	if principalAmt.Sign() > 0 {
		if err := e.receipt.Burn(onBehalf, principalAmt); err != nil {
			return err
		}
		if err := e.principal.Transfer(onBehalf, principalAmt); err != nil {
			return err
		}
	}

	if len(boostIDs) > 0 {
		v.StakedBoosts -= len(boostIDs)
		pos.BoostIDs = nil
	}
	if principalAmt.Sign() > 0 {
		v.StakedPrincipal = new(big.Int).Sub(v.StakedPrincipal, principalAmt)
		pos.StakedPrincipal = new(big.Int)
	}

	if err := e.vault.Write(v); err != nil {
		return err
	}
	e.position.Write(pos)

	logger.Info("unstaked all", "vault", vaultID.String(), "holder", onBehalf.String(), "principal", principalAmt.String())
	return nil
}

// EmergencyExit implements emergency_exit: available only while the pool is
// paused and frozen. It refunds holdings without advancing any index or
// touching alloc-points, so the frozen state can be reconstructed later.
func (e *Engine) EmergencyExit(caller, onBehalf thor.Address, vaultID thor.Bytes32) (principalAmt *big.Int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { metrics.ObserveOperation("emergency_exit", err) }()

	if err := e.authorize(caller, onBehalf); err != nil {
		return nil, err
	}
	p, err := e.pool.Get()
	if err != nil {
		return nil, err
	}
	if err := whenPaused(p); err != nil {
		return nil, err
	}
	if err := whenFrozen(p); err != nil {
		return nil, err
	}

	if _, err := e.vault.Get(vaultID); err != nil {
		return nil, err
	}

	pos, ok := e.position.Get(onBehalf, vaultID)
	if !ok || !pos.HasHoldings() {
		return nil, errorkind.ErrUserHasNothingStaked
	}

	principalAmt = new(big.Int).Set(pos.StakedPrincipal)
	boostIDs := append([]thor.Bytes32(nil), pos.BoostIDs...)

	if len(boostIDs) > 0 {
		if err := e.registry.RecordUnstake(onBehalf, boostIDs, vaultID); err != nil {
			return nil, err
		}
	}
	if principalAmt.Sign() > 0 {
		if err := e.receipt.Burn(onBehalf, principalAmt); err != nil {
			return nil, err
		}
		if err := e.principal.Transfer(onBehalf, principalAmt); err != nil {
			return nil, err
		}
	}

	pos.StakedPrincipal = new(big.Int)
	pos.BoostIDs = nil
	e.position.Write(pos)

	logger.Warn("emergency exit", "vault", vaultID.String(), "holder", onBehalf.String(), "principal", principalAmt.String())
	return principalAmt, nil
}
