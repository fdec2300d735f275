// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package external declares the small interfaces through which the engine
// talks to its collaborators: the points ledger that gates certain
// operations, the boost-asset registry, and the two token custodians. The
// engine computes an operation's own state changes locally and calls these
// collaborators before writing those changes back to its ledgers, so a
// failure here is returned without ever having persisted a claim, stake or
// unstake that no token movement backs. Index updates and accruals booked
// by the operation's prologue are persisted before the call and are kept.
package external

import (
	"math/big"

	"github.com/mocaverse/stakingpool/thor"
)

// PointsLedger gates vault creation and parameter changes on an off-chain
// points balance. The core engine accepts calls that have already cleared
// this check; it is wired here so a caller-auth layer can be composed in
// front of the engine without the engine knowing about seasons or realms.
type PointsLedger interface {
	BalanceOf(season uint32, realmID thor.Bytes32) (*big.Int, error)
	Consume(realmID thor.Bytes32, amount *big.Int, reason string, signature []byte) error
}

// BoostRegistry records which boost-asset ids are staked against which
// vault. Calls must be idempotent per (ids, vaultID) pair.
type BoostRegistry interface {
	RecordStake(holder thor.Address, ids []thor.Bytes32, vaultID thor.Bytes32) error
	RecordUnstake(holder thor.Address, ids []thor.Bytes32, vaultID thor.Bytes32) error
}

// RewardCustodian holds the reward-token envelope and pays out claims.
type RewardCustodian interface {
	TotalVaultRewards() (*big.Int, error)
	PayRewards(recipient thor.Address, amount *big.Int) error
}

// PrincipalCustodian is the standard fungible-token ledger that principal
// stakes move through.
type PrincipalCustodian interface {
	TransferFrom(from, to thor.Address, amount *big.Int) error
	Transfer(to thor.Address, amount *big.Int) error
}

// ReceiptToken mirrors principal stakes 1:1: minted on stake, burned on
// unstake, so external holders of the receipt can always redeem pro-rata.
type ReceiptToken interface {
	Mint(to thor.Address, amount *big.Int) error
	Burn(from thor.Address, amount *big.Int) error
}
