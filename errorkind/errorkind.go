// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package errorkind defines the closed set of error kinds every engine
// operation failure maps to. Every exported error is a sentinel so callers
// can branch on it with errors.Is.
package errorkind

import "errors"

// all lists every sentinel alongside the label Kind reports for it, kept in
// one place so adding a sentinel below without adding it here is obvious.
var all = []struct {
	err   error
	label string
}{
	{ErrNotStarted, "not_started"},
	{ErrInsufficientTimeLeft, "insufficient_time_left"},
	{ErrVaultMatured, "vault_matured"},
	{ErrVaultNotMatured, "vault_not_matured"},
	{ErrStakingEnded, "staking_ended"},
	{ErrIncorrectCaller, "incorrect_caller"},
	{ErrUserIsNotVaultCreator, "not_vault_creator"},
	{ErrNonExistentVault, "nonexistent_vault"},
	{ErrInvalidVaultPeriod, "invalid_vault_period"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInvalidVaultID, "invalid_vault_id"},
	{ErrInvalidRouter, "invalid_router"},
	{ErrInvalidEmissionParameters, "invalid_emission_parameters"},
	{ErrTotalFeeFactorExceeded, "total_fee_factor_exceeded"},
	{ErrCreatorFeeCanOnlyBeDecreased, "creator_fee_increased"},
	{ErrBoostFeeCanOnlyBeIncreased, "boost_fee_decreased"},
	{ErrBoostStakingLimitExceeded, "boost_staking_limit_exceeded"},
	{ErrStakedTokenLimitExceeded, "staked_token_limit_exceeded"},
	{ErrUserHasNothingStaked, "user_has_nothing_staked"},
	{ErrPoolFrozen, "pool_frozen"},
	{ErrPoolNotFrozen, "pool_not_frozen"},
	{ErrNotPaused, "not_paused"},
	{ErrAlreadyFrozen, "already_frozen"},
	{ErrPoolPaused, "pool_paused"},
}

// Kind maps err to a fixed, low-cardinality label: the matching sentinel's
// label via errors.Is (so a github.com/pkg/errors wrap still matches its
// cause), "internal" for anything else, or "" for a nil err. Callers that
// feed error text into metric labels should go through Kind rather than
// err.Error(), which is unbounded (free-form wrap context, timestamps, ids).
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range all {
		if errors.Is(err, c.err) {
			return c.label
		}
	}
	return "internal"
}

// Timing errors.
var (
	ErrNotStarted           = errors.New("pool has not started")
	ErrInsufficientTimeLeft = errors.New("insufficient time left before pool end")
	ErrVaultMatured         = errors.New("vault has matured")
	ErrVaultNotMatured      = errors.New("vault has not matured")
	ErrStakingEnded         = errors.New("staking window for vault has ended")
)

// Identity / auth errors.
var (
	ErrIncorrectCaller       = errors.New("caller is not authorized for this action")
	ErrUserIsNotVaultCreator = errors.New("caller is not the vault creator")
	ErrNonExistentVault      = errors.New("vault does not exist")
)

// Shape errors.
var (
	ErrInvalidVaultPeriod        = errors.New("invalid vault duration class")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidVaultID            = errors.New("invalid vault id")
	ErrInvalidRouter             = errors.New("invalid router")
	ErrInvalidEmissionParameters = errors.New("invalid emission parameters")
)

// Policy errors.
var (
	ErrTotalFeeFactorExceeded       = errors.New("creator fee factor plus boost fee factor exceeds precision")
	ErrCreatorFeeCanOnlyBeDecreased = errors.New("creator fee factor can only be decreased")
	ErrBoostFeeCanOnlyBeIncreased   = errors.New("boost fee factor can only be increased")
	ErrBoostStakingLimitExceeded    = errors.New("boost staking limit exceeded")
	ErrStakedTokenLimitExceeded     = errors.New("staked token limit exceeded")
	ErrUserHasNothingStaked         = errors.New("user has nothing staked")
)

// Lifecycle errors.
var (
	ErrPoolFrozen    = errors.New("pool is frozen")
	ErrPoolNotFrozen = errors.New("pool is not frozen")
	ErrNotPaused     = errors.New("pool is not paused")
	ErrAlreadyFrozen = errors.New("pool is already frozen")
	ErrPoolPaused    = errors.New("pool is paused")
)
