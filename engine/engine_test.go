// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/external"
	"github.com/mocaverse/stakingpool/params"
	"github.com/mocaverse/stakingpool/pool"
	"github.com/mocaverse/stakingpool/position"
	"github.com/mocaverse/stakingpool/thor"
	"github.com/mocaverse/stakingpool/vault"
)

var (
	selfAddr   = thor.Address{0xff}
	routerAddr = thor.Address{1}
	ownerAddr  = thor.Address{2}
	holderA    = thor.Address{3}
	holderC    = thor.Address{4}
)

func newTestEngine(t *testing.T, startTime, endTime int64, eps, totalRewards *big.Int) *Engine {
	t.Helper()
	p := pool.New(startTime, endTime, eps, totalRewards)
	poolSvc := pool.NewService(pool.NewRepository(p))
	vaultSvc := vault.NewService(poolSvc, vault.NewRepository())
	positionSvc := position.NewService(vaultSvc, position.NewRepository())

	collab := Collaborators{
		Points:    nil,
		Registry:  external.NewMockBoostRegistry(),
		Rewards:   external.NewMockRewardCustodian(totalRewards),
		Principal: external.NewMockPrincipalCustodian(),
		Receipt:   external.NewMockReceiptToken(),
	}

	e, err := New(selfAddr, routerAddr, ownerAddr, poolSvc, vaultSvc, positionSvc, collab)
	require.NoError(t, err)
	return e
}

func TestScenario_FirstStakeDropsPreStakeAccrual(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 2, params.Duration30Days, big.NewInt(1e17), big.NewInt(1e17))
	require.NoError(t, err)

	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 3))

	v, err := e.vault.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "5000000000000000000000", v.AllocPoints.String())

	require.NoError(t, e.UpdateVault([]thor.Bytes32{id}, 4))

	v, err = e.vault.Get(id)
	require.NoError(t, err)
	// over 1 second, eps=1e18 split 100% to this vault (sole alloc). Gross
	// accrual is 1e18; 10% creator + 10% boost fee leaves 0.8e18 net to the
	// principal pot.
	assert.Equal(t, "1000000000000000000", v.AccTotalRewards.String())
	assert.Equal(t, "100000000000000000", v.AccCreatorRewards.String())
	assert.Equal(t, "100000000000000000", v.AccBoostRewards.String())
}

func TestScenario_TwoVaultsProportionalSplit(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	v1, err := e.CreateVault(routerAddr, holderA, 2, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, v1, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 3))

	v2, err := e.CreateVault(routerAddr, holderC, 7, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderC, v2, new(big.Int).Mul(big.NewInt(40), big.NewInt(1e18)), 8))

	p, err := e.pool.Get()
	require.NoError(t, err)
	// pool index only advances when an operation touches it: 0 from t1-t3
	// (no alloc staked yet), 4e18 from t3-t7 (V1 alone has alloc), 1e18
	// from t7-t8 (V2 not yet staked) = 5e18 cumulative emission.
	assert.Equal(t, "5000000000000000000", p.RewardsEmitted.String())
}

func TestScenario_BoostBackfillOnFirstStaker(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(1e17), big.NewInt(1e17))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 1))

	require.NoError(t, e.UpdateVault([]thor.Bytes32{id}, 4))
	v, err := e.vault.Get(id)
	require.NoError(t, err)
	require.Equal(t, 1, v.AccBoostRewards.Sign())

	require.NoError(t, e.StakeBoosts(routerAddr, holderC, id, []thor.Bytes32{thor.BytesToBytes32([]byte("nft1"))}, 4))

	pos, ok := e.position.Get(holderC, id)
	require.True(t, ok)
	assert.Equal(t, v.AccBoostRewards.String(), pos.AccBoostRewards.String())
}

func TestScenario_MaturityFinalUpdateIsIdempotent(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 1))

	v, err := e.vault.Get(id)
	require.NoError(t, err)
	endTime := v.EndTime

	require.NoError(t, e.UpdateVault([]thor.Bytes32{id}, endTime))
	v, err = e.vault.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "0", v.AllocPoints.String())

	p, err := e.pool.Get()
	require.NoError(t, err)
	assert.Equal(t, "0", p.TotalAllocPoints.String())

	require.NoError(t, e.UpdateVault([]thor.Bytes32{id}, endTime+1000))
	v2, err := e.vault.Get(id)
	require.NoError(t, err)
	assert.Equal(t, v.AccTotalRewards.String(), v2.AccTotalRewards.String())
}

func TestScenario_FeeFactorBounds(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(2e17), big.NewInt(1e17))
	require.NoError(t, err)

	err = e.UpdateCreatorFee(routerAddr, holderA, id, big.NewInt(3e17), 2)
	assert.ErrorIs(t, err, errorkind.ErrCreatorFeeCanOnlyBeDecreased)

	err = e.UpdateBoostFee(routerAddr, holderA, id, big.NewInt(9e17), 2)
	assert.ErrorIs(t, err, errorkind.ErrTotalFeeFactorExceeded)
}

func TestScenario_EnvelopeNeverExceeded(t *testing.T) {
	startTime, endTime := int64(1), int64(1+120*86400)
	eps := big.NewInt(1e18)
	total := new(big.Int).Mul(eps, big.NewInt(endTime-startTime)) // exactly saturates the envelope
	e := newTestEngine(t, startTime, endTime, eps, total)

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, big.NewInt(1), 1))

	almostEnd := endTime - 100
	require.NoError(t, e.UpdateVault([]thor.Bytes32{id}, almostEnd))
	p, err := e.pool.Get()
	require.NoError(t, err)
	assert.True(t, p.RewardsEmitted.Cmp(p.TotalRewards) <= 0)

	require.NoError(t, e.UpdateEmission(ownerAddr, almostEnd, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), big.NewInt(5)))
	p, err = e.pool.Get()
	require.NoError(t, err)
	assert.True(t, p.RewardsEmitted.Cmp(p.TotalRewards) <= 0)
	assert.EqualValues(t, endTime+5, p.EndTime)
}

func TestUnstakeAll_RoundTripsExactPrincipal(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 1))

	v, err := e.vault.Get(id)
	require.NoError(t, err)

	err = e.UnstakeAll(routerAddr, holderA, id, v.EndTime-1)
	assert.ErrorIs(t, err, errorkind.ErrVaultNotMatured)

	require.NoError(t, e.UnstakeAll(routerAddr, holderA, id, v.EndTime))

	// the fungible mock models a debit/credit ledger, not a real external
	// holder: stake debited 50e18 from holderA and credited the pool
	// (self); unstake credits holderA back the same 50e18, netting to 0.
	mock := e.principal.(*external.MockPrincipalCustodian)
	assert.Equal(t, "0", mock.Balances[holderA].String())

	receipt := e.receipt.(*external.MockReceiptToken)
	assert.Equal(t, "0", receipt.Supply[holderA].String())
}

func TestClaimRewards_TwiceWithNoElapsedTimeReturnsZero(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 1))

	owed, err := e.ClaimRewards(routerAddr, holderA, id, 5)
	require.NoError(t, err)
	assert.True(t, owed.Sign() > 0)

	owed2, err := e.ClaimRewards(routerAddr, holderA, id, 5)
	require.NoError(t, err)
	assert.Equal(t, "0", owed2.String())
}

func TestPauseUnpauseFreezeEmergencyExit(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	id, err := e.CreateVault(routerAddr, holderA, 1, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, e.StakeTokens(routerAddr, holderA, id, new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18)), 1))

	require.NoError(t, e.Pause(ownerAddr))

	err = e.StakeTokens(routerAddr, holderA, id, big.NewInt(1), 3)
	assert.ErrorIs(t, err, errorkind.ErrPoolPaused)

	require.NoError(t, e.Freeze(ownerAddr))

	err = e.Unpause(ownerAddr)
	assert.ErrorIs(t, err, errorkind.ErrPoolFrozen)

	refunded, err := e.EmergencyExit(routerAddr, holderA, id)
	require.NoError(t, err)
	assert.Equal(t, "50000000000000000000", refunded.String())

	_, err = e.EmergencyExit(routerAddr, holderA, id)
	assert.ErrorIs(t, err, errorkind.ErrUserHasNothingStaked)
}

func TestAuthorize_RejectsUnrelatedCaller(t *testing.T) {
	e := newTestEngine(t, 1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))
	stranger := thor.Address{99}

	_, err := e.CreateVault(stranger, holderA, 2, params.Duration30Days, big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, errorkind.ErrIncorrectCaller)
}

func TestCreateVault_RejectsInsufficientTimeLeft(t *testing.T) {
	e := newTestEngine(t, 1, 100, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))

	_, err := e.CreateVault(routerAddr, holderA, 2, params.Duration90Days, big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, errorkind.ErrInsufficientTimeLeft)
}
