// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mocaverse/stakingpool/params"
	"github.com/mocaverse/stakingpool/pool"
	"github.com/mocaverse/stakingpool/thor"
	"github.com/mocaverse/stakingpool/vault"
)

func newTestServices(t *testing.T) (*Service, *vault.Service, *pool.Service) {
	t.Helper()
	p := pool.New(1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))
	poolSvc := pool.NewService(pool.NewRepository(p))
	vaultSvc := vault.NewService(poolSvc, vault.NewRepository())
	return NewService(vaultSvc, NewRepository()), vaultSvc, poolSvc
}

func TestUpdateIndex_FirstTouchCreatesZeroedPosition(t *testing.T) {
	svc, vaultSvc, poolSvc := newTestServices(t)
	pp, err := poolSvc.Get()
	require.NoError(t, err)

	id := thor.BytesToBytes32([]byte("v1"))
	holder := thor.Address{1}
	v, err := vault.New(id, thor.Address{2}, params.Duration30Days, 1, big.NewInt(0), big.NewInt(0), pp.Index)
	require.NoError(t, err)
	require.NoError(t, vaultSvc.Create(v))

	snap, err := svc.UpdateIndex(holder, id, 10)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Position.AccStakingRewards.String())
	assert.False(t, snap.Position.HasHoldings())
}

func TestUpdateIndex_AccruesProportionalShare(t *testing.T) {
	svc, vaultSvc, poolSvc := newTestServices(t)
	pp, err := poolSvc.Get()
	require.NoError(t, err)

	id := thor.BytesToBytes32([]byte("v1"))
	holder := thor.Address{1}
	v, err := vault.New(id, thor.Address{2}, params.Duration30Days, 1, big.NewInt(0), big.NewInt(0), pp.Index)
	require.NoError(t, err)
	v.StakedPrincipal = new(big.Int).Mul(big.NewInt(50), big.NewInt(1e18))
	v.AllocPoints = new(big.Int).Mul(big.NewInt(5000), big.NewInt(1e18))
	require.NoError(t, vaultSvc.Create(v))
	require.NoError(t, poolSvc.AddAllocPoints(new(big.Int).Mul(big.NewInt(5000), big.NewInt(1e18))))

	pos := New(holder, id, v.RewardsPerToken, v.BoostIndex)
	pos.StakedPrincipal = new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18))
	svc.Write(pos)

	snap, err := svc.UpdateIndex(holder, id, 4)
	require.NoError(t, err)
	assert.Equal(t, "600000000000000000", snap.Position.AccStakingRewards.String())
}

func TestUpdateIndex_NoAccrualWhenIndexUnchanged(t *testing.T) {
	svc, vaultSvc, poolSvc := newTestServices(t)
	pp, err := poolSvc.Get()
	require.NoError(t, err)

	id := thor.BytesToBytes32([]byte("v1"))
	holder := thor.Address{1}
	v, err := vault.New(id, thor.Address{2}, params.Duration30Days, 1, big.NewInt(0), big.NewInt(0), pp.Index)
	require.NoError(t, err)
	require.NoError(t, vaultSvc.Create(v))

	_, err = svc.UpdateIndex(holder, id, 1)
	require.NoError(t, err)
	snap, err := svc.UpdateIndex(holder, id, 1)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Position.AccStakingRewards.String())
}
