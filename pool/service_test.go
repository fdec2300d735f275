// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	p := New(1, 1+120*86400, big.NewInt(1e18), new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18)))
	return NewService(NewRepository(p))
}

func TestUpdateIndex_NoOpAtSameTimestamp(t *testing.T) {
	svc := newService(t)
	snap, err := svc.UpdateIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Pool.Index.String())
	assert.EqualValues(t, 1, snap.Pool.LastUpdateTimestamp)
}

func TestUpdateIndex_RejectsTimeRegression(t *testing.T) {
	svc := newService(t)
	_, err := svc.UpdateIndex(5)
	require.NoError(t, err)
	_, err = svc.UpdateIndex(3)
	assert.Error(t, err)
}

func TestUpdateIndex_NoAdvanceWithoutAllocPoints(t *testing.T) {
	svc := newService(t)
	snap, err := svc.UpdateIndex(100)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Pool.Index.String())
	assert.Equal(t, "0", snap.Pool.RewardsEmitted.String())
}

func TestUpdateIndex_AdvancesWithAllocPoints(t *testing.T) {
	svc := newService(t)
	require.NoError(t, svc.AddAllocPoints(new(big.Int).Mul(big.NewInt(5000), big.NewInt(1e18))))

	snap, err := svc.UpdateIndex(4)
	require.NoError(t, err)
	assert.Equal(t, "600000000000000", snap.Pool.Index.String()) // 3 seconds * 1e18 * 1e18 / 5000e18
	assert.Equal(t, "3000000000000000000", snap.Pool.RewardsEmitted.String())
}

func TestAddAllocPoints_RejectsNegativeTotal(t *testing.T) {
	svc := newService(t)
	err := svc.AddAllocPoints(big.NewInt(-1))
	assert.Error(t, err)
}
