// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mocaverse/stakingpool/thor"
)

func TestNew_SnapshotsIndexes(t *testing.T) {
	p := New(thor.Address{}, thor.Bytes32{}, big.NewInt(42), big.NewInt(7))
	assert.Equal(t, "42", p.UserIndex.String())
	assert.Equal(t, "7", p.UserBoostIndex.String())
	assert.False(t, p.HasHoldings())
}

func TestClone_Independence(t *testing.T) {
	p := New(thor.Address{}, thor.Bytes32{}, big.NewInt(0), big.NewInt(0))
	p.BoostIDs = []thor.Bytes32{thor.BytesToBytes32([]byte("b1"))}
	c := p.Clone()
	c.BoostIDs[0] = thor.BytesToBytes32([]byte("b2"))
	assert.NotEqual(t, c.BoostIDs[0], p.BoostIDs[0])
}

func TestHasHoldings(t *testing.T) {
	p := New(thor.Address{}, thor.Bytes32{}, big.NewInt(0), big.NewInt(0))
	assert.False(t, p.HasHoldings())
	p.StakedPrincipal = big.NewInt(1)
	assert.True(t, p.HasHoldings())
}
