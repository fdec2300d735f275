// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_GetOrLoad_CachesOnMiss(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)

	calls := 0
	load := func(key string) (int, error) {
		calls++
		return len(key), nil
	}

	v, err := c.GetOrLoad("hello", load)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, calls)

	v, err = c.GetOrLoad("hello", load)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, calls, "second call should hit the cache, not the loader")
}

func TestLRU_Remove_InvalidatesEntry(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)

	c.Add("k", 1)
	_, ok := c.Get("k")
	require.True(t, ok)

	c.Remove("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c, err := New[int, int](2)
	require.NoError(t, err)

	c.Add(1, 1)
	c.Add(2, 2)
	c.Add(3, 3) // evicts 1

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}
