// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"sync"

	"github.com/pkg/errors"
)

// Repository holds the single pool instance behind a lock. The engine
// serializes every mutating operation through its own lock (see the
// engine package), so the lock here only protects against read access
// racing a write from outside that discipline, e.g. metrics exporters.
type Repository struct {
	mu   sync.RWMutex
	pool *Pool
}

func NewRepository(p *Pool) *Repository {
	return &Repository{pool: p}
}

// Get returns a copy of the current pool state.
func (r *Repository) Get() (*Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.pool == nil {
		return nil, errors.New("pool: not initialized")
	}
	return r.pool.Clone(), nil
}

// Set writes back a copy of the pool state computed by a mutating
// operation, so later changes to p do not reach the stored state.
func (r *Repository) Set(p *Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pool = p.Clone()
	return nil
}
