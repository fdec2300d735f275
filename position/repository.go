// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"github.com/mocaverse/stakingpool/ledger"
)

// Repository holds every position, keyed by (holder, vault).
type Repository struct {
	table *ledger.Table[Key, *Position]
}

func NewRepository() *Repository {
	return &Repository{table: ledger.NewTable[Key, *Position]()}
}

// Get returns a clone of the position at key, or (nil, false) if absent.
func (r *Repository) Get(key Key) (*Position, bool) {
	p, ok := r.table.Get(key)
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Set creates or overwrites the position at its own key.
func (r *Repository) Set(p *Position) {
	isNew := !r.table.Has(p.Key())
	r.table.Set(p.Key(), p, isNew)
}
