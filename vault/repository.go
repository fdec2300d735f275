// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import (
	"github.com/mocaverse/stakingpool/cache"
	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/ledger"
	"github.com/mocaverse/stakingpool/thor"
)

// creatorIndexSize bounds how many creators' vault lists stay hot; a
// query for a creator outside this window falls back to a table scan.
const creatorIndexSize = 256

// Repository holds every vault, keyed by its id.
type Repository struct {
	table *ledger.Table[thor.Bytes32, *Vault]

	// byCreator caches the vault id list for recently-queried creators.
	// create invalidates the single affected entry; nothing else mutates
	// a vault's creator, so no other path needs to invalidate it.
	byCreator *cache.LRU[thor.Address, []thor.Bytes32]
}

func NewRepository() *Repository {
	idx, err := cache.New[thor.Address, []thor.Bytes32](creatorIndexSize)
	if err != nil {
		// Only fails on a non-positive size, which creatorIndexSize never is.
		panic(err)
	}
	return &Repository{
		table:     ledger.NewTable[thor.Bytes32, *Vault](),
		byCreator: idx,
	}
}

// Get returns a clone of the vault with id, or ErrNonExistentVault.
func (r *Repository) Get(id thor.Bytes32) (*Vault, error) {
	v, ok := r.table.Get(id)
	if !ok {
		return nil, errorkind.ErrNonExistentVault
	}
	return v.Clone(), nil
}

// Has reports whether a vault with id exists.
func (r *Repository) Has(id thor.Bytes32) bool {
	return r.table.Has(id)
}

// Create stores a brand new vault. Fails if the id already exists, so
// callers can retry id generation on collision per §4.5 create_vault.
func (r *Repository) Create(v *Vault) error {
	if r.table.Has(v.ID) {
		return errCollision
	}
	r.table.Set(v.ID, v, ledger.New)
	r.byCreator.Remove(v.Creator)
	return nil
}

// ByCreator lists every vault id created by creator, reading through a
// bounded LRU so repeated lookups don't re-scan the whole table each time.
// No engine verb calls this today: it is a router-facing seam for a
// creator-dashboard query (list-my-vaults) that sits outside the
// mutation-only operations this engine exposes, exercised directly by its
// own tests in the meantime.
func (r *Repository) ByCreator(creator thor.Address) []thor.Bytes32 {
	ids, _ := r.byCreator.GetOrLoad(creator, func(creator thor.Address) ([]thor.Bytes32, error) {
		var found []thor.Bytes32
		r.table.Range(func(id thor.Bytes32, v *Vault) bool {
			if v.Creator == creator {
				found = append(found, id)
			}
			return true
		})
		return found, nil
	})
	return ids
}

// Set writes back a vault a caller has already advanced and mutated.
func (r *Repository) Set(v *Vault) error {
	if !r.table.Has(v.ID) {
		return errorkind.ErrNonExistentVault
	}
	r.table.Set(v.ID, v, ledger.Existing)
	return nil
}

// Range iterates every stored vault. fn returning false stops iteration.
func (r *Repository) Range(fn func(id thor.Bytes32, v *Vault) bool) {
	r.table.Range(func(id thor.Bytes32, v *Vault) bool {
		return fn(id, v)
	})
}
