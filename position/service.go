// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"math/big"

	"github.com/mocaverse/stakingpool/log"
	"github.com/mocaverse/stakingpool/pool"
	"github.com/mocaverse/stakingpool/thor"
	"github.com/mocaverse/stakingpool/vault"
)

var logger = log.WithContext("pkg", "position")

// Service is the User Ledger's entry point. It wraps a vault.Service so
// every position update opens with the full pool -> vault prologue.
type Service struct {
	vault *vault.Service
	repo  *Repository
}

func NewService(vaultSvc *vault.Service, repo *Repository) *Service {
	return &Service{vault: vaultSvc, repo: repo}
}

// Snapshot is the result of bringing one position current, alongside the
// vault snapshot it was booked against.
type Snapshot struct {
	Position *Position
	Vault    *vault.Snapshot
}

// UpdateIndex implements update_user_indexes: advance the vault, then book
// this holder's share of principal and boost accruals. A position that
// has never staked is created on first touch, snapshotted to the vault's
// current per-unit indexes so it starts owed nothing.
func (s *Service) UpdateIndex(holder thor.Address, vaultID thor.Bytes32, now int64) (*Snapshot, error) {
	vaultSnap, err := s.vault.UpdateIndex(vaultID, now)
	if err != nil {
		return nil, err
	}

	key := Key{Holder: holder, Vault: vaultID}
	pos, ok := s.repo.Get(key)
	if !ok {
		pos = New(holder, vaultID, vaultSnap.Vault.RewardsPerToken, vaultSnap.Vault.BoostIndex)
		s.repo.Set(pos)
		return &Snapshot{Position: pos, Vault: vaultSnap}, nil
	}

	if pos.StakedPrincipal.Sign() > 0 && pos.UserIndex.Cmp(vaultSnap.Vault.RewardsPerToken) != 0 {
		acc := pool.RewardsFromIndex(pos.StakedPrincipal, vaultSnap.Vault.RewardsPerToken, pos.UserIndex)
		pos.AccStakingRewards = new(big.Int).Add(pos.AccStakingRewards, acc)
	}

	if len(pos.BoostIDs) > 0 && pos.UserBoostIndex.Cmp(vaultSnap.Vault.BoostIndex) != 0 {
		diff := new(big.Int).Sub(vaultSnap.Vault.BoostIndex, pos.UserBoostIndex)
		acc := new(big.Int).Mul(diff, big.NewInt(int64(len(pos.BoostIDs))))
		pos.AccBoostRewards = new(big.Int).Add(pos.AccBoostRewards, acc)
	}

	pos.UserIndex = new(big.Int).Set(vaultSnap.Vault.RewardsPerToken)
	pos.UserBoostIndex = new(big.Int).Set(vaultSnap.Vault.BoostIndex)

	s.repo.Set(pos)
	logger.Debug("booked user accruals", "holder", holder.String(), "vault", vaultID.String())
	return &Snapshot{Position: pos, Vault: vaultSnap}, nil
}

// Get returns a position without advancing any index, or (nil, false).
func (s *Service) Get(holder thor.Address, vaultID thor.Bytes32) (*Position, bool) {
	return s.repo.Get(Key{Holder: holder, Vault: vaultID})
}

// Write commits a position a caller has already advanced and mutated.
func (s *Service) Write(p *Position) {
	s.repo.Set(p)
}
