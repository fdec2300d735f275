// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package engine implements the Operations Layer: the public verbs of the
// staking pool, each running the pool -> vault -> user prologue before
// applying its own business rules and writing state back atomically.
package engine

import (
	"math/big"
	"sync"

	"github.com/mocaverse/stakingpool/errorkind"
	"github.com/mocaverse/stakingpool/external"
	"github.com/mocaverse/stakingpool/log"
	"github.com/mocaverse/stakingpool/metrics"
	"github.com/mocaverse/stakingpool/pool"
	"github.com/mocaverse/stakingpool/position"
	"github.com/mocaverse/stakingpool/thor"
	"github.com/mocaverse/stakingpool/vault"
)

var logger = log.WithContext("pkg", "engine")

// Engine is the single-writer entry point for every mutating operation.
// One Engine serves exactly one pool instance.
type Engine struct {
	mu sync.Mutex

	pool     *pool.Service
	vault    *vault.Service
	position *position.Service

	self   thor.Address // the pool's own address: transfer_from destination, mint basis
	router thor.Address
	owner  thor.Address

	points    external.PointsLedger
	registry  external.BoostRegistry
	rewards   external.RewardCustodian
	principal external.PrincipalCustodian
	receipt   external.ReceiptToken

	idSalt uint64
}

// Collaborators bundles the external interfaces injected at construction.
type Collaborators struct {
	Points    external.PointsLedger
	Registry  external.BoostRegistry
	Rewards   external.RewardCustodian
	Principal external.PrincipalCustodian
	Receipt   external.ReceiptToken
}

// New wires a fresh Engine around an already-constructed pool. It asserts
// the custodian's envelope covers the pool's total_rewards, per §6. self is
// the pool contract's own address, used as the transfer_from destination
// when principal moves in.
func New(
	self, router, owner thor.Address,
	poolSvc *pool.Service,
	vaultSvc *vault.Service,
	positionSvc *position.Service,
	collab Collaborators,
) (*Engine, error) {
	if isZeroAddress(router) {
		return nil, errorkind.ErrInvalidRouter
	}

	p, err := poolSvc.Get()
	if err != nil {
		return nil, err
	}
	custodianTotal, err := collab.Rewards.TotalVaultRewards()
	if err != nil {
		return nil, err
	}
	if custodianTotal.Cmp(p.TotalRewards) < 0 {
		return nil, errInsufficientEnvelope
	}

	return &Engine{
		pool:      poolSvc,
		vault:     vaultSvc,
		position:  positionSvc,
		self:      self,
		router:    router,
		owner:     owner,
		points:    collab.Points,
		registry:  collab.Registry,
		rewards:   collab.Rewards,
		principal: collab.Principal,
		receipt:   collab.Receipt,
	}, nil
}

func isZeroAddress(a thor.Address) bool {
	return a == thor.Address{}
}

// authorize enforces §4.5's caller model: the caller is either the
// front-door router (acting on behalf of onBehalf) or the owner key.
func (e *Engine) authorize(caller, onBehalf thor.Address) error {
	if caller == e.router || caller == e.owner {
		return nil
	}
	return errIncorrectCaller
}

// authorizeOwner enforces the owner-only operations (pause/unpause/freeze).
func (e *Engine) authorizeOwner(caller thor.Address) error {
	if caller == e.owner {
		return nil
	}
	return errIncorrectCaller
}

// nextVaultID derives a deterministic vault id from the creator, the
// creation timestamp and a monotonically increasing salt, matching
// create_vault's "generate, retry on collision" contract.
func (e *Engine) nextVaultID(onBehalf thor.Address, now int64) thor.Bytes32 {
	e.idSalt++
	var buf [8]byte
	putInt64(buf[:], now)
	var saltBuf [8]byte
	putInt64(saltBuf[:], int64(e.idSalt))
	return thor.Blake2b(onBehalf.Bytes(), buf[:], saltBuf[:])
}

// recordPoolGauges samples the pool's emitted-rewards and alloc-point
// totals into the process metrics. Called after stake_tokens, stake_boosts
// (when principal is staked) and update_emission; index advancement and a
// vault's final update in other operations are not sampled. A float64
// conversion is lossy at the far tail of a big.Int but the gauges exist for
// dashboards, not for settlement.
func (e *Engine) recordPoolGauges() {
	p, err := e.pool.Get()
	if err != nil {
		return
	}
	rewardsEmitted, _ := new(big.Float).SetInt(p.RewardsEmitted).Float64()
	totalAlloc, _ := new(big.Float).SetInt(p.TotalAllocPoints).Float64()
	metrics.RewardsEmitted.Set(rewardsEmitted)
	metrics.TotalAllocPoints.Set(totalAlloc)
}

func putInt64(buf []byte, v int64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}
