// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package external

import (
	"math/big"
	"sync"

	"github.com/mocaverse/stakingpool/thor"
)

// MockRewardCustodian is an in-memory RewardCustodian for tests. It tracks
// the envelope it was seeded with and every payout it has made.
type MockRewardCustodian struct {
	mu       sync.Mutex
	Envelope *big.Int
	Paid     map[thor.Address]*big.Int
}

func NewMockRewardCustodian(envelope *big.Int) *MockRewardCustodian {
	return &MockRewardCustodian{Envelope: envelope, Paid: make(map[thor.Address]*big.Int)}
}

func (m *MockRewardCustodian) TotalVaultRewards() (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.Envelope), nil
}

func (m *MockRewardCustodian) PayRewards(recipient thor.Address, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	paid, ok := m.Paid[recipient]
	if !ok {
		paid = new(big.Int)
		m.Paid[recipient] = paid
	}
	paid.Add(paid, amount)
	return nil
}

// MockPrincipalCustodian is an in-memory fungible ledger for tests.
type MockPrincipalCustodian struct {
	mu       sync.Mutex
	Balances map[thor.Address]*big.Int
}

func NewMockPrincipalCustodian() *MockPrincipalCustodian {
	return &MockPrincipalCustodian{Balances: make(map[thor.Address]*big.Int)}
}

func (m *MockPrincipalCustodian) bal(addr thor.Address) *big.Int {
	b, ok := m.Balances[addr]
	if !ok {
		b = new(big.Int)
		m.Balances[addr] = b
	}
	return b
}

func (m *MockPrincipalCustodian) TransferFrom(from, to thor.Address, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bal(from).Sub(m.bal(from), amount)
	m.bal(to).Add(m.bal(to), amount)
	return nil
}

func (m *MockPrincipalCustodian) Transfer(to thor.Address, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bal(to).Add(m.bal(to), amount)
	return nil
}

// MockBoostRegistry records stake/unstake calls for assertions in tests.
type MockBoostRegistry struct {
	mu        sync.Mutex
	Staked    map[thor.Bytes32][]thor.Bytes32
	Unstaked  map[thor.Bytes32][]thor.Bytes32
}

func NewMockBoostRegistry() *MockBoostRegistry {
	return &MockBoostRegistry{
		Staked:   make(map[thor.Bytes32][]thor.Bytes32),
		Unstaked: make(map[thor.Bytes32][]thor.Bytes32),
	}
}

func (m *MockBoostRegistry) RecordStake(_ thor.Address, ids []thor.Bytes32, vaultID thor.Bytes32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Staked[vaultID] = append(m.Staked[vaultID], ids...)
	return nil
}

func (m *MockBoostRegistry) RecordUnstake(_ thor.Address, ids []thor.Bytes32, vaultID thor.Bytes32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unstaked[vaultID] = append(m.Unstaked[vaultID], ids...)
	return nil
}

// MockReceiptToken is an in-memory 1:1 receipt-token mirror for tests.
type MockReceiptToken struct {
	mu      sync.Mutex
	Supply  map[thor.Address]*big.Int
}

func NewMockReceiptToken() *MockReceiptToken {
	return &MockReceiptToken{Supply: make(map[thor.Address]*big.Int)}
}

func (m *MockReceiptToken) Mint(to thor.Address, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Supply[to]
	if !ok {
		b = new(big.Int)
		m.Supply[to] = b
	}
	b.Add(b, amount)
	return nil
}

func (m *MockReceiptToken) Burn(from thor.Address, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Supply[from]
	if !ok {
		return nil
	}
	b.Sub(b, amount)
	return nil
}
