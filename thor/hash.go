// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"github.com/ethereum/go-ethereum/crypto/blake2b"
)

// Blake2b computes blake2b-256 checksum for given data.
func Blake2b(data ...[]byte) (h Bytes32) {
	hasher, _ := blake2b.New256(nil)
	for _, b := range data {
		hasher.Write(b)
	}
	hasher.Sum(h[:0])
	return h
}
