// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import "errors"

// ErrCollision is returned by Repository.Create when the generated id is
// already in use, so callers (engine.CreateVault) know to retry with a
// fresh salt rather than treating it as a hard failure.
var ErrCollision = errors.New("vault: id already exists")

var errCollision = ErrCollision
