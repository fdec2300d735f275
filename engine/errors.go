// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package engine

import (
	"errors"

	"github.com/mocaverse/stakingpool/errorkind"
)

var (
	errIncorrectCaller     = errorkind.ErrIncorrectCaller
	errInsufficientEnvelope = errors.New("engine: custodian envelope is smaller than pool total_rewards")
)
