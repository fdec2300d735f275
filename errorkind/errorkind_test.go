// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package errorkind

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKind_MatchesSentinelThroughWrap(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "staking_ended", Kind(ErrStakingEnded))
	assert.Equal(t, "invalid_emission_parameters", Kind(pkgerrors.Wrap(ErrInvalidEmissionParameters, "timestamp 5 precedes last update 4")))
}

func TestKind_UnknownErrorFallsBackToInternal(t *testing.T) {
	assert.Equal(t, "internal", Kind(pkgerrors.New("engine: custodian envelope too small")))
}
