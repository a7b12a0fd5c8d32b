package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamMeyva/challenge-engine/internal/types"
)

func TestNewChallenge(t *testing.T) {
	challenge := NewChallenge(types.ChallengeType2v2, 3, time.Minute)

	assert.Equal(t, types.ChallengeStatusActive, challenge.Status)
	assert.Equal(t, uint32(1), challenge.CurrentRound)
	assert.Equal(t, int64(60), challenge.RoundDuration)
	assert.GreaterOrEqual(t, challenge.MaxCoinsPerWin, uint64(1))
	assert.LessOrEqual(t, challenge.MaxCoinsPerWin, uint64(1000))

	teams := NewTeams(challenge)
	require.Len(t, teams, 2)
	for _, team := range teams {
		assert.Len(t, team.MemberIDs, 2)
		assert.Equal(t, team.MemberIDs[0], team.UserID)
		assert.NotNil(t, team.CreditedRounds)
	}
}
