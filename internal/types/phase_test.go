package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTransition(t *testing.T) {
	tests := []struct {
		name         string
		status       ChallengeStatus
		roundCount   uint32
		currentRound uint32
		firedRound   uint32
		expectedKind TransitionKind
		expectedNext uint32
	}{
		{"cancelled challenge", ChallengeStatusCancelled, 3, 1, 1, TransitionNoop, 0},
		{"finished challenge", ChallengeStatusFinished, 3, 3, 3, TransitionNoop, 0},
		{"zero round", ChallengeStatusActive, 3, 1, 0, TransitionNoop, 0},
		{"open second round", ChallengeStatusActive, 3, 1, 1, TransitionOpenNextRound, 2},
		{"open third round", ChallengeStatusActive, 3, 2, 2, TransitionOpenNextRound, 3},
		{"retry after current round was bumped", ChallengeStatusActive, 3, 2, 1, TransitionOpenNextRound, 2},
		{"stale firing", ChallengeStatusActive, 5, 4, 1, TransitionNoop, 0},
		{"firing ahead of challenge", ChallengeStatusActive, 3, 1, 2, TransitionNoop, 0},
		{"last round finalizes", ChallengeStatusActive, 3, 3, 3, TransitionFinalize, 0},
		{"single round challenge", ChallengeStatusActive, 1, 1, 1, TransitionFinalize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NextTransition(tt.status, tt.roundCount, tt.currentRound, tt.firedRound)
			assert.Equal(t, tt.expectedKind, tr.Kind)
			assert.Equal(t, tt.expectedNext, tr.NextRound)
			if tr.Kind == TransitionNoop {
				assert.NotEmpty(t, tr.Reason)
			}
		})
	}
}

func TestPhaseOf(t *testing.T) {
	assert.Equal(t, "round_active(2)", PhaseOf(ChallengeStatusActive, 2).String())
	assert.Equal(t, PhaseFinished, PhaseOf(ChallengeStatusFinished, 3).Kind)
	assert.Equal(t, PhaseCancelled, PhaseOf(ChallengeStatusCancelled, 1).Kind)
}
