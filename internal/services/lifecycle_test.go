package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
	"github.com/HamMeyva/challenge-engine/internal/types"
	"github.com/HamMeyva/challenge-engine/testutil"
)

func newStartRequest() *StartChallengeRequest {
	return &StartChallengeRequest{
		StreamID:       "stream-1",
		Type:           types.ChallengeType1v1,
		RoundCount:     3,
		RoundDuration:  time.Minute,
		MaxCoinsPerWin: 100,
		Teams: []TeamRequest{
			{TeamNo: types.Team1, MemberIDs: []string{"alice"}},
			{TeamNo: types.Team2, MemberIDs: []string{"bob"}},
		},
	}
}

func TestStartChallenge_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *StartChallengeRequest)
	}{
		{"unknown type", func(r *StartChallengeRequest) { r.Type = "3v3" }},
		{"no rounds", func(r *StartChallengeRequest) { r.RoundCount = 0 }},
		{"sub-second rounds", func(r *StartChallengeRequest) { r.RoundDuration = 500 * time.Millisecond }},
		{"fractional seconds", func(r *StartChallengeRequest) { r.RoundDuration = 1500 * time.Millisecond }},
		{"missing stream", func(r *StartChallengeRequest) { r.StreamID = "" }},
		{"one team", func(r *StartChallengeRequest) { r.Teams = r.Teams[:1] }},
		{"invalid team number", func(r *StartChallengeRequest) { r.Teams[1].TeamNo = 3 }},
		{"same team twice", func(r *StartChallengeRequest) { r.Teams[1].TeamNo = types.Team1 }},
		{"broadcaster on both sides", func(r *StartChallengeRequest) { r.Teams[1].MemberIDs = []string{"alice"} }},
		{"2v2 with single members", func(r *StartChallengeRequest) { r.Type = types.ChallengeType2v2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newMockedService(t)
			req := newStartRequest()
			tt.mutate(req)

			_, err := s.StartChallenge(t.Context(), req)
			require.Error(t, err)
			assert.True(t, types.HasErrorCode(err, types.ValidationError))
		})
	}
}

func TestStartChallenge(t *testing.T) {
	t.Run("persists and schedules the first round end", func(t *testing.T) {
		s, m := newMockedService(t)
		req := newStartRequest()
		req.Type = types.ChallengeType2v2
		req.Teams[0].MemberIDs = []string{"alice", "carol"}
		req.Teams[1].MemberIDs = []string{"bob", "dave"}
		endAt := fixedNow.Add(time.Minute)

		m.db.On("SaveChallengeTeams", mock.Anything, mock.MatchedBy(func(teams []*model.ChallengeTeamDocument) bool {
			return len(teams) == 2 &&
				teams[0].UserID == "alice" && teams[0].HasMember("carol") &&
				teams[1].UserID == "bob" && teams[1].HasMember("dave")
		})).Return(nil).Once()
		m.db.On("SaveChallengeRound", mock.Anything, mock.MatchedBy(func(r *model.ChallengeRoundDocument) bool {
			return r.RoundNumber == 1 && r.StartAt.Equal(fixedNow) && r.EndAt.Equal(endAt)
		})).Return(nil).Once()
		m.db.On("SaveChallenge", mock.Anything, mock.MatchedBy(func(c *model.ChallengeDocument) bool {
			return c.Status == types.ChallengeStatusActive && c.CurrentRound == 1 && c.RoundDuration == 60
		})).Return(nil).Once()
		m.tasks.On("Schedule", mock.Anything, mock.MatchedBy(func(task scheduler.Task) bool {
			return task.Kind == scheduler.KindAdvanceRound && task.Payload.RoundNumber == 1 && task.FireAt.Equal(endAt)
		})).Return(nil).Once()
		m.db.On("SetStreamChallengeActive", mock.Anything, req.StreamID, mock.Anything, true).Return(nil).Once()

		challenge, err := s.StartChallenge(t.Context(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, challenge.ID)
		assert.Equal(t, req.StreamID, challenge.StreamID)
		assert.Equal(t, types.PhaseRoundActive, challenge.Phase().Kind)
	})

	t.Run("scheduling failure cancels the challenge", func(t *testing.T) {
		s, m := newMockedService(t)
		req := newStartRequest()

		m.db.On("SaveChallengeTeams", mock.Anything, mock.Anything).Return(nil).Once()
		m.db.On("SaveChallengeRound", mock.Anything, mock.Anything).Return(nil).Once()
		m.db.On("SaveChallenge", mock.Anything, mock.Anything).Return(nil).Once()
		m.tasks.On("Schedule", mock.Anything, mock.Anything).Return(errors.New("task store down")).Once()
		m.db.On("UpdateChallengeStatus", mock.Anything, mock.Anything,
			types.QualifiedStatesForCancel(), types.ChallengeStatusCancelled, mock.Anything,
		).Return(nil).Once()

		_, err := s.StartChallenge(t.Context(), req)
		assert.True(t, types.HasErrorCode(err, types.InternalServiceError))
		m.db.AssertNotCalled(t, "SetStreamChallengeActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEndChallenge(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		s, m := newMockedService(t)
		m.db.On("GetChallengeByID", mock.Anything, "nope").
			Return(nil, &db.NotFoundError{Key: "nope", Message: "not found"}).Once()

		err := s.EndChallenge(t.Context(), "nope")
		assert.True(t, types.HasErrorCode(err, types.NotFound))
	})

	t.Run("already finished", func(t *testing.T) {
		s, m := newMockedService(t)
		challenge := testutil.NewChallenge(types.ChallengeType1v1, 3, time.Minute)
		challenge.Status = types.ChallengeStatusFinished
		m.db.On("GetChallengeByID", mock.Anything, challenge.ID).Return(challenge, nil).Once()

		err := s.EndChallenge(t.Context(), challenge.ID)
		assert.True(t, types.HasErrorCode(err, types.Conflict))
	})

	t.Run("cancels an active challenge", func(t *testing.T) {
		s, m := newMockedService(t)
		challenge := testutil.NewChallenge(types.ChallengeType1v1, 3, time.Minute)
		challenge.CurrentRound = 2

		m.db.On("GetChallengeByID", mock.Anything, challenge.ID).Return(challenge, nil).Once()
		m.db.On("UpdateChallengeStatus", mock.Anything, challenge.ID,
			types.QualifiedStatesForCancel(), types.ChallengeStatusCancelled, mock.Anything,
		).Return(nil).Once()
		m.tasks.On("Cancel", mock.Anything, scheduler.AdvanceRoundTaskID(challenge.ID, 2)).Return(nil).Once()
		m.db.On("SetStreamChallengeActive", mock.Anything, challenge.StreamID, challenge.ID, false).Return(nil).Once()
		m.counters.On("DeleteRoundCoins", mock.Anything, challenge.ID, uint32(1), uint32(2), uint32(3)).Return(nil).Once()
		m.events.On("PushChallengeCancelledEvent", mock.Anything, mock.MatchedBy(func(ev *consumer.ChallengeCancelledEvent) bool {
			return ev.ChallengeID == challenge.ID && ev.CurrentRound == 2 && ev.CancelledAt == fixedNow.Unix()
		})).Return(nil).Once()

		require.NoError(t, s.EndChallenge(t.Context(), challenge.ID))
	})

	t.Run("lost race against finalize", func(t *testing.T) {
		s, m := newMockedService(t)
		challenge := testutil.NewChallenge(types.ChallengeType1v1, 1, time.Minute)

		m.db.On("GetChallengeByID", mock.Anything, challenge.ID).Return(challenge, nil).Once()
		m.db.On("UpdateChallengeStatus", mock.Anything, challenge.ID,
			types.QualifiedStatesForCancel(), types.ChallengeStatusCancelled, mock.Anything,
		).Return(&db.NotFoundError{Key: challenge.ID, Message: "not active"}).Once()

		err := s.EndChallenge(t.Context(), challenge.ID)
		assert.True(t, types.HasErrorCode(err, types.Conflict))
		m.tasks.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})
}
