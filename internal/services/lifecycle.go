package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

type TeamRequest struct {
	TeamNo types.TeamNo `validate:"team_no"`
	// MemberIDs are the broadcasters on this side, the first one represents
	// the team.
	MemberIDs []string `validate:"min=1,max=2,dive,required"`
}

type StartChallengeRequest struct {
	StreamID       string              `validate:"required"`
	Type           types.ChallengeType `validate:"challenge_type"`
	RoundCount     uint32              `validate:"min=1"`
	RoundDuration  time.Duration       `validate:"gte=1s"`
	MaxCoinsPerWin uint64
	Teams          []TeamRequest `validate:"len=2,dive"`
}

func (s *Service) validateStartChallenge(req *StartChallengeRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	// durations are stored in whole seconds
	if req.RoundDuration%time.Second != 0 {
		return fmt.Errorf("round duration %s is not a whole number of seconds", req.RoundDuration)
	}

	teamSize, err := req.Type.TeamSize()
	if err != nil {
		return err
	}

	seenTeams := make(map[types.TeamNo]bool)
	seenMembers := make(map[string]bool)
	for _, team := range req.Teams {
		if seenTeams[team.TeamNo] {
			return fmt.Errorf("team %d is given twice", team.TeamNo)
		}
		seenTeams[team.TeamNo] = true

		if len(team.MemberIDs) != teamSize {
			return fmt.Errorf("team %d has %d members, a %s challenge needs %d",
				team.TeamNo, len(team.MemberIDs), req.Type, teamSize)
		}
		for _, member := range team.MemberIDs {
			if seenMembers[member] {
				return fmt.Errorf("broadcaster %s is on more than one side", member)
			}
			seenMembers[member] = true
		}
	}

	return nil
}

// StartChallenge persists a new active challenge with its teams and first
// round and schedules the first round end.
func (s *Service) StartChallenge(ctx context.Context, req *StartChallengeRequest) (*model.ChallengeDocument, error) {
	if req == nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "empty request")
	}
	if err := s.validateStartChallenge(req); err != nil {
		return nil, types.NewValidationError(err)
	}

	now := s.now()
	challenge := &model.ChallengeDocument{
		ID:             uuid.NewString(),
		Type:           req.Type,
		Status:         types.ChallengeStatusActive,
		StreamID:       req.StreamID,
		RoundCount:     req.RoundCount,
		CurrentRound:   1,
		RoundDuration:  int64(req.RoundDuration / time.Second),
		MaxCoinsPerWin: req.MaxCoinsPerWin,
		StartedAt:      now,
	}
	log := log.Ctx(ctx).With().Str("challenge_id", challenge.ID).Logger()

	teams := make([]*model.ChallengeTeamDocument, 0, len(req.Teams))
	for _, team := range req.Teams {
		teams = append(teams, &model.ChallengeTeamDocument{
			ID:             uuid.NewString(),
			ChallengeID:    challenge.ID,
			TeamNo:         team.TeamNo,
			UserID:         team.MemberIDs[0],
			MemberIDs:      team.MemberIDs,
			CreditedRounds: []uint32{},
		})
	}

	firstRound := &model.ChallengeRoundDocument{
		ID:          uuid.NewString(),
		ChallengeID: challenge.ID,
		RoundNumber: 1,
		StartAt:     now,
		EndAt:       now.Add(challenge.RoundDurationTime()),
	}

	// teams and round go first: a challenge document is only visible once
	// everything it points to exists
	if err := s.db.SaveChallengeTeams(ctx, teams); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to save challenge teams: %w", err))
	}
	if err := s.db.SaveChallengeRound(ctx, firstRound); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to save first round: %w", err))
	}
	if err := s.db.SaveChallenge(ctx, challenge); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to save challenge: %w", err))
	}

	err := s.tasks.Schedule(ctx, scheduler.NewAdvanceRoundTask(challenge.ID, 1, firstRound.EndAt))
	if err != nil {
		// a challenge without a scheduled round end would never finish
		cancelErr := s.db.UpdateChallengeStatus(ctx, challenge.ID,
			types.QualifiedStatesForCancel(), types.ChallengeStatusCancelled, db.WithEndedAt(now))
		if cancelErr != nil {
			log.Error().Err(cancelErr).Msg("failed to cancel challenge after scheduling failure")
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to schedule first round end: %w", err))
	}

	if err := s.db.SetStreamChallengeActive(ctx, challenge.StreamID, challenge.ID, true); err != nil {
		log.Error().Err(err).Str("stream_id", challenge.StreamID).Msg("failed to mark stream challenge active")
	}

	log.Info().
		Stringer("type", challenge.Type).
		Uint32("round_count", challenge.RoundCount).
		Int64("round_duration_sec", challenge.RoundDuration).
		Time("first_round_end", firstRound.EndAt).
		Msg("challenge started")

	return challenge, nil
}

// EndChallenge cancels an active challenge. Coins already credited to
// rounds stay where they are, counters of unfinished rounds are dropped.
func (s *Service) EndChallenge(ctx context.Context, challengeID string) error {
	log := log.Ctx(ctx).With().Str("challenge_id", challengeID).Logger()

	challenge, err := s.db.GetChallengeByID(ctx, challengeID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewNotFoundError(fmt.Sprintf("challenge %s not found", challengeID))
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to get challenge: %w", err))
	}
	if challenge.Status.IsTerminal() {
		return types.NewErrorWithMsg(http.StatusConflict, types.Conflict, fmt.Sprintf("challenge %s is already %s", challengeID, challenge.Status))
	}

	now := s.now()
	err = s.db.UpdateChallengeStatus(ctx, challengeID,
		types.QualifiedStatesForCancel(), types.ChallengeStatusCancelled, db.WithEndedAt(now))
	if err != nil {
		if db.IsNotFoundError(err) {
			// finished or cancelled since we read it
			return types.NewErrorWithMsg(http.StatusConflict, types.Conflict, fmt.Sprintf("challenge %s is no longer active", challengeID))
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to cancel challenge: %w", err))
	}
	metrics.RecordChallengeFinished(types.ChallengeStatusCancelled.String())

	// a firing that slips through sees the cancelled status and does nothing
	taskID := scheduler.AdvanceRoundTaskID(challengeID, challenge.CurrentRound)
	if err := s.tasks.Cancel(ctx, taskID); err != nil {
		log.Warn().Err(err).Str("task_id", taskID).Msg("failed to cancel round end task")
	}

	if err := s.db.SetStreamChallengeActive(ctx, challenge.StreamID, challengeID, false); err != nil {
		log.Error().Err(err).Str("stream_id", challenge.StreamID).Msg("failed to clear stream challenge flag")
	}

	rounds := make([]uint32, 0, challenge.CurrentRound+1)
	for n := uint32(1); n <= challenge.CurrentRound+1; n++ {
		rounds = append(rounds, n)
	}
	if err := s.counters.DeleteRoundCoins(ctx, challengeID, rounds...); err != nil {
		log.Warn().Err(err).Msg("failed to purge round counters")
	}

	ev := consumer.NewChallengeCancelledEvent(challengeID, challenge.StreamID, challenge.CurrentRound, now.Unix())
	if err := s.eventConsumer.PushChallengeCancelledEvent(ctx, ev); err != nil {
		log.Warn().Err(err).Msg("failed to push challenge cancelled event")
	}

	log.Info().Uint32("current_round", challenge.CurrentRound).Msg("challenge cancelled")
	return nil
}
