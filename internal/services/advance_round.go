package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// AdvanceRound handles the end of roundNumber. It either opens the next
// round and schedules its end, or finalizes the challenge. Firings for
// missing, terminal or out of date challenges are no-ops. A returned error
// means the firing should be retried.
func (s *Service) AdvanceRound(ctx context.Context, challengeID string, roundNumber uint32) error {
	log := log.Ctx(ctx).With().
		Str("challenge_id", challengeID).
		Uint32("round", roundNumber).
		Logger()

	challenge, err := s.db.GetChallengeByID(ctx, challengeID)
	if err != nil {
		if db.IsNotFoundError(err) {
			log.Warn().Msg("challenge not found, skipping round end")
			return nil
		}
		return fmt.Errorf("failed to get challenge %s: %w", challengeID, err)
	}

	transition := types.NextTransition(challenge.Status, challenge.RoundCount, challenge.CurrentRound, roundNumber)
	log.Debug().
		Stringer("phase", challenge.Phase()).
		Str("transition", string(transition.Kind)).
		Msg("round end fired")

	switch transition.Kind {
	case types.TransitionOpenNextRound:
		return s.openNextRound(ctx, &log, challenge, transition.NextRound)
	case types.TransitionFinalize:
		return s.finalizeChallenge(ctx, &log, challenge, roundNumber)
	default:
		log.Info().Str("reason", transition.Reason).Msg("round end ignored")
		return nil
	}
}

func (s *Service) openNextRound(ctx context.Context, log *zerolog.Logger, challenge *model.ChallengeDocument, next uint32) error {
	now := s.now()
	round := &model.ChallengeRoundDocument{
		ID:          uuid.NewString(),
		ChallengeID: challenge.ID,
		RoundNumber: next,
		StartAt:     now,
		EndAt:       now.Add(challenge.RoundDurationTime()),
	}

	err := s.db.SaveChallengeRound(ctx, round)
	if err != nil {
		if !db.IsRoundOutOfOrderError(err) && !db.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to save round %d: %w", next, err)
		}
		// an earlier attempt of this firing already opened the round
		existing, getErr := s.db.GetChallengeRound(ctx, challenge.ID, next)
		if getErr != nil {
			return fmt.Errorf("round %d was rejected (%w) and could not be read: %w", next, err, getErr)
		}
		round = existing
	}

	if err := s.db.AdvanceChallengeRound(ctx, challenge.ID, next); err != nil {
		if db.IsNotFoundError(err) {
			log.Info().Msg("challenge stopped being active while opening the next round")
			return nil
		}
		return fmt.Errorf("failed to advance challenge to round %d: %w", next, err)
	}

	if err := s.tasks.Schedule(ctx, scheduler.NewAdvanceRoundTask(challenge.ID, next, round.EndAt)); err != nil {
		return fmt.Errorf("failed to schedule end of round %d: %w", next, err)
	}

	log.Info().
		Uint32("next_round", next).
		Time("next_round_end", round.EndAt).
		Msg("round opened")
	return nil
}

func (s *Service) finalizeChallenge(ctx context.Context, log *zerolog.Logger, challenge *model.ChallengeDocument, lastRound uint32) error {
	var total uint64
	for n := uint32(1); n <= lastRound; n++ {
		result, err := s.AggregateRound(ctx, challenge, n)
		if errors.Is(err, ErrTeamCreditIncomplete) {
			// the round total is stored, finishing now would leave it off the
			// challenge total while some team already holds it
			return fmt.Errorf("failed to finalize challenge: %w", err)
		}
		if err != nil {
			// the round counts as zero, its counter is kept for inspection
			log.Error().Err(err).Uint32("aggregated_round", n).Msg("failed to aggregate round")
			continue
		}
		total += result.Totals.Total()
	}

	endedAt := s.now()
	last, err := s.db.GetChallengeRound(ctx, challenge.ID, lastRound)
	if err != nil {
		log.Warn().Err(err).Msg("last round not found, using current time as end")
	} else {
		endedAt = last.EndAt
	}

	err = s.db.UpdateChallengeStatus(ctx, challenge.ID,
		types.QualifiedStatesForFinish(), types.ChallengeStatusFinished,
		db.WithTotalCoins(total), db.WithEndedAt(endedAt))
	if err != nil {
		if db.IsNotFoundError(err) {
			log.Info().Msg("challenge stopped being active while finalizing")
			return nil
		}
		return fmt.Errorf("failed to finish challenge: %w", err)
	}
	metrics.RecordChallengeFinished(types.ChallengeStatusFinished.String())

	// from here on the challenge is finished, a retry would be a no-op, so
	// failures are only logged
	if err := s.db.SetStreamChallengeActive(ctx, challenge.StreamID, challenge.ID, false); err != nil {
		log.Error().Err(err).Str("stream_id", challenge.StreamID).Msg("failed to clear stream challenge flag")
	}

	s.pushChallengeFinished(ctx, log, challenge, total, endedAt.Unix())

	log.Info().
		Uint64("total_coins_earned", total).
		Time("ended_at", endedAt).
		Msg("challenge finished")
	return nil
}

func (s *Service) pushChallengeFinished(
	ctx context.Context, log *zerolog.Logger, challenge *model.ChallengeDocument, total uint64, endedAt int64,
) {
	teams, err := s.db.GetChallengeTeams(ctx, challenge.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load teams for finished event")
		return
	}

	var teamTotals types.TeamCoins
	results := make([]consumer.TeamResult, 0, len(teams))
	for _, team := range teams {
		teamTotals = teamTotals.Add(team.TeamNo, team.TotalCoinsEarned)
		results = append(results, consumer.TeamResult{
			TeamNo:           uint8(team.TeamNo),
			UserID:           team.UserID,
			MemberIDs:        team.MemberIDs,
			TotalCoinsEarned: team.TotalCoinsEarned,
			RoundsWon:        team.WinCount,
			CoinWins:         types.CoinWins(team.TotalCoinsEarned, challenge.MaxCoinsPerWin),
		})
	}

	ev := consumer.NewChallengeFinishedEvent(
		challenge.ID, challenge.StreamID, challenge.RoundCount, total, results, teamNoPtr(teamTotals.Winner()), endedAt,
	)
	if err := s.eventConsumer.PushChallengeFinishedEvent(ctx, ev); err != nil {
		log.Warn().Err(err).Msg("failed to push challenge finished event")
	}
}

func teamNoPtr(team *types.TeamNo) *uint8 {
	if team == nil {
		return nil
	}
	v := uint8(*team)
	return &v
}
