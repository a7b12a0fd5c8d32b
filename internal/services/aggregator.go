package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// ErrTeamCreditIncomplete is returned when a round's totals are stored but
// not every team has been credited yet. Aggregating the round again
// completes the credits.
var ErrTeamCreditIncomplete = errors.New("round team credit incomplete")

type RoundResult struct {
	RoundNumber uint32
	Totals      types.TeamCoins
	// Winner is nil on a tie.
	Winner *types.TeamNo
}

// AggregateRound turns the coin counter of a round into per team totals,
// stores them on the round and credits the teams. Running it again for the
// same round returns the stored result and credits nothing twice.
func (s *Service) AggregateRound(ctx context.Context, challenge *model.ChallengeDocument, roundNumber uint32) (result *RoundResult, err error) {
	startTime := time.Now()
	defer func() {
		metrics.RecordRoundAggregationDuration(time.Since(startTime), err != nil)
	}()

	log := log.Ctx(ctx).With().
		Str("challenge_id", challenge.ID).
		Uint32("round", roundNumber).
		Logger()

	round, err := s.db.GetChallengeRound(ctx, challenge.ID, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get round %d: %w", roundNumber, err)
	}

	teams, err := s.db.GetChallengeTeams(ctx, challenge.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	freshlyAggregated := false
	if !round.IsAggregated() {
		contributions, err := s.counters.GetRoundCoins(ctx, challenge.ID, roundNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to read round counter: %w", err)
		}

		totals, orphans := sumByTeam(contributions, teams)
		if len(orphans) > 0 {
			metrics.AddOrphanContributions(len(orphans))
			log.Warn().Strs("recipients", orphans).Msg("dropping coins of recipients outside the challenge")
		}

		updated, err := s.db.UpdateRoundAggregation(ctx, challenge.ID, roundNumber, totals, totals.Winner(), s.now())
		if err != nil {
			return nil, fmt.Errorf("failed to store round aggregation: %w", err)
		}
		if updated {
			freshlyAggregated = true
			round.TeamTotalCoins = totals
			round.WinnerTeamNo = totals.Winner()
		} else {
			// another firing stored its result first, that one counts
			round, err = s.db.GetChallengeRound(ctx, challenge.ID, roundNumber)
			if err != nil {
				return nil, fmt.Errorf("failed to re-read round %d: %w", roundNumber, err)
			}
		}
	}

	result = &RoundResult{
		RoundNumber: roundNumber,
		Totals:      round.TeamTotalCoins,
		Winner:      round.WinnerTeamNo,
	}

	if err := s.creditTeams(ctx, challenge.ID, result); err != nil {
		return nil, err
	}

	// the counter is only dropped once totals and credits are durable
	if err := s.counters.DeleteRoundCoins(ctx, challenge.ID, roundNumber); err != nil {
		log.Warn().Err(err).Msg("failed to delete round counter")
	}

	if freshlyAggregated {
		ev := consumer.NewRoundResultEvent(
			challenge.ID, challenge.StreamID, roundNumber,
			result.Totals.Team1, result.Totals.Team2, teamNoPtr(result.Winner), s.now().Unix(),
		)
		if err := s.eventConsumer.PushRoundResultEvent(ctx, ev); err != nil {
			log.Warn().Err(err).Msg("failed to push round result event")
		}
	}

	log.Debug().
		Uint64("team_1_coins", result.Totals.Team1).
		Uint64("team_2_coins", result.Totals.Team2).
		Bool("fresh", freshlyAggregated).
		Msg("round aggregated")
	return result, nil
}

func (s *Service) creditTeams(ctx context.Context, challengeID string, result *RoundResult) error {
	for _, team := range types.AllTeams() {
		coins := result.Totals.Get(team)
		won := result.Winner != nil && *result.Winner == team
		if coins == 0 && !won {
			continue
		}

		credited, err := s.db.CreditTeamRound(ctx, challengeID, team, result.RoundNumber, coins, won)
		if err != nil {
			if db.IsNotFoundError(err) {
				log.Ctx(ctx).Error().
					Str("challenge_id", challengeID).
					Uint8("team_no", uint8(team)).
					Msg("team missing, round coins not credited")
				continue
			}
			return fmt.Errorf("%w: failed to credit team %d for round %d: %w",
				ErrTeamCreditIncomplete, team, result.RoundNumber, err)
		}
		if !credited {
			log.Ctx(ctx).Debug().
				Str("challenge_id", challengeID).
				Uint8("team_no", uint8(team)).
				Uint32("round", result.RoundNumber).
				Msg("round already credited to team")
		}
	}

	return nil
}

// sumByTeam maps recipients onto teams by membership. Recipients that are on
// no team are returned as orphans.
func sumByTeam(contributions map[string]uint64, teams []*model.ChallengeTeamDocument) (types.TeamCoins, []string) {
	var totals types.TeamCoins
	var orphans []string
	for recipientID, coins := range contributions {
		team := teamOf(recipientID, teams)
		if team == nil {
			orphans = append(orphans, recipientID)
			continue
		}
		totals = totals.Add(team.TeamNo, coins)
	}
	return totals, orphans
}

func teamOf(userID string, teams []*model.ChallengeTeamDocument) *model.ChallengeTeamDocument {
	for _, team := range teams {
		if team.UserID == userID || team.HasMember(userID) {
			return team
		}
	}
	return nil
}
