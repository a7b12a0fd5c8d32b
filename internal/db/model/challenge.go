package model

import (
	"slices"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/types"
)

const (
	ChallengeCollection      = "challenges"
	ChallengeTeamCollection  = "challenge_teams"
	ChallengeRoundCollection = "challenge_rounds"
)

type ChallengeDocument struct {
	ID               string                `bson:"_id"`
	Type             types.ChallengeType   `bson:"type"`
	Status           types.ChallengeStatus `bson:"status"`
	StreamID         string                `bson:"stream_id"`
	RoundCount       uint32                `bson:"round_count"`
	CurrentRound     uint32                `bson:"current_round"`
	RoundDuration    int64                 `bson:"round_duration"` // seconds
	MaxCoinsPerWin   uint64                `bson:"max_coins_per_win"`
	TotalCoinsEarned uint64                `bson:"total_coins_earned"`
	StartedAt        time.Time             `bson:"started_at"`
	EndedAt          *time.Time            `bson:"ended_at,omitempty"`
}

func (c *ChallengeDocument) RoundDurationTime() time.Duration {
	return time.Duration(c.RoundDuration) * time.Second
}

func (c *ChallengeDocument) Phase() types.ChallengePhase {
	return types.PhaseOf(c.Status, c.CurrentRound)
}

type ChallengeTeamDocument struct {
	ID          string       `bson:"_id"`
	ChallengeID string       `bson:"challenge_id"`
	TeamNo      types.TeamNo `bson:"team_no"`
	// UserID is the broadcaster representing the team, MemberIDs contains it
	// together with the other broadcasters of a 2v2 side.
	UserID           string   `bson:"user_id"`
	MemberIDs        []string `bson:"member_ids"`
	TotalCoinsEarned uint64   `bson:"total_coins_earned"`
	WinCount         uint32   `bson:"win_count"`
	CreditedRounds   []uint32 `bson:"credited_rounds"`
}

func (t *ChallengeTeamDocument) HasMember(userID string) bool {
	return slices.Contains(t.MemberIDs, userID)
}

type ChallengeRoundDocument struct {
	ID                 string          `bson:"_id"`
	ChallengeID        string          `bson:"challenge_id"`
	RoundNumber        uint32          `bson:"round_number"`
	StartAt            time.Time       `bson:"start_at"`
	EndAt              time.Time       `bson:"end_at"`
	TeamTotalCoins     types.TeamCoins `bson:"team_total_coins"`
	WinnerTeamNo       *types.TeamNo   `bson:"winner_team_no"`
	AggregationVersion uint32          `bson:"aggregation_version"`
	AggregatedAt       *time.Time      `bson:"aggregated_at,omitempty"`
}

func (r *ChallengeRoundDocument) IsAggregated() bool {
	return r.AggregationVersion > 0
}
