package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// NewChallenge returns an active challenge with random ids that is at its
// first round.
func NewChallenge(challengeType types.ChallengeType, roundCount uint32, roundDuration time.Duration) *model.ChallengeDocument {
	return &model.ChallengeDocument{
		ID:             uuid.NewString(),
		Type:           challengeType,
		Status:         types.ChallengeStatusActive,
		StreamID:       "stream-" + gofakeit.LetterN(8),
		RoundCount:     roundCount,
		CurrentRound:   1,
		RoundDuration:  int64(roundDuration / time.Second),
		MaxCoinsPerWin: uint64(gofakeit.UintRange(1, 1000)),
		StartedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
}

// NewTeams returns one team document per team slot. Members are random user
// ids, the first member is the team owner.
func NewTeams(challenge *model.ChallengeDocument) []*model.ChallengeTeamDocument {
	size, err := challenge.Type.TeamSize()
	if err != nil {
		size = 1
	}

	teams := make([]*model.ChallengeTeamDocument, 0, len(types.AllTeams()))
	for _, teamNo := range types.AllTeams() {
		members := make([]string, size)
		for i := range members {
			members[i] = "user-" + gofakeit.LetterN(10)
		}
		teams = append(teams, &model.ChallengeTeamDocument{
			ID:          uuid.NewString(),
			ChallengeID: challenge.ID,
			TeamNo:      teamNo,
			UserID:      members[0],
			MemberIDs:   members,
			// $addToSet needs an array to add credited rounds to
			CreditedRounds: []uint32{},
		})
	}
	return teams
}

// NewRound returns round n of challenge, timed from the challenge start.
func NewRound(challenge *model.ChallengeDocument, n uint32) *model.ChallengeRoundDocument {
	duration := challenge.RoundDurationTime()
	startAt := challenge.StartedAt.Add(time.Duration(n-1) * duration)
	return &model.ChallengeRoundDocument{
		ID:          uuid.NewString(),
		ChallengeID: challenge.ID,
		RoundNumber: n,
		StartAt:     startAt,
		EndAt:       startAt.Add(duration),
	}
}

func NewLedgerEntry(userID string, amount int64, entryType types.LedgerEntryType, kind types.BalanceKind) *model.LedgerEntryDocument {
	return &model.LedgerEntryDocument{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Type:      entryType,
		Balance:   kind,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}
