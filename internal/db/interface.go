package db

import (
	"context"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// SaveChallenge returns DuplicateKeyError if the id is taken.
	SaveChallenge(ctx context.Context, challenge *model.ChallengeDocument) error
	GetChallengeByID(ctx context.Context, id string) (*model.ChallengeDocument, error)
	GetActiveChallengeByID(ctx context.Context, id string) (*model.ChallengeDocument, error)
	// AdvanceChallengeRound moves current_round forward to nextRound, never
	// backwards. Returns NotFoundError if the challenge is not active.
	AdvanceChallengeRound(ctx context.Context, id string, nextRound uint32) error
	// UpdateChallengeStatus moves a challenge to newStatus only if its current
	// status is one of qualifiedPreviousStatuses.
	UpdateChallengeStatus(
		ctx context.Context,
		id string,
		qualifiedPreviousStatuses []types.ChallengeStatus,
		newStatus types.ChallengeStatus,
		opts ...UpdateOption,
	) error
	SaveChallengeTeams(ctx context.Context, teams []*model.ChallengeTeamDocument) error
	GetChallengeTeams(ctx context.Context, challengeID string) ([]*model.ChallengeTeamDocument, error)
	// CreditTeamRound adds round coins to a team once per round. It returns
	// false if the round was already credited.
	CreditTeamRound(
		ctx context.Context,
		challengeID string,
		teamNo types.TeamNo,
		roundNumber uint32,
		coins uint64,
		won bool,
	) (bool, error)
	// SaveChallengeRound returns RoundOutOfOrderError if the round does not
	// follow the latest stored one.
	SaveChallengeRound(ctx context.Context, round *model.ChallengeRoundDocument) error
	GetChallengeRound(ctx context.Context, challengeID string, roundNumber uint32) (*model.ChallengeRoundDocument, error)
	GetChallengeRounds(ctx context.Context, challengeID string) ([]*model.ChallengeRoundDocument, error)
	UpdateRoundAggregation(
		ctx context.Context,
		challengeID string,
		roundNumber uint32,
		totals types.TeamCoins,
		winner *types.TeamNo,
		aggregatedAt time.Time,
	) (bool, error)
	GetWallet(ctx context.Context, userID string) (*model.WalletDocument, error)
	SaveLedgerEntries(ctx context.Context, entries []*model.LedgerEntryDocument) error
	// ApplyLedgerEntry returns false if the entry was already applied and
	// InsufficientBalanceError if a debit is not covered.
	ApplyLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) (bool, error)
	FindUnappliedLedgerEntries(ctx context.Context, createdBefore time.Time, limit uint64) ([]*model.LedgerEntryDocument, error)
	// GetLedgerEntriesByGiftEvent returns the entries of a gift event, debits first.
	GetLedgerEntriesByGiftEvent(ctx context.Context, giftEventID string) ([]*model.LedgerEntryDocument, error)
	VoidLedgerEntries(ctx context.Context, giftEventID string) error
	SaveGift(ctx context.Context, gift *model.GiftDocument) error
	GetGiftsByChallenge(ctx context.Context, challengeID string) ([]*model.GiftDocument, error)
	IncrementChannelGiftStats(ctx context.Context, channel string, giftCount, coins uint64) error
	IncrementViewerGiftStats(ctx context.Context, senderID, recipientID string, coins uint64) error
	GetChannelGiftStats(ctx context.Context, channel string) (*model.ChannelGiftStatsDocument, error)
	SetStreamChallengeActive(ctx context.Context, streamID, challengeID string, active bool) error
	GetStream(ctx context.Context, streamID string) (*model.StreamDocument, error)
	SaveScheduledTask(ctx context.Context, task *model.ScheduledTaskDocument) error
	GetScheduledTask(ctx context.Context, id string) (*model.ScheduledTaskDocument, error)
	// ClaimScheduledTask moves a pending task to running until leaseUntil.
	ClaimScheduledTask(ctx context.Context, id string, leaseUntil time.Time) (*model.ScheduledTaskDocument, error)
	CompleteScheduledTask(ctx context.Context, id string) error
	FailScheduledTask(ctx context.Context, id string, reason string) error
	CancelScheduledTask(ctx context.Context, id string) (bool, error)
	FindScheduledTasksByStatus(ctx context.Context, status types.TaskStatus) ([]*model.ScheduledTaskDocument, error)
	RequeueScheduledTask(ctx context.Context, id string, fireAt time.Time) error
	FindExpiredTaskLeases(ctx context.Context, now time.Time) ([]*model.ScheduledTaskDocument, error)
}
