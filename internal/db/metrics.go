package db

import (
	"context"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveChallenge(ctx context.Context, challenge *model.ChallengeDocument) error {
	return d.run("SaveChallenge", func() error {
		return d.db.SaveChallenge(ctx, challenge)
	})
}

func (d *DbWithMetrics) GetChallengeByID(ctx context.Context, id string) (result *model.ChallengeDocument, err error) {
	//nolint:errcheck
	d.run("GetChallengeByID", func() error {
		result, err = d.db.GetChallengeByID(ctx, id)
		return err
	})

	return
}

func (d *DbWithMetrics) GetActiveChallengeByID(ctx context.Context, id string) (result *model.ChallengeDocument, err error) {
	//nolint:errcheck
	d.run("GetActiveChallengeByID", func() error {
		result, err = d.db.GetActiveChallengeByID(ctx, id)
		return err
	})

	return
}

func (d *DbWithMetrics) AdvanceChallengeRound(ctx context.Context, id string, nextRound uint32) error {
	return d.run("AdvanceChallengeRound", func() error {
		return d.db.AdvanceChallengeRound(ctx, id, nextRound)
	})
}

func (d *DbWithMetrics) UpdateChallengeStatus(ctx context.Context, id string, qualifiedPreviousStatuses []types.ChallengeStatus, newStatus types.ChallengeStatus, opts ...UpdateOption) error {
	return d.run("UpdateChallengeStatus", func() error {
		return d.db.UpdateChallengeStatus(ctx, id, qualifiedPreviousStatuses, newStatus, opts...)
	})
}

func (d *DbWithMetrics) SaveChallengeTeams(ctx context.Context, teams []*model.ChallengeTeamDocument) error {
	return d.run("SaveChallengeTeams", func() error {
		return d.db.SaveChallengeTeams(ctx, teams)
	})
}

func (d *DbWithMetrics) GetChallengeTeams(ctx context.Context, challengeID string) (result []*model.ChallengeTeamDocument, err error) {
	//nolint:errcheck
	d.run("GetChallengeTeams", func() error {
		result, err = d.db.GetChallengeTeams(ctx, challengeID)
		return err
	})

	return
}

func (d *DbWithMetrics) CreditTeamRound(ctx context.Context, challengeID string, teamNo types.TeamNo, roundNumber uint32, coins uint64, won bool) (result bool, err error) {
	//nolint:errcheck
	d.run("CreditTeamRound", func() error {
		result, err = d.db.CreditTeamRound(ctx, challengeID, teamNo, roundNumber, coins, won)
		return err
	})

	return
}

func (d *DbWithMetrics) SaveChallengeRound(ctx context.Context, round *model.ChallengeRoundDocument) error {
	return d.run("SaveChallengeRound", func() error {
		return d.db.SaveChallengeRound(ctx, round)
	})
}

func (d *DbWithMetrics) GetChallengeRound(ctx context.Context, challengeID string, roundNumber uint32) (result *model.ChallengeRoundDocument, err error) {
	//nolint:errcheck
	d.run("GetChallengeRound", func() error {
		result, err = d.db.GetChallengeRound(ctx, challengeID, roundNumber)
		return err
	})

	return
}

func (d *DbWithMetrics) GetChallengeRounds(ctx context.Context, challengeID string) (result []*model.ChallengeRoundDocument, err error) {
	//nolint:errcheck
	d.run("GetChallengeRounds", func() error {
		result, err = d.db.GetChallengeRounds(ctx, challengeID)
		return err
	})

	return
}

func (d *DbWithMetrics) UpdateRoundAggregation(ctx context.Context, challengeID string, roundNumber uint32, totals types.TeamCoins, winner *types.TeamNo, aggregatedAt time.Time) (result bool, err error) {
	//nolint:errcheck
	d.run("UpdateRoundAggregation", func() error {
		result, err = d.db.UpdateRoundAggregation(ctx, challengeID, roundNumber, totals, winner, aggregatedAt)
		return err
	})

	return
}

func (d *DbWithMetrics) GetWallet(ctx context.Context, userID string) (result *model.WalletDocument, err error) {
	//nolint:errcheck
	d.run("GetWallet", func() error {
		result, err = d.db.GetWallet(ctx, userID)
		return err
	})

	return
}

func (d *DbWithMetrics) SaveLedgerEntries(ctx context.Context, entries []*model.LedgerEntryDocument) error {
	return d.run("SaveLedgerEntries", func() error {
		return d.db.SaveLedgerEntries(ctx, entries)
	})
}

func (d *DbWithMetrics) ApplyLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) (result bool, err error) {
	//nolint:errcheck
	d.run("ApplyLedgerEntry", func() error {
		result, err = d.db.ApplyLedgerEntry(ctx, entry)
		return err
	})

	return
}

func (d *DbWithMetrics) FindUnappliedLedgerEntries(ctx context.Context, createdBefore time.Time, limit uint64) (result []*model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("FindUnappliedLedgerEntries", func() error {
		result, err = d.db.FindUnappliedLedgerEntries(ctx, createdBefore, limit)
		return err
	})

	return
}

func (d *DbWithMetrics) VoidLedgerEntries(ctx context.Context, giftEventID string) error {
	return d.run("VoidLedgerEntries", func() error {
		return d.db.VoidLedgerEntries(ctx, giftEventID)
	})
}

func (d *DbWithMetrics) GetLedgerEntriesByGiftEvent(ctx context.Context, giftEventID string) (result []*model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerEntriesByGiftEvent", func() error {
		result, err = d.db.GetLedgerEntriesByGiftEvent(ctx, giftEventID)
		return err
	})

	return
}

func (d *DbWithMetrics) SaveGift(ctx context.Context, gift *model.GiftDocument) error {
	return d.run("SaveGift", func() error {
		return d.db.SaveGift(ctx, gift)
	})
}

func (d *DbWithMetrics) GetGiftsByChallenge(ctx context.Context, challengeID string) (result []*model.GiftDocument, err error) {
	//nolint:errcheck
	d.run("GetGiftsByChallenge", func() error {
		result, err = d.db.GetGiftsByChallenge(ctx, challengeID)
		return err
	})

	return
}

func (d *DbWithMetrics) IncrementChannelGiftStats(ctx context.Context, channel string, giftCount, coins uint64) error {
	return d.run("IncrementChannelGiftStats", func() error {
		return d.db.IncrementChannelGiftStats(ctx, channel, giftCount, coins)
	})
}

func (d *DbWithMetrics) IncrementViewerGiftStats(ctx context.Context, senderID, recipientID string, coins uint64) error {
	return d.run("IncrementViewerGiftStats", func() error {
		return d.db.IncrementViewerGiftStats(ctx, senderID, recipientID, coins)
	})
}

func (d *DbWithMetrics) GetChannelGiftStats(ctx context.Context, channel string) (result *model.ChannelGiftStatsDocument, err error) {
	//nolint:errcheck
	d.run("GetChannelGiftStats", func() error {
		result, err = d.db.GetChannelGiftStats(ctx, channel)
		return err
	})

	return
}

func (d *DbWithMetrics) SetStreamChallengeActive(ctx context.Context, streamID, challengeID string, active bool) error {
	return d.run("SetStreamChallengeActive", func() error {
		return d.db.SetStreamChallengeActive(ctx, streamID, challengeID, active)
	})
}

func (d *DbWithMetrics) GetStream(ctx context.Context, streamID string) (result *model.StreamDocument, err error) {
	//nolint:errcheck
	d.run("GetStream", func() error {
		result, err = d.db.GetStream(ctx, streamID)
		return err
	})

	return
}

func (d *DbWithMetrics) SaveScheduledTask(ctx context.Context, task *model.ScheduledTaskDocument) error {
	return d.run("SaveScheduledTask", func() error {
		return d.db.SaveScheduledTask(ctx, task)
	})
}

func (d *DbWithMetrics) GetScheduledTask(ctx context.Context, id string) (result *model.ScheduledTaskDocument, err error) {
	//nolint:errcheck
	d.run("GetScheduledTask", func() error {
		result, err = d.db.GetScheduledTask(ctx, id)
		return err
	})

	return
}

func (d *DbWithMetrics) ClaimScheduledTask(ctx context.Context, id string, leaseUntil time.Time) (result *model.ScheduledTaskDocument, err error) {
	//nolint:errcheck
	d.run("ClaimScheduledTask", func() error {
		result, err = d.db.ClaimScheduledTask(ctx, id, leaseUntil)
		return err
	})

	return
}

func (d *DbWithMetrics) CompleteScheduledTask(ctx context.Context, id string) error {
	return d.run("CompleteScheduledTask", func() error {
		return d.db.CompleteScheduledTask(ctx, id)
	})
}

func (d *DbWithMetrics) FailScheduledTask(ctx context.Context, id string, reason string) error {
	return d.run("FailScheduledTask", func() error {
		return d.db.FailScheduledTask(ctx, id, reason)
	})
}

func (d *DbWithMetrics) CancelScheduledTask(ctx context.Context, id string) (result bool, err error) {
	//nolint:errcheck
	d.run("CancelScheduledTask", func() error {
		result, err = d.db.CancelScheduledTask(ctx, id)
		return err
	})

	return
}

func (d *DbWithMetrics) FindScheduledTasksByStatus(ctx context.Context, status types.TaskStatus) (result []*model.ScheduledTaskDocument, err error) {
	//nolint:errcheck
	d.run("FindScheduledTasksByStatus", func() error {
		result, err = d.db.FindScheduledTasksByStatus(ctx, status)
		return err
	})

	return
}

func (d *DbWithMetrics) RequeueScheduledTask(ctx context.Context, id string, fireAt time.Time) error {
	return d.run("RequeueScheduledTask", func() error {
		return d.db.RequeueScheduledTask(ctx, id, fireAt)
	})
}

func (d *DbWithMetrics) FindExpiredTaskLeases(ctx context.Context, now time.Time) (result []*model.ScheduledTaskDocument, err error) {
	//nolint:errcheck
	d.run("FindExpiredTaskLeases", func() error {
		result, err = d.db.FindExpiredTaskLeases(ctx, now)
		return err
	})

	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
