//go:build integration

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
	"github.com/HamMeyva/challenge-engine/internal/types"
	"github.com/HamMeyva/challenge-engine/testutil"
	"github.com/HamMeyva/challenge-engine/tests/mocks"
)

// taskRecorder is a TaskScheduler that only records what was scheduled, so
// tests fire round ends by hand.
type taskRecorder struct {
	mu        sync.Mutex
	scheduled []scheduler.Task
	cancelled []string
}

func (r *taskRecorder) Schedule(_ context.Context, task scheduler.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, task)
	return nil
}

func (r *taskRecorder) Cancel(_ context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, taskID)
	return nil
}

func (r *taskRecorder) last() scheduler.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scheduled[len(r.scheduled)-1]
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *config.Config {
	return &config.Config{
		Scheduler: config.SchedulerConfig{
			MaxRetryTimes: 3,
			RetryInterval: 10 * time.Millisecond,
			LeaseDuration: time.Minute,
			TaskTimeout:   5 * time.Second,
		},
		Gift: config.GiftConfig{StreakWindow: time.Minute},
		Poller: config.PollerConfig{
			LedgerReconcileDelay: time.Minute,
			LedgerReconcileLimit: 100,
		},
	}
}

func quietEvents(t *testing.T) *mocks.EventConsumer {
	events := mocks.NewEventConsumer(t)
	events.On("PushRoundResultEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	events.On("PushChallengeFinishedEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	events.On("PushChallengeCancelledEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	return events
}

func newRecordingService(t *testing.T) (*Service, *taskRecorder, *testClock) {
	tasks := &taskRecorder{}
	clock := &testClock{now: time.Now().UTC().Truncate(time.Second)}

	s := NewService(testConfig(), testDB, testCounters, tasks, quietEvents(t))
	s.now = clock.Now
	return s, tasks, clock
}

func fundViewer(t *testing.T, s *Service, userID string, coins uint64) {
	reference, err := testutil.RandomAlphaNum(12)
	require.NoError(t, err)
	require.NoError(t, s.CreditPurchase(t.Context(), userID, coins, reference))
}

func sendGift(t *testing.T, s *Service, challenge *model.ChallengeDocument, senderID, recipientID string, coins uint64) {
	_, err := s.SendGift(t.Context(), &SendGiftRequest{
		SenderID:          senderID,
		RecipientID:       recipientID,
		GiftID:            "rose",
		UnitCost:          coins,
		Quantity:          1,
		Channel:           challenge.StreamID,
		IsChallengeActive: true,
		ActiveChallengeID: challenge.ID,
	})
	require.NoError(t, err)
}

func startOneVsOne(t *testing.T, s *Service, rounds uint32, duration time.Duration) *model.ChallengeDocument {
	streamID, err := testutil.RandomAlphaNum(8)
	require.NoError(t, err)

	challenge, err := s.StartChallenge(t.Context(), &StartChallengeRequest{
		StreamID:       "stream-" + streamID,
		Type:           types.ChallengeType1v1,
		RoundCount:     rounds,
		RoundDuration:  duration,
		MaxCoinsPerWin: 20,
		Teams: []TeamRequest{
			{TeamNo: types.Team1, MemberIDs: []string{"alice"}},
			{TeamNo: types.Team2, MemberIDs: []string{"bob"}},
		},
	})
	require.NoError(t, err)
	return challenge
}

func TestTwoRoundChallenge(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	s, tasks, clock := newRecordingService(t)
	fundViewer(t, s, "viewer-1", 1000)
	fundViewer(t, s, "viewer-2", 1000)

	start := clock.Now()
	challenge := startOneVsOne(t, s, 2, 60*time.Second)
	assert.Equal(t, start.Add(60*time.Second), tasks.last().FireAt)

	stream, err := testDB.GetStream(ctx, challenge.StreamID)
	require.NoError(t, err)
	assert.True(t, stream.IsChallengeActive)

	// round 1: team 1 gets 50, team 2 gets 30
	sendGift(t, s, challenge, "viewer-1", "alice", 50)
	sendGift(t, s, challenge, "viewer-2", "bob", 30)

	clock.Advance(60 * time.Second)
	require.NoError(t, s.AdvanceRound(ctx, challenge.ID, 1))

	next := tasks.last()
	assert.Equal(t, scheduler.AdvanceRoundTaskID(challenge.ID, 2), next.ID)
	assert.Equal(t, start.Add(120*time.Second), next.FireAt)

	got, err := testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.CurrentRound)
	assert.Equal(t, types.ChallengeStatusActive, got.Status)

	// round 2: team 2 gets 100
	sendGift(t, s, challenge, "viewer-1", "bob", 100)

	clock.Advance(60 * time.Second)
	require.NoError(t, s.AdvanceRound(ctx, challenge.ID, 2))

	got, err = testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ChallengeStatusFinished, got.Status)
	assert.Equal(t, uint64(180), got.TotalCoinsEarned)
	require.NotNil(t, got.EndedAt)
	assert.True(t, start.Add(120*time.Second).Equal(*got.EndedAt))

	rounds, err := testDB.GetChallengeRounds(ctx, challenge.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, types.TeamCoins{Team1: 50, Team2: 30}, rounds[0].TeamTotalCoins)
	assert.Equal(t, types.TeamCoins{Team2: 100}, rounds[1].TeamTotalCoins)

	teams, err := testDB.GetChallengeTeams(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), teams[0].TotalCoinsEarned)
	assert.Equal(t, uint32(1), teams[0].WinCount)
	assert.Equal(t, uint64(130), teams[1].TotalCoinsEarned)
	assert.Equal(t, uint32(1), teams[1].WinCount)

	stream, err = testDB.GetStream(ctx, challenge.StreamID)
	require.NoError(t, err)
	assert.False(t, stream.IsChallengeActive)

	// wallets: viewers paid 150 and 30, broadcasters earned the same
	viewer1, err := testDB.GetWallet(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(850), viewer1.SpendableBalance)
	bob, err := testDB.GetWallet(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(130), bob.EarnedBalance)

	// a redelivered firing changes nothing
	require.NoError(t, s.AdvanceRound(ctx, challenge.ID, 2))
	again, err := testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	gifts, err := testDB.GetGiftsByChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	require.Len(t, gifts, 3)
	assert.Equal(t, uint32(2), gifts[2].RoundNumber)
}

func TestThreeRoundChallenge(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	s, _, clock := newRecordingService(t)
	fundViewer(t, s, "viewer-1", 1000)
	challenge := startOneVsOne(t, s, 3, 10*time.Second)

	gifts := []struct {
		recipient string
		coins     uint64
	}{
		{"alice", 10},
		{"bob", 25},
		{"alice", 7},
	}
	for i, gift := range gifts {
		round := uint32(i + 1)
		sendGift(t, s, challenge, "viewer-1", gift.recipient, gift.coins)

		clock.Advance(10 * time.Second)
		require.NoError(t, s.AdvanceRound(ctx, challenge.ID, round))
	}

	got, err := testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), got.CurrentRound)
	assert.Equal(t, types.ChallengeStatusFinished, got.Status)

	rounds, err := testDB.GetChallengeRounds(ctx, challenge.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	var sum uint64
	for _, round := range rounds {
		assert.True(t, round.IsAggregated())
		sum += round.TeamTotalCoins.Total()
	}
	assert.Equal(t, uint64(42), sum)
	assert.Equal(t, sum, got.TotalCoinsEarned)

	// aggregating again returns the stored result and credits nothing twice
	result, err := s.AggregateRound(ctx, got, 2)
	require.NoError(t, err)
	require.NotNil(t, result.Winner)
	assert.Equal(t, types.Team2, *result.Winner)

	teams, err := testDB.GetChallengeTeams(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), teams[0].TotalCoinsEarned)
	assert.Equal(t, uint64(25), teams[1].TotalCoinsEarned)
}

func TestEndChallengeDropsRoundCoins(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	s, tasks, _ := newRecordingService(t)
	fundViewer(t, s, "viewer-1", 100)
	challenge := startOneVsOne(t, s, 3, time.Minute)
	sendGift(t, s, challenge, "viewer-1", "alice", 40)

	require.NoError(t, s.EndChallenge(ctx, challenge.ID))
	assert.Contains(t, tasks.cancelled, scheduler.AdvanceRoundTaskID(challenge.ID, 1))

	got, err := testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ChallengeStatusCancelled, got.Status)

	coins, err := testCounters.GetRoundCoins(ctx, challenge.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, coins)

	// a firing that slipped through is ignored
	require.NoError(t, s.AdvanceRound(ctx, challenge.ID, 1))
	rounds, err := testDB.GetChallengeRounds(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Len(t, rounds, 1)

	// the gift itself stays settled
	wallet, err := testDB.GetWallet(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(40), wallet.EarnedBalance)

	// gifts after the end do not count towards the challenge
	fundViewer(t, s, "viewer-2", 10)
	receipt, err := s.SendGift(ctx, &SendGiftRequest{
		SenderID:          "viewer-2",
		RecipientID:       "alice",
		GiftID:            "rose",
		UnitCost:          10,
		Quantity:          1,
		Channel:           challenge.StreamID,
		IsChallengeActive: true,
		ActiveChallengeID: challenge.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, receipt.ChallengeID)
}

func TestInsufficientFundsLeavesNoTrace(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	s, _, _ := newRecordingService(t)
	fundViewer(t, s, "viewer-1", 10)

	_, err := s.SendGift(ctx, &SendGiftRequest{
		SenderID:    "viewer-1",
		RecipientID: "alice",
		GiftID:      "lion",
		UnitCost:    11,
		Quantity:    1,
		Channel:     "stream-1",
	})
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	wallet, err := testDB.GetWallet(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), wallet.SpendableBalance)

	_, err = testDB.GetWallet(ctx, "alice")
	require.Error(t, err)
}

func TestConcurrentGiftsNeverOverdraw(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	s, _, _ := newRecordingService(t)
	fundViewer(t, s, "viewer-1", 100)

	const senders = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		errs     []error
	)
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SendGift(ctx, &SendGiftRequest{
				SenderID:    "viewer-1",
				RecipientID: "bob",
				GiftID:      "rose",
				UnitCost:    30,
				Quantity:    1,
				Channel:     "stream-1",
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			accepted++
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, accepted)
	require.Len(t, errs, senders-3)
	for _, err := range errs {
		assert.ErrorIs(t, err, types.ErrInsufficientFunds)
	}

	sender, err := testDB.GetWallet(ctx, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), sender.SpendableBalance)
	recipient, err := testDB.GetWallet(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(90), recipient.EarnedBalance)

	// rejected gifts leave nothing for the reconciler
	unapplied, err := testDB.FindUnappliedLedgerEntries(ctx, time.Now().UTC().Add(time.Hour), 100)
	require.NoError(t, err)
	assert.Empty(t, unapplied)
}

// TestScheduledChallengeFinishes runs a short challenge with the real
// scheduler firing the round ends.
func TestScheduledChallengeFinishes(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	cfg := testConfig()
	sched, err := scheduler.New(&cfg.Scheduler, testDB)
	require.NoError(t, err)

	s := NewService(cfg, testDB, testCounters, sched, quietEvents(t))
	s.RegisterTaskHandlers(sched)
	require.NoError(t, sched.Start(ctx))
	t.Cleanup(func() {
		_ = sched.Shutdown()
	})

	fundViewer(t, s, "viewer-1", 100)
	challenge := startOneVsOne(t, s, 2, time.Second)
	sendGift(t, s, challenge, "viewer-1", "bob", 9)

	require.Eventually(t, func() bool {
		got, err := testDB.GetChallengeByID(ctx, challenge.ID)
		return err == nil && got.Status == types.ChallengeStatusFinished
	}, 15*time.Second, 100*time.Millisecond)

	got, err := testDB.GetChallengeByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.TotalCoinsEarned)

	for _, round := range []uint32{1, 2} {
		task, err := testDB.GetScheduledTask(ctx, scheduler.AdvanceRoundTaskID(challenge.ID, round))
		require.NoError(t, err)
		assert.Equal(t, types.TaskStatusDone, task.Status)
	}
}
