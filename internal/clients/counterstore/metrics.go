package counterstore

import (
	"context"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
)

type counterStoreWithMetrics struct {
	store CounterStore
}

func NewCounterStoreWithMetrics(store CounterStore) *counterStoreWithMetrics {
	return &counterStoreWithMetrics{store: store}
}

func (c *counterStoreWithMetrics) Ping(ctx context.Context) error {
	_, err := runCounterStoreMethodWithMetrics("Ping", func() (struct{}, error) {
		return struct{}{}, c.store.Ping(ctx)
	})
	return err
}

func (c *counterStoreWithMetrics) IncrementRoundCoins(
	ctx context.Context, challengeID string, roundNumber uint32, recipientID string, coins uint64,
) (int64, error) {
	return runCounterStoreMethodWithMetrics("IncrementRoundCoins", func() (int64, error) {
		return c.store.IncrementRoundCoins(ctx, challengeID, roundNumber, recipientID, coins)
	})
}

func (c *counterStoreWithMetrics) GetRoundCoins(ctx context.Context, challengeID string, roundNumber uint32) (map[string]uint64, error) {
	return runCounterStoreMethodWithMetrics("GetRoundCoins", func() (map[string]uint64, error) {
		return c.store.GetRoundCoins(ctx, challengeID, roundNumber)
	})
}

func (c *counterStoreWithMetrics) DeleteRoundCoins(ctx context.Context, challengeID string, roundNumbers ...uint32) error {
	_, err := runCounterStoreMethodWithMetrics("DeleteRoundCoins", func() (struct{}, error) {
		return struct{}{}, c.store.DeleteRoundCoins(ctx, challengeID, roundNumbers...)
	})
	return err
}

func (c *counterStoreWithMetrics) IncrementStreak(ctx context.Context, key StreakKey, window time.Duration) (int64, error) {
	return runCounterStoreMethodWithMetrics("IncrementStreak", func() (int64, error) {
		return c.store.IncrementStreak(ctx, key, window)
	})
}

func runCounterStoreMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordCounterStoreLatency(duration, method, err != nil)
	return v, err
}
