package counterstore

import (
	"context"
	"time"
)

//go:generate mockery --name=CounterStore --output=../../../tests/mocks --outpkg=mocks --filename=mock_counter_store.go
type CounterStore interface {
	Ping(ctx context.Context) error
	// IncrementRoundCoins adds coins to the recipient's slot of the round
	// counter and returns the new slot value.
	IncrementRoundCoins(ctx context.Context, challengeID string, roundNumber uint32, recipientID string, coins uint64) (int64, error)
	// GetRoundCoins returns coins per recipient. A missing counter is an empty map.
	GetRoundCoins(ctx context.Context, challengeID string, roundNumber uint32) (map[string]uint64, error)
	DeleteRoundCoins(ctx context.Context, challengeID string, roundNumbers ...uint32) error
	// IncrementStreak bumps the streak counter and (re)arms its expiry to window.
	IncrementStreak(ctx context.Context, key StreakKey, window time.Duration) (int64, error)
}
