package db

import "time"

type updateChallengeOptions struct {
	totalCoins *uint64
	endedAt    *time.Time
}

// UpdateOption sets extra fields on a challenge status update
type UpdateOption func(*updateChallengeOptions)

func WithTotalCoins(totalCoins uint64) UpdateOption {
	return func(opts *updateChallengeOptions) {
		opts.totalCoins = &totalCoins
	}
}

func WithEndedAt(endedAt time.Time) UpdateOption {
	return func(opts *updateChallengeOptions) {
		opts.endedAt = &endedAt
	}
}
