package counterstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/utils"
)

type RedisCounterStore struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

func New(cfg *config.RedisConfig) *RedisCounterStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		// retries are done by clientCallWithRetry, and only for idempotent calls
		MaxRetries: -1,
	})

	return &RedisCounterStore{client: client, cfg: cfg}
}

func (s *RedisCounterStore) Close() error {
	return s.client.Close()
}

func (s *RedisCounterStore) Ping(ctx context.Context) error {
	_, err := clientCallWithRetry(func() (*string, error) {
		res, err := s.client.Ping(ctx).Result()
		return &res, err
	}, s.cfg)
	return err
}

// IncrementRoundCoins is not retried: a lost reply after a successful
// HINCRBY would count the gift twice.
func (s *RedisCounterStore) IncrementRoundCoins(
	ctx context.Context, challengeID string, roundNumber uint32, recipientID string, coins uint64,
) (int64, error) {
	key := RoundCoinsKey(challengeID, roundNumber)
	value, err := s.client.HIncrBy(ctx, key, recipientID, int64(coins)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return value, nil
}

func (s *RedisCounterStore) GetRoundCoins(ctx context.Context, challengeID string, roundNumber uint32) (map[string]uint64, error) {
	key := RoundCoinsKey(challengeID, roundNumber)
	raw, err := clientCallWithRetry(func() (*map[string]string, error) {
		res, err := s.client.HGetAll(ctx, key).Result()
		return &res, err
	}, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	coins := make(map[string]uint64, len(*raw))
	for recipientID, value := range *raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter value %q for %s in %s: %w", value, recipientID, key, err)
		}
		// negative slots can only come from manual edits, they count as nothing
		if n <= 0 {
			continue
		}
		coins[recipientID] = uint64(n)
	}

	return coins, nil
}

func (s *RedisCounterStore) DeleteRoundCoins(ctx context.Context, challengeID string, roundNumbers ...uint32) error {
	if len(roundNumbers) == 0 {
		return nil
	}

	keys := make([]string, 0, len(roundNumbers))
	for _, n := range roundNumbers {
		keys = append(keys, RoundCoinsKey(challengeID, n))
	}

	_, err := clientCallWithRetry(func() (*int64, error) {
		res, err := s.client.Del(ctx, keys...).Result()
		return &res, err
	}, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to delete round counters of challenge %s: %w", challengeID, err)
	}
	return nil
}

// IncrementStreak runs INCR and EXPIRE in one MULTI so a streak key never
// outlives its window.
func (s *RedisCounterStore) IncrementStreak(ctx context.Context, key StreakKey, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key.String())
		pipe.Expire(ctx, key.String(), window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment streak %s: %w", key, err)
	}

	return incr.Val(), nil
}

func clientCallWithRetry[T any](
	call retry.RetryableFuncWithData[*T], cfg *config.RedisConfig,
) (*T, error) {
	method := utils.GetFunctionName(1)
	result, err := retry.DoWithData(call, retry.Attempts(cfg.MaxRetryTimes), retry.Delay(cfg.RetryInterval), retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().
				Str("method", method).
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call redis")
		}))

	if err != nil {
		return nil, err
	}
	return result, nil
}
