package config

import (
	"errors"
	"time"
)

const (
	defaultRedisMaxRetryTimes = 3
	defaultRedisRetryInterval = 100 * time.Millisecond
	defaultRedisTimeout       = 2 * time.Second
)

// RedisConfig configures the fast counter store holding per-round coin
// counters and gift streaks.
type RedisConfig struct {
	Address       string        `mapstructure:"address"`
	Password      string        `mapstructure:"password"`
	DB            int           `mapstructure:"db"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *RedisConfig) Validate() error {
	if cfg.Address == "" {
		return errors.New("redis address is required")
	}

	if cfg.DB < 0 {
		return errors.New("redis db must not be negative")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRedisTimeout
	}

	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultRedisMaxRetryTimes
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRedisRetryInterval
	}

	return nil
}
