package config

import (
	"errors"
	"time"
)

const defaultStreakWindow = 60 * time.Second

type GiftConfig struct {
	// StreakWindow is how long a run of identical gifts stays alive without
	// a new send.
	StreakWindow time.Duration `mapstructure:"streak-window"`
}

func (cfg *GiftConfig) Validate() error {
	if cfg.StreakWindow < 0 {
		return errors.New("streak-window must not be negative")
	}

	if cfg.StreakWindow == 0 {
		cfg.StreakWindow = defaultStreakWindow
	}

	return nil
}
