package config

import (
	"errors"
	"fmt"
	"time"
)

// maxRetryDelayFactor caps the backoff between two attempts at
// RetryInterval * maxRetryDelayFactor.
const maxRetryDelayFactor = 8

type SchedulerConfig struct {
	// MaxRetryTimes is how many times a failing task is run before it is
	// marked failed.
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// LeaseDuration bounds how long a claimed task may run before the
	// recovery poller hands it to another worker.
	LeaseDuration time.Duration `mapstructure:"lease-duration"`
	TaskTimeout   time.Duration `mapstructure:"task-timeout"`
}

func (cfg *SchedulerConfig) Validate() error {
	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}

	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	if cfg.TaskTimeout <= 0 {
		return errors.New("task-timeout must be positive")
	}

	// a lease has to outlive every attempt of the task and the waits between them
	if cfg.LeaseDuration <= cfg.MaxRunTime() {
		return fmt.Errorf(
			"lease-duration must be greater than task-timeout * max-retry-times plus retry backoff (%s)",
			cfg.MaxRunTime(),
		)
	}

	return nil
}

// MaxRetryDelay is the longest backoff between two attempts of a task.
func (cfg *SchedulerConfig) MaxRetryDelay() time.Duration {
	return maxRetryDelayFactor * cfg.RetryInterval
}

// MaxRunTime is the worst-case time a claimed task can hold its lease.
func (cfg *SchedulerConfig) MaxRunTime() time.Duration {
	attempts := time.Duration(cfg.MaxRetryTimes)
	run := cfg.TaskTimeout * attempts
	if attempts > 1 {
		run += cfg.MaxRetryDelay() * (attempts - 1)
	}
	return run
}
