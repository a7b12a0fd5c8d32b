package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Queue: QueueConfig{
			QueueUser:     "test",
			QueuePassword: "test",
			Url:           "localhost:5672",
			Exchange:      "challenge",
		},
		Scheduler: SchedulerConfig{
			MaxRetryTimes: 5,
			RetryInterval: time.Second,
			LeaseDuration: 3 * time.Minute,
			TaskTimeout:   20 * time.Second,
		},
		Poller: PollerConfig{
			TaskRecoveryPollingInterval:    30 * time.Second,
			LedgerReconcilePollingInterval: time.Minute,
			LedgerReconcileLimit:           100,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("ok with defaults applied", func(t *testing.T) {
		cfg := validConfig()
		err := cfg.Validate()
		require.NoError(t, err)

		assert.Equal(t, defaultStreakWindow, cfg.Gift.StreakWindow)
		assert.Equal(t, defaultRedisTimeout, cfg.Redis.Timeout)
		assert.Equal(t, uint(defaultRedisMaxRetryTimes), cfg.Redis.MaxRetryTimes)
		assert.Equal(t, defaultQueueProcessingTimeout, cfg.Queue.QueueProcessingTimeout)
		assert.Equal(t, defaultLedgerReconcileDelay, cfg.Poller.LedgerReconcileDelay)
	})
	t.Run("invalid db address scheme", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Address = "postgres://localhost:5432"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid db config")
	})
	t.Run("missing redis address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Redis.Address = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis address is required")
	})
	t.Run("lease shorter than all task attempts", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scheduler.LeaseDuration = cfg.Scheduler.TaskTimeout
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lease-duration must be greater than task-timeout")
	})
	t.Run("lease shorter than attempts plus retry backoff", func(t *testing.T) {
		cfg := validConfig()
		// 5 attempts of 20s fit in 110s, the 4 backoffs of up to 8s do not
		cfg.Scheduler.LeaseDuration = 110 * time.Second
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retry backoff")
	})
	t.Run("invalid metrics host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Metrics.Host = "not-an-ip"
		err := cfg.Validate()
		require.Error(t, err)
	})
}

func TestSchedulerConfig_MaxRunTime(t *testing.T) {
	cfg := SchedulerConfig{
		MaxRetryTimes: 3,
		RetryInterval: time.Second,
		TaskTimeout:   10 * time.Second,
	}
	assert.Equal(t, 8*time.Second, cfg.MaxRetryDelay())
	assert.Equal(t, 46*time.Second, cfg.MaxRunTime())

	cfg.MaxRetryTimes = 1
	assert.Equal(t, 10*time.Second, cfg.MaxRunTime())
}

func TestNew(t *testing.T) {
	const content = `
db:
  username: root
  password: example
  db-name: challenge-engine
  address: "mongodb://localhost:27017/"
redis:
  address: "localhost:6379"
  db: 1
queue:
  queue_user: user
  queue_password: password
  url: "localhost:5672"
  exchange: challenge-events
scheduler:
  max-retry-times: 3
  retry-interval: 2s
  lease-duration: 5m
  task-timeout: 1m
poller:
  task-recovery-polling-interval: 30s
  ledger-reconcile-polling-interval: 1m
  ledger-reconcile-limit: 50
gift:
  streak-window: 45s
metrics:
  host: 0.0.0.0
  port: 2112
`
	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "challenge-engine", cfg.Db.DbName)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "challenge-events", cfg.Queue.Exchange)
	assert.Equal(t, uint(3), cfg.Scheduler.MaxRetryTimes)
	assert.Equal(t, 2*time.Second, cfg.Scheduler.RetryInterval)
	assert.Equal(t, 45*time.Second, cfg.Gift.StreakWindow)
	assert.Equal(t, uint64(50), cfg.Poller.LedgerReconcileLimit)
	assert.Equal(t, 2112, cfg.Metrics.GetMetricsPort())

	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}
