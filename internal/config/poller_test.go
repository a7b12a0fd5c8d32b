package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("all required fields set", func(t *testing.T) {
		cfg := &PollerConfig{
			TaskRecoveryPollingInterval:    1 * time.Minute,
			LedgerReconcilePollingInterval: 2 * time.Minute,
			LedgerReconcileDelay:           3 * time.Minute,
			LedgerReconcileLimit:           100,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Minute, cfg.LedgerReconcileDelay)
	})

	t.Run("reconcile delay not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			TaskRecoveryPollingInterval:    1 * time.Minute,
			LedgerReconcilePollingInterval: 2 * time.Minute,
			LedgerReconcileLimit:           100,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultLedgerReconcileDelay, cfg.LedgerReconcileDelay)
	})

	t.Run("task recovery polling interval not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			LedgerReconcilePollingInterval: 2 * time.Minute,
			LedgerReconcileLimit:           100,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task-recovery-polling-interval must be positive")
	})

	t.Run("ledger reconcile polling interval not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			TaskRecoveryPollingInterval: 1 * time.Minute,
			LedgerReconcileLimit:        100,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger-reconcile-polling-interval must be positive")
	})

	t.Run("ledger reconcile limit not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{
			TaskRecoveryPollingInterval:    1 * time.Minute,
			LedgerReconcilePollingInterval: 2 * time.Minute,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger-reconcile-limit must be positive")
	})
}
