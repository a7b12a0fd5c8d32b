package config

import (
	"errors"
	"time"
)

const defaultLedgerReconcileDelay = time.Minute

type PollerConfig struct {
	TaskRecoveryPollingInterval    time.Duration `mapstructure:"task-recovery-polling-interval"`
	LedgerReconcilePollingInterval time.Duration `mapstructure:"ledger-reconcile-polling-interval"`
	// LedgerReconcileDelay is how old an unapplied ledger entry must be before
	// the reconciler applies it, so in-flight gift sends are left alone.
	LedgerReconcileDelay time.Duration `mapstructure:"ledger-reconcile-delay"`
	LedgerReconcileLimit uint64        `mapstructure:"ledger-reconcile-limit"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.TaskRecoveryPollingInterval <= 0 {
		return errors.New("task-recovery-polling-interval must be positive")
	}

	if cfg.LedgerReconcilePollingInterval <= 0 {
		return errors.New("ledger-reconcile-polling-interval must be positive")
	}

	if cfg.LedgerReconcileLimit == 0 {
		return errors.New("ledger-reconcile-limit must be positive")
	}

	if cfg.LedgerReconcileDelay <= 0 {
		cfg.LedgerReconcileDelay = defaultLedgerReconcileDelay
	}

	return nil
}
