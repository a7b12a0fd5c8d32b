package services

import (
	"context"

	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/utils/poller"
)

// StartLedgerReconciler starts the poller that applies ledger entries left
// unapplied by an interrupted gift settlement.
func (s *Service) StartLedgerReconciler(ctx context.Context) {
	reconcilePoller := poller.NewPoller(
		"ledger_reconcile",
		s.cfg.Poller.LedgerReconcilePollingInterval,
		metrics.RecordPollerDuration("ledger_reconcile", s.reconcileLedger),
	)
	go reconcilePoller.Start(ctx)
}

// StartTaskRecovery starts the poller that re-arms pending tasks and hands
// tasks of dead workers back to the scheduler.
func (s *Service) StartTaskRecovery(ctx context.Context, recover func(ctx context.Context) error) {
	recoveryPoller := poller.NewPoller(
		"task_recovery",
		s.cfg.Poller.TaskRecoveryPollingInterval,
		metrics.RecordPollerDuration("task_recovery", recover),
	)
	go recoveryPoller.Start(ctx)
}
