package services

import (
	"testing"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/tests/mocks"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

type serviceMocks struct {
	db       *mocks.DbInterface
	counters *mocks.CounterStore
	tasks    *mocks.TaskScheduler
	events   *mocks.EventConsumer
}

func newMockedService(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		db:       mocks.NewDbInterface(t),
		counters: mocks.NewCounterStore(t),
		tasks:    mocks.NewTaskScheduler(t),
		events:   mocks.NewEventConsumer(t),
	}

	cfg := &config.Config{
		Gift: config.GiftConfig{StreakWindow: time.Minute},
		Poller: config.PollerConfig{
			LedgerReconcileDelay: time.Minute,
			LedgerReconcileLimit: 100,
		},
	}

	s := NewService(cfg, m.db, m.counters, m.tasks, m.events)
	s.now = func() time.Time { return fixedNow }
	return s, m
}
