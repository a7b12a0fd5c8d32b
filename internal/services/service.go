package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/clients/counterstore"
	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
)

type Service struct {
	cfg           *config.Config
	db            db.DbInterface
	counters      counterstore.CounterStore
	tasks         scheduler.TaskScheduler
	eventConsumer consumer.EventConsumer
	validate      *validator.Validate
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	counters counterstore.CounterStore,
	tasks scheduler.TaskScheduler,
	eventConsumer consumer.EventConsumer,
) *Service {
	return &Service{
		cfg:           cfg,
		db:            db,
		counters:      counters,
		tasks:         tasks,
		eventConsumer: eventConsumer,
		validate:      newValidator(),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// HandlerRegistry is implemented by scheduler.Scheduler.
type HandlerRegistry interface {
	Register(kind string, handler scheduler.Handler)
}

// RegisterTaskHandlers binds the task kinds this service owns.
func (s *Service) RegisterTaskHandlers(registry HandlerRegistry) {
	registry.Register(scheduler.KindAdvanceRound, func(ctx context.Context, payload model.TaskPayload) error {
		return s.AdvanceRound(ctx, payload.ChallengeID, payload.RoundNumber)
	})
}
