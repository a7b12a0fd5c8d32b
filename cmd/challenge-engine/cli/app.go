package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/internal/clients/counterstore"
	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/queue"
	"github.com/HamMeyva/challenge-engine/internal/scheduler"
	"github.com/HamMeyva/challenge-engine/internal/services"
)

// app holds everything a command needs to talk to the stores.
type app struct {
	cfg       *config.Config
	db        db.DbInterface
	counters  *counterstore.RedisCounterStore
	queue     *queue.QueueManager
	scheduler *scheduler.Scheduler
	service   *services.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		return nil, fmt.Errorf("error while creating db client: %w", err)
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	redisStore := counterstore.New(&cfg.Redis)
	counters := counterstore.NewCounterStoreWithMetrics(redisStore)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		return nil, fmt.Errorf("error while creating queue manager: %w", err)
	}

	sched, err := scheduler.New(&cfg.Scheduler, dbClient)
	if err != nil {
		return nil, fmt.Errorf("error while creating scheduler: %w", err)
	}

	service := services.NewService(cfg, dbClient, counters, sched, qm)
	service.RegisterTaskHandlers(sched)

	return &app{
		cfg:       cfg,
		db:        dbClient,
		counters:  redisStore,
		queue:     qm,
		scheduler: sched,
		service:   service,
	}, nil
}

func (a *app) Close() {
	if err := a.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("failed to shut down scheduler")
	}
	a.queue.Shutdown()
	if err := a.counters.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close counter store")
	}
}
