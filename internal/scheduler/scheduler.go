package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// Scheduler keeps tasks in a TaskStore and arms an in-process gocron one-time
// job per pending task. The store decides who runs a task: a job only runs
// the handler after it claimed the task, so duplicate jobs across processes
// are harmless.
type Scheduler struct {
	cfg   *config.SchedulerConfig
	store TaskStore
	cron  gocron.Scheduler

	mu       sync.Mutex
	ctx      context.Context
	handlers map[string]Handler
	armed    map[string]struct{}
}

func New(cfg *config.SchedulerConfig, store TaskStore) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create cron scheduler: %w", err)
	}

	return &Scheduler{
		cfg:      cfg,
		store:    store,
		cron:     cron,
		ctx:      context.Background(),
		handlers: make(map[string]Handler),
		armed:    make(map[string]struct{}),
	}, nil
}

func (s *Scheduler) Register(kind string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[kind] = handler
}

// Start starts firing jobs and re-arms every pending task found in the store.
// Handlers run with a context derived from ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.cron.Start()
	return s.Recover(ctx)
}

func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

func (s *Scheduler) Schedule(ctx context.Context, task Task) error {
	doc := &model.ScheduledTaskDocument{
		ID:        task.ID,
		Kind:      task.Kind,
		Payload:   task.Payload,
		FireAt:    task.FireAt.UTC(),
		Status:    types.TaskStatusPending,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.store.SaveScheduledTask(ctx, doc)
	if err != nil {
		if !db.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to save task %s: %w", task.ID, err)
		}

		existing, err := s.store.GetScheduledTask(ctx, task.ID)
		if err != nil {
			return fmt.Errorf("failed to get existing task %s: %w", task.ID, err)
		}
		log.Ctx(ctx).Debug().
			Str("task_id", task.ID).
			Stringer("status", existing.Status).
			Msg("task already scheduled")
		if existing.Status != types.TaskStatusPending {
			return nil
		}
		doc = existing
	}

	return s.arm(doc)
}

func (s *Scheduler) Cancel(ctx context.Context, taskID string) error {
	s.cron.RemoveByTags(taskID)
	s.disarm(taskID)

	cancelled, err := s.store.CancelScheduledTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to cancel task %s: %w", taskID, err)
	}
	if !cancelled {
		log.Ctx(ctx).Debug().Str("task_id", taskID).Msg("no pending task to cancel")
	}

	return nil
}

// Recover arms every pending task that is not armed in this process yet.
func (s *Scheduler) Recover(ctx context.Context) error {
	tasks, err := s.store.FindScheduledTasksByStatus(ctx, types.TaskStatusPending)
	if err != nil {
		return fmt.Errorf("failed to find pending tasks: %w", err)
	}

	var armErrs []error
	for _, task := range tasks {
		if err := s.arm(task); err != nil {
			armErrs = append(armErrs, err)
		}
	}

	return errors.Join(armErrs...)
}

// ReleaseExpiredLeases puts tasks whose worker died mid-run back to pending,
// due now. The next Recover arms them.
func (s *Scheduler) ReleaseExpiredLeases(ctx context.Context) error {
	now := time.Now().UTC()
	tasks, err := s.store.FindExpiredTaskLeases(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to find expired task leases: %w", err)
	}

	for _, task := range tasks {
		log.Ctx(ctx).Warn().
			Str("task_id", task.ID).
			Uint32("attempts", task.Attempts).
			Msg("task lease expired, requeueing")

		if err := s.store.RequeueScheduledTask(ctx, task.ID, now); err != nil {
			if db.IsNotFoundError(err) {
				continue
			}
			return fmt.Errorf("failed to requeue task %s: %w", task.ID, err)
		}
	}

	return nil
}

// Poll is the body of the recovery poller.
func (s *Scheduler) Poll(ctx context.Context) error {
	if err := s.ReleaseExpiredLeases(ctx); err != nil {
		return err
	}
	return s.Recover(ctx)
}

// RetryFailed moves every failed task back to pending, due now. A running
// scheduler picks them up on its next recovery poll.
func (s *Scheduler) RetryFailed(ctx context.Context) ([]string, error) {
	tasks, err := s.store.FindScheduledTasksByStatus(ctx, types.TaskStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to find failed tasks: %w", err)
	}

	now := time.Now().UTC()
	requeued := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if err := s.store.RequeueScheduledTask(ctx, task.ID, now); err != nil {
			if db.IsNotFoundError(err) {
				continue
			}
			return requeued, fmt.Errorf("failed to requeue task %s: %w", task.ID, err)
		}
		requeued = append(requeued, task.ID)
	}

	return requeued, nil
}

func (s *Scheduler) arm(task *model.ScheduledTaskDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.armed[task.ID]; ok {
		return nil
	}

	newJob := func(start gocron.OneTimeJobStartAtOption) error {
		_, err := s.cron.NewJob(
			gocron.OneTimeJob(start),
			gocron.NewTask(s.execute, task.ID),
			gocron.WithName(task.ID),
			gocron.WithTags(task.ID),
		)
		return err
	}

	var err error
	due := !task.FireAt.After(time.Now())
	if !due {
		err = newJob(gocron.OneTimeJobStartDateTime(task.FireAt))
		due = errors.Is(err, gocron.ErrOneTimeJobStartDateTimePast)
	}
	if due {
		err = newJob(gocron.OneTimeJobStartImmediately())
	}
	if err != nil {
		return fmt.Errorf("failed to arm task %s: %w", task.ID, err)
	}

	s.armed[task.ID] = struct{}{}
	return nil
}

func (s *Scheduler) disarm(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.armed, taskID)
}

func (s *Scheduler) handler(kind string) Handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handlers[kind]
}

func (s *Scheduler) baseContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx
}

func (s *Scheduler) execute(taskID string) {
	s.disarm(taskID)

	ctx := tracing.InjectTraceIDWithFields(s.baseContext(), map[string]string{"task_id": taskID})
	log := log.Ctx(ctx)

	task, err := s.store.ClaimScheduledTask(ctx, taskID, time.Now().UTC().Add(s.cfg.LeaseDuration))
	if err != nil {
		if db.IsNotFoundError(err) {
			// cancelled, finished or claimed by another worker
			log.Debug().Msg("task is not pending, skipping")
			return
		}
		log.Error().Err(err).Msg("failed to claim task")
		return
	}

	handler := s.handler(task.Kind)
	if handler == nil {
		log.Error().Str("kind", task.Kind).Msg("no handler registered for task kind")
		if err := s.store.FailScheduledTask(ctx, taskID, "no handler for kind "+task.Kind); err != nil {
			log.Error().Err(err).Msg("failed to mark task failed")
		}
		return
	}

	startTime := time.Now()
	err = retry.Do(
		func() error {
			runCtx, cancel := context.WithTimeout(ctx, s.cfg.TaskTimeout)
			defer cancel()
			return handler(runCtx, task.Payload)
		},
		retry.Context(ctx),
		retry.Attempts(s.cfg.MaxRetryTimes),
		retry.Delay(s.cfg.RetryInterval),
		retry.MaxDelay(s.cfg.MaxRetryDelay()),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Uint("attempt", n+1).
				Uint("max_attempts", s.cfg.MaxRetryTimes).
				Err(err).
				Msg("task handler failed, retrying")
		}),
	)
	metrics.RecordTaskExecutionDuration(time.Since(startTime), task.Kind, task.Attempts, err != nil)

	if err != nil {
		log.Error().Err(err).Str("kind", task.Kind).Msg("task failed")
		if err := s.store.FailScheduledTask(ctx, taskID, err.Error()); err != nil {
			log.Error().Err(err).Msg("failed to mark task failed")
		}
		return
	}

	if err := s.store.CompleteScheduledTask(ctx, taskID); err != nil {
		log.Error().Err(err).Msg("failed to mark task done")
		return
	}
	log.Debug().Str("kind", task.Kind).Msg("task done")
}
