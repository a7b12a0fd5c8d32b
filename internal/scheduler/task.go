package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

const KindAdvanceRound = "advance_round"

// Task is a request to run the handler registered for Kind at or after
// FireAt. ID must be deterministic so that scheduling the same work twice
// is a no-op.
type Task struct {
	ID      string
	Kind    string
	Payload model.TaskPayload
	FireAt  time.Time
}

func AdvanceRoundTaskID(challengeID string, roundNumber uint32) string {
	return fmt.Sprintf("%s:%s:%d", KindAdvanceRound, challengeID, roundNumber)
}

func NewAdvanceRoundTask(challengeID string, roundNumber uint32, fireAt time.Time) Task {
	return Task{
		ID:   AdvanceRoundTaskID(challengeID, roundNumber),
		Kind: KindAdvanceRound,
		Payload: model.TaskPayload{
			ChallengeID: challengeID,
			RoundNumber: roundNumber,
		},
		FireAt: fireAt,
	}
}

// Handler runs one task. Returning an error makes the scheduler retry it.
type Handler func(ctx context.Context, payload model.TaskPayload) error

//go:generate mockery --name=TaskScheduler --output=../../tests/mocks --outpkg=mocks --filename=mock_task_scheduler.go
type TaskScheduler interface {
	Schedule(ctx context.Context, task Task) error
	// Cancel stops a task that has not started yet. Unknown ids are ignored.
	Cancel(ctx context.Context, taskID string) error
}

// TaskStore is the durable side of the scheduler.
type TaskStore interface {
	SaveScheduledTask(ctx context.Context, task *model.ScheduledTaskDocument) error
	GetScheduledTask(ctx context.Context, id string) (*model.ScheduledTaskDocument, error)
	ClaimScheduledTask(ctx context.Context, id string, leaseUntil time.Time) (*model.ScheduledTaskDocument, error)
	CompleteScheduledTask(ctx context.Context, id string) error
	FailScheduledTask(ctx context.Context, id string, reason string) error
	CancelScheduledTask(ctx context.Context, id string) (bool, error)
	FindScheduledTasksByStatus(ctx context.Context, status types.TaskStatus) ([]*model.ScheduledTaskDocument, error)
	RequeueScheduledTask(ctx context.Context, id string, fireAt time.Time) error
	FindExpiredTaskLeases(ctx context.Context, now time.Time) ([]*model.ScheduledTaskDocument, error)
}
