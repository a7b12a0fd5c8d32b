package model

import (
	"time"

	"github.com/HamMeyva/challenge-engine/internal/types"
)

const ScheduledTaskCollection = "scheduled_tasks"

// TaskPayload is everything a handler gets. Handlers re-derive the rest
// from storage.
type TaskPayload struct {
	ChallengeID string `bson:"challenge_id" json:"challenge_id"`
	RoundNumber uint32 `bson:"round_number" json:"round_number"`
}

type ScheduledTaskDocument struct {
	ID         string           `bson:"_id"`
	Kind       string           `bson:"kind"`
	Payload    TaskPayload      `bson:"payload"`
	FireAt     time.Time        `bson:"fire_at"`
	Status     types.TaskStatus `bson:"status"`
	Attempts   uint32           `bson:"attempts"`
	LastError  string           `bson:"last_error,omitempty"`
	LeaseUntil *time.Time       `bson:"lease_until,omitempty"`
	UpdatedAt  time.Time        `bson:"updated_at"`
}
