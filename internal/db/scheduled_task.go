package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

func (db *Database) SaveScheduledTask(ctx context.Context, task *model.ScheduledTaskDocument) error {
	if task == nil {
		return errors.New("nil scheduled task document")
	}

	_, err := db.collection(model.ScheduledTaskCollection).InsertOne(ctx, task)
	return wrapDuplicateKeyError(err, task.ID, "scheduled task already exists")
}

func (db *Database) GetScheduledTask(ctx context.Context, id string) (*model.ScheduledTaskDocument, error) {
	var task model.ScheduledTaskDocument
	err := db.collection(model.ScheduledTaskCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "scheduled task not found",
			}
		}
		return nil, err
	}

	return &task, nil
}

// ClaimScheduledTask moves a pending task to running under a lease and
// counts the attempt. Only one caller can claim a pending task.
func (db *Database) ClaimScheduledTask(
	ctx context.Context, id string, leaseUntil time.Time,
) (*model.ScheduledTaskDocument, error) {
	filter := bson.M{
		"_id":    id,
		"status": types.TaskStatusPending.String(),
	}
	update := bson.M{
		"$set": bson.M{
			"status":      types.TaskStatusRunning.String(),
			"lease_until": leaseUntil,
			"updated_at":  time.Now().UTC(),
		},
		"$inc": bson.M{"attempts": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task model.ScheduledTaskDocument
	err := db.collection(model.ScheduledTaskCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "pending scheduled task not found",
			}
		}
		return nil, err
	}

	return &task, nil
}

func (db *Database) CompleteScheduledTask(ctx context.Context, id string) error {
	return db.finishScheduledTask(ctx, id, types.TaskStatusDone, "")
}

func (db *Database) FailScheduledTask(ctx context.Context, id string, reason string) error {
	return db.finishScheduledTask(ctx, id, types.TaskStatusFailed, reason)
}

func (db *Database) finishScheduledTask(ctx context.Context, id string, status types.TaskStatus, reason string) error {
	filter := bson.M{
		"_id":    id,
		"status": types.TaskStatusRunning.String(),
	}
	set := bson.M{
		"status":     status.String(),
		"updated_at": time.Now().UTC(),
	}
	if reason != "" {
		set["last_error"] = reason
	}
	update := bson.M{
		"$set":   set,
		"$unset": bson.M{"lease_until": ""},
	}

	res, err := db.collection(model.ScheduledTaskCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "running scheduled task not found",
		}
	}

	return nil
}

// CancelScheduledTask cancels a task that has not started yet. It returns
// false if there was no pending task with that id.
func (db *Database) CancelScheduledTask(ctx context.Context, id string) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": types.TaskStatusPending.String(),
	}
	update := bson.M{"$set": bson.M{
		"status":     types.TaskStatusCancelled.String(),
		"updated_at": time.Now().UTC(),
	}}

	res, err := db.collection(model.ScheduledTaskCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return res.ModifiedCount > 0, nil
}

func (db *Database) FindScheduledTasksByStatus(
	ctx context.Context, status types.TaskStatus,
) ([]*model.ScheduledTaskDocument, error) {
	filter := bson.M{"status": status.String()}
	opts := options.Find().SetSort(bson.D{{Key: "fire_at", Value: 1}})

	cursor, err := db.collection(model.ScheduledTaskCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.ScheduledTaskDocument
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// RequeueScheduledTask puts a failed or lease-expired running task back to
// pending so it fires again at fireAt.
func (db *Database) RequeueScheduledTask(ctx context.Context, id string, fireAt time.Time) error {
	now := time.Now().UTC()
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"status": types.TaskStatusFailed.String()},
			bson.M{
				"status":      types.TaskStatusRunning.String(),
				"lease_until": bson.M{"$lt": now},
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     types.TaskStatusPending.String(),
			"fire_at":    fireAt,
			"updated_at": now,
		},
		"$unset": bson.M{"lease_until": ""},
	}

	res, err := db.collection(model.ScheduledTaskCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "scheduled task not found or not eligible for requeue",
		}
	}

	return nil
}

func (db *Database) FindExpiredTaskLeases(ctx context.Context, now time.Time) ([]*model.ScheduledTaskDocument, error) {
	filter := bson.M{
		"status":      types.TaskStatusRunning.String(),
		"lease_until": bson.M{"$lt": now},
	}

	cursor, err := db.collection(model.ScheduledTaskCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.ScheduledTaskDocument
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}
