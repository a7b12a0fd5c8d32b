package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

func (db *Database) SaveChallenge(ctx context.Context, challenge *model.ChallengeDocument) error {
	if challenge == nil {
		return errors.New("nil challenge document")
	}

	_, err := db.collection(model.ChallengeCollection).InsertOne(ctx, challenge)
	return wrapDuplicateKeyError(err, challenge.ID, "challenge already exists")
}

func (db *Database) GetChallengeByID(ctx context.Context, id string) (*model.ChallengeDocument, error) {
	return db.findChallenge(ctx, bson.M{"_id": id}, id)
}

func (db *Database) GetActiveChallengeByID(ctx context.Context, id string) (*model.ChallengeDocument, error) {
	return db.findChallenge(ctx, bson.M{
		"_id":    id,
		"status": types.ChallengeStatusActive.String(),
	}, id)
}

func (db *Database) findChallenge(ctx context.Context, filter bson.M, id string) (*model.ChallengeDocument, error) {
	res := db.collection(model.ChallengeCollection).FindOne(ctx, filter)

	var challenge model.ChallengeDocument
	if err := res.Decode(&challenge); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "challenge not found",
			}
		}
		return nil, err
	}

	return &challenge, nil
}

// AdvanceChallengeRound raises current_round to nextRound. It never lowers
// it, so re-running it for the same round is harmless. NotFoundError means
// the challenge is gone, no longer active, or already past nextRound.
func (db *Database) AdvanceChallengeRound(ctx context.Context, id string, nextRound uint32) error {
	filter := bson.M{
		"_id":           id,
		"status":        types.ChallengeStatusActive.String(),
		"current_round": bson.M{"$lte": nextRound},
	}
	update := bson.M{
		"$max": bson.M{"current_round": nextRound},
	}

	res, err := db.collection(model.ChallengeCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "active challenge not found or already past the round",
		}
	}

	return nil
}

func (db *Database) UpdateChallengeStatus(
	ctx context.Context,
	id string,
	qualifiedPreviousStatuses []types.ChallengeStatus,
	newStatus types.ChallengeStatus,
	opts ...UpdateOption,
) error {
	options := &updateChallengeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	qualifiedStrs := make([]string, len(qualifiedPreviousStatuses))
	for i, status := range qualifiedPreviousStatuses {
		qualifiedStrs[i] = status.String()
	}

	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": qualifiedStrs},
	}

	updateFields := bson.M{
		"status": newStatus.String(),
	}
	if options.totalCoins != nil {
		updateFields["total_coins_earned"] = *options.totalCoins
	}
	if options.endedAt != nil {
		updateFields["ended_at"] = *options.endedAt
	}

	res := db.collection(model.ChallengeCollection).
		FindOneAndUpdate(ctx, filter, bson.M{"$set": updateFields})
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     id,
				Message: "challenge not found or current status is not qualified",
			}
		}
		return res.Err()
	}

	return nil
}
