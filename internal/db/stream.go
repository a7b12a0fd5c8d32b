package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
)

// SetStreamChallengeActive toggles the challenge flag of a stream. Clearing
// only applies while the stream still points at challengeID, so a finished
// challenge never clears the flag of a newer one.
func (db *Database) SetStreamChallengeActive(ctx context.Context, streamID, challengeID string, active bool) error {
	collection := db.collection(model.StreamCollection)

	if active {
		update := bson.M{"$set": bson.M{
			"is_challenge_active": true,
			"active_challenge_id": challengeID,
		}}
		_, err := collection.UpdateOne(ctx, bson.M{"_id": streamID}, update, options.Update().SetUpsert(true))
		return err
	}

	filter := bson.M{
		"_id":                 streamID,
		"active_challenge_id": challengeID,
	}
	update := bson.M{
		"$set":   bson.M{"is_challenge_active": false},
		"$unset": bson.M{"active_challenge_id": ""},
	}
	_, err := collection.UpdateOne(ctx, filter, update)
	return err
}

func (db *Database) GetStream(ctx context.Context, streamID string) (*model.StreamDocument, error) {
	var stream model.StreamDocument
	err := db.collection(model.StreamCollection).FindOne(ctx, bson.M{"_id": streamID}).Decode(&stream)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     streamID,
				Message: "stream not found",
			}
		}
		return nil, err
	}

	return &stream, nil
}
