package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// SaveChallengeRound inserts a new round. Rounds are created in increasing
// order: a round number not above the latest persisted one is rejected with
// RoundOutOfOrderError, a concurrent insert of the same number with
// DuplicateKeyError.
func (db *Database) SaveChallengeRound(ctx context.Context, round *model.ChallengeRoundDocument) error {
	if round == nil {
		return errors.New("nil challenge round document")
	}

	latest, err := db.getLatestChallengeRound(ctx, round.ChallengeID)
	if err != nil && !IsNotFoundError(err) {
		return err
	}
	if latest != nil && round.RoundNumber <= latest.RoundNumber {
		return &RoundOutOfOrderError{
			ChallengeID:   round.ChallengeID,
			RoundNumber:   round.RoundNumber,
			LatestRoundNo: latest.RoundNumber,
			Message: fmt.Sprintf(
				"round %d is not after latest round %d", round.RoundNumber, latest.RoundNumber,
			),
		}
	}

	_, err = db.collection(model.ChallengeRoundCollection).InsertOne(ctx, round)
	return wrapDuplicateKeyError(
		err,
		fmt.Sprintf("%s:%d", round.ChallengeID, round.RoundNumber),
		"challenge round already exists",
	)
}

func (db *Database) getLatestChallengeRound(ctx context.Context, challengeID string) (*model.ChallengeRoundDocument, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "round_number", Value: -1}})
	res := db.collection(model.ChallengeRoundCollection).
		FindOne(ctx, bson.M{"challenge_id": challengeID}, opts)

	var round model.ChallengeRoundDocument
	if err := res.Decode(&round); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     challengeID,
				Message: "no rounds found for challenge",
			}
		}
		return nil, err
	}

	return &round, nil
}

func (db *Database) GetChallengeRound(
	ctx context.Context, challengeID string, roundNumber uint32,
) (*model.ChallengeRoundDocument, error) {
	filter := bson.M{
		"challenge_id": challengeID,
		"round_number": roundNumber,
	}
	res := db.collection(model.ChallengeRoundCollection).FindOne(ctx, filter)

	var round model.ChallengeRoundDocument
	if err := res.Decode(&round); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%s:%d", challengeID, roundNumber),
				Message: "challenge round not found",
			}
		}
		return nil, err
	}

	return &round, nil
}

func (db *Database) GetChallengeRounds(ctx context.Context, challengeID string) ([]*model.ChallengeRoundDocument, error) {
	filter := bson.M{"challenge_id": challengeID}
	opts := options.Find().SetSort(bson.D{{Key: "round_number", Value: 1}})

	cursor, err := db.collection(model.ChallengeRoundCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rounds []*model.ChallengeRoundDocument
	if err := cursor.All(ctx, &rounds); err != nil {
		return nil, err
	}

	return rounds, nil
}

// UpdateRoundAggregation writes the aggregation result of a round once. It
// returns false without changing anything when the round was already
// aggregated.
func (db *Database) UpdateRoundAggregation(
	ctx context.Context,
	challengeID string,
	roundNumber uint32,
	totals types.TeamCoins,
	winner *types.TeamNo,
	aggregatedAt time.Time,
) (bool, error) {
	filter := bson.M{
		"challenge_id":        challengeID,
		"round_number":        roundNumber,
		"aggregation_version": 0,
	}
	update := bson.M{
		"$set": bson.M{
			"team_total_coins":    totals,
			"winner_team_no":      winner,
			"aggregation_version": 1,
			"aggregated_at":       aggregatedAt,
		},
	}

	res, err := db.collection(model.ChallengeRoundCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// distinguish an already aggregated round from a missing one
	if _, err := db.GetChallengeRound(ctx, challengeID, roundNumber); err != nil {
		return false, err
	}

	return false, nil
}
