package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

func (db *Database) SaveChallengeTeams(ctx context.Context, teams []*model.ChallengeTeamDocument) error {
	if len(teams) == 0 {
		return errors.New("no teams to save")
	}

	docs := make([]any, len(teams))
	for i, team := range teams {
		docs[i] = team
	}

	_, err := db.collection(model.ChallengeTeamCollection).InsertMany(ctx, docs)
	return wrapDuplicateKeyError(err, teams[0].ChallengeID, "challenge teams already exist")
}

func (db *Database) GetChallengeTeams(ctx context.Context, challengeID string) ([]*model.ChallengeTeamDocument, error) {
	filter := bson.M{"challenge_id": challengeID}
	opts := options.Find().SetSort(bson.D{{Key: "team_no", Value: 1}})

	cursor, err := db.collection(model.ChallengeTeamCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []*model.ChallengeTeamDocument
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

// CreditTeamRound adds coins (and a win, if won) to a team for one round.
// A round is credited at most once per team: it returns false when the
// round had already been credited.
func (db *Database) CreditTeamRound(
	ctx context.Context,
	challengeID string,
	teamNo types.TeamNo,
	roundNumber uint32,
	coins uint64,
	won bool,
) (bool, error) {
	filter := bson.M{
		"challenge_id":    challengeID,
		"team_no":         teamNo,
		"credited_rounds": bson.M{"$ne": roundNumber},
	}

	inc := bson.M{"total_coins_earned": coins}
	if won {
		inc["win_count"] = 1
	}
	update := bson.M{
		"$inc":      inc,
		"$addToSet": bson.M{"credited_rounds": roundNumber},
	}

	res, err := db.collection(model.ChallengeTeamCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	count, err := db.collection(model.ChallengeTeamCollection).CountDocuments(ctx, bson.M{
		"challenge_id": challengeID,
		"team_no":      teamNo,
	})
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, &NotFoundError{
			Key:     fmt.Sprintf("%s:%d", challengeID, teamNo),
			Message: "challenge team not found",
		}
	}

	return false, nil
}
