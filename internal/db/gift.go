package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/db/model"
)

func (db *Database) SaveGift(ctx context.Context, gift *model.GiftDocument) error {
	if gift == nil {
		return errors.New("nil gift document")
	}

	_, err := db.collection(model.GiftCollection).InsertOne(ctx, gift)
	return wrapDuplicateKeyError(err, gift.ID, "gift already exists")
}

func (db *Database) GetGiftsByChallenge(ctx context.Context, challengeID string) ([]*model.GiftDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := db.collection(model.GiftCollection).Find(ctx, bson.M{"challenge_id": challengeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gifts []*model.GiftDocument
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, err
	}

	return gifts, nil
}

// IncrementChannelGiftStats updates or inserts the channel level gift counters
func (db *Database) IncrementChannelGiftStats(ctx context.Context, channel string, giftCount, coins uint64) error {
	filter := bson.M{"_id": channel}
	update := bson.M{
		"$inc": bson.M{
			"gift_count": giftCount,
			"coin_total": coins,
		},
		"$set": bson.M{"last_updated": time.Now().Unix()},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.ChannelGiftStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// IncrementViewerGiftStats updates or inserts sent coins of the sender and
// received coins of the recipient
func (db *Database) IncrementViewerGiftStats(ctx context.Context, senderID, recipientID string, coins uint64) error {
	now := time.Now().Unix()
	opts := options.Update().SetUpsert(true)
	collection := db.collection(model.ViewerGiftStatsCollection)

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": senderID},
		bson.M{
			"$inc": bson.M{"sent_coins": coins},
			"$set": bson.M{"last_updated": now},
		},
		opts,
	)
	if err != nil {
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": recipientID},
		bson.M{
			"$inc": bson.M{"received_coins": coins},
			"$set": bson.M{"last_updated": now},
		},
		opts,
	)
	return err
}

func (db *Database) GetChannelGiftStats(ctx context.Context, channel string) (*model.ChannelGiftStatsDocument, error) {
	var stats model.ChannelGiftStatsDocument
	err := db.collection(model.ChannelGiftStatsCollection).FindOne(ctx, bson.M{"_id": channel}).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     channel,
				Message: "channel gift stats not found",
			}
		}
		return nil, err
	}

	return &stats, nil
}
