package model

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HamMeyva/challenge-engine/internal/config"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	ChallengeCollection: {
		{Indexes: map[string]int{"status": 1}},
		{Indexes: map[string]int{"stream_id": 1}},
	},
	ChallengeTeamCollection: {
		{Indexes: map[string]int{"challenge_id": 1, "team_no": 1}, Unique: true},
	},
	ChallengeRoundCollection: {
		{Indexes: map[string]int{"challenge_id": 1, "round_number": 1}, Unique: true},
	},
	LedgerEntryCollection: {
		{Indexes: map[string]int{"applied": 1, "created_at": 1}},
		{Indexes: map[string]int{"user_id": 1}},
		{Indexes: map[string]int{"gift_event_id": 1}},
	},
	WalletCollection: {},
	GiftCollection: {
		{Indexes: map[string]int{"challenge_id": 1}},
		{Indexes: map[string]int{"channel": 1}},
	},
	ChannelGiftStatsCollection: {},
	ViewerGiftStatsCollection:  {},
	StreamCollection:           {},
	ScheduledTaskCollection: {
		{Indexes: map[string]int{"status": 1, "fire_at": 1}},
	},
}

// Setup creates the collections and indexes the service relies on. Compound
// index keys are built in sorted field order.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.DbName)

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for collection, idxs := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	// Check if the collection already exists.
	names, err := database.ListCollectionNames(ctx, bson.M{"name": collectionName})
	if err != nil {
		return fmt.Errorf("error listing collections for %s: %w", collectionName, err)
	}
	if len(names) > 0 {
		log.Ctx(ctx).Debug().Msgf("Collection %s already exists, skipping creation.", collectionName)
		return nil
	}

	if err := database.CreateCollection(ctx, collectionName); err != nil {
		return fmt.Errorf("error creating collection %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Msgf("Collection %s created successfully.", collectionName)
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	if len(idx.Indexes) == 0 {
		return nil
	}

	keys := bson.D{}
	for _, field := range slices.Sorted(maps.Keys(idx.Indexes)) {
		keys = append(keys, bson.E{Key: field, Value: idx.Indexes[field]})
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Msgf("Index created successfully on collection: %s", collectionName)
	return nil
}
