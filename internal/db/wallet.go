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
)

// recentEntriesWindow bounds the applied-entry ids kept on a wallet. An
// entry older than the window is assumed to have been applied long ago.
const recentEntriesWindow = 1000

func (db *Database) GetWallet(ctx context.Context, userID string) (*model.WalletDocument, error) {
	res := db.collection(model.WalletCollection).FindOne(ctx, bson.M{"_id": userID})

	var wallet model.WalletDocument
	if err := res.Decode(&wallet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     userID,
				Message: "wallet not found",
			}
		}
		return nil, err
	}

	return &wallet, nil
}

// SaveLedgerEntries appends entries in order. Entries are inserted unapplied,
// ApplyLedgerEntry moves the wallet balance by the entry amount and marks the
// entry applied. Applying the same entry again does not move the balance; the
// returned bool reports whether this call moved it. A debit is only applied
// if the balance covers it, otherwise InsufficientBalanceError is returned.
func (db *Database) ApplyLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) (bool, error) {
	var (
		applied bool
		err     error
	)
	if entry.Amount < 0 {
		applied, err = db.applyDebit(ctx, entry)
	} else {
		applied, err = db.applyCredit(ctx, entry)
	}
	if err != nil {
		return false, err
	}

	_, err = db.collection(model.LedgerEntryCollection).UpdateOne(
		ctx,
		bson.M{"_id": entry.ID},
		bson.M{"$set": bson.M{"applied": true}},
	)
	if err != nil {
		return applied, err
	}

	return applied, nil
}

func (db *Database) applyCredit(ctx context.Context, entry *model.LedgerEntryDocument) (bool, error) {
	filter := bson.M{
		"_id":            entry.UserID,
		"recent_entries": bson.M{"$ne": entry.ID},
	}
	opts := options.Update().SetUpsert(true)

	var (
		res *mongo.UpdateResult
		err error
	)
	// a duplicate key on upsert means either the entry is already applied or
	// another entry created the wallet concurrently; the second attempt tells
	// the two apart
	for attempt := 0; attempt < 2; attempt++ {
		res, err = db.collection(model.WalletCollection).UpdateOne(ctx, filter, ledgerEntryUpdate(entry), opts)
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			break
		}
	}

	switch {
	case err == nil:
		return res.MatchedCount > 0 || res.UpsertedCount > 0, nil
	case mongo.IsDuplicateKeyError(err):
		// wallet exists and already contains the entry
		return false, nil
	default:
		return false, err
	}
}

// applyDebit moves the balance only if it stays non-negative. Debits never
// create a wallet.
func (db *Database) applyDebit(ctx context.Context, entry *model.LedgerEntryDocument) (bool, error) {
	field := model.BalanceField(entry.Balance)
	filter := bson.M{
		"_id":            entry.UserID,
		"recent_entries": bson.M{"$ne": entry.ID},
		field:            bson.M{"$gte": -entry.Amount},
	}

	res, err := db.collection(model.WalletCollection).UpdateOne(ctx, filter, ledgerEntryUpdate(entry))
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// no match: the entry was applied before, or the balance does not cover it
	count, err := db.collection(model.WalletCollection).CountDocuments(ctx, bson.M{
		"_id":            entry.UserID,
		"recent_entries": entry.ID,
	})
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, &InsufficientBalanceError{
			UserID:  entry.UserID,
			Amount:  entry.Amount,
			Message: fmt.Sprintf("%s balance of %s does not cover %d", field, entry.UserID, -entry.Amount),
		}
	}
	return false, nil
}

func ledgerEntryUpdate(entry *model.LedgerEntryDocument) bson.M {
	return bson.M{
		"$inc": bson.M{model.BalanceField(entry.Balance): entry.Amount},
		"$push": bson.M{
			"recent_entries": bson.M{
				"$each":  bson.A{entry.ID},
				"$slice": -recentEntriesWindow,
			},
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
}

// VoidLedgerEntries marks the unapplied entries of a gift event void so the
// reconciler never applies them.
func (db *Database) VoidLedgerEntries(ctx context.Context, giftEventID string) error {
	_, err := db.collection(model.LedgerEntryCollection).UpdateMany(
		ctx,
		bson.M{"gift_event_id": giftEventID, "applied": false},
		bson.M{"$set": bson.M{"voided": true}},
	)
	return err
}

func (db *Database) FindUnappliedLedgerEntries(
	ctx context.Context, createdBefore time.Time, limit uint64,
) ([]*model.LedgerEntryDocument, error) {
	filter := bson.M{
		"applied":    false,
		"voided":     bson.M{"$ne": true},
		"created_at": bson.M{"$lte": createdBefore},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := db.collection(model.LedgerEntryCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.LedgerEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (db *Database) GetLedgerEntriesByGiftEvent(ctx context.Context, giftEventID string) ([]*model.LedgerEntryDocument, error) {
	filter := bson.M{"gift_event_id": giftEventID}
	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: 1}})

	cursor, err := db.collection(model.LedgerEntryCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.LedgerEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
