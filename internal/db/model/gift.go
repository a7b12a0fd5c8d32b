package model

import "time"

const (
	GiftCollection             = "gifts"
	ChannelGiftStatsCollection = "channel_gift_stats"
	ViewerGiftStatsCollection  = "viewer_gift_stats"
)

type GiftDocument struct {
	ID          string    `bson:"_id"`
	SenderID    string    `bson:"sender_id"`
	RecipientID string    `bson:"recipient_id"`
	GiftID      string    `bson:"gift_id"`
	Channel     string    `bson:"channel"`
	Quantity    uint32    `bson:"quantity"`
	UnitCost    uint64    `bson:"unit_cost"`
	CoinValue   uint64    `bson:"coin_value"`
	Streak      int64     `bson:"streak"`
	ChallengeID string    `bson:"challenge_id,omitempty"`
	RoundNumber uint32    `bson:"round_number,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type ChannelGiftStatsDocument struct {
	Channel     string `bson:"_id"`
	GiftCount   uint64 `bson:"gift_count"`
	CoinTotal   uint64 `bson:"coin_total"`
	LastUpdated int64  `bson:"last_updated"` // Unix timestamp of last update
}

type ViewerGiftStatsDocument struct {
	UserID        string `bson:"_id"`
	SentCoins     uint64 `bson:"sent_coins"`
	ReceivedCoins uint64 `bson:"received_coins"`
	LastUpdated   int64  `bson:"last_updated"` // Unix timestamp of last update
}
