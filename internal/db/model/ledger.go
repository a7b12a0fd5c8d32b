package model

import (
	"time"

	"github.com/HamMeyva/challenge-engine/internal/types"
)

const (
	LedgerEntryCollection = "ledger_entries"
	WalletCollection      = "wallets"
)

// LedgerEntryDocument is an append-only coin movement. Applied and Voided
// are the only fields that change after insert. A voided entry never moves
// a balance.
type LedgerEntryDocument struct {
	ID                string                `bson:"_id"`
	UserID            string                `bson:"user_id"`
	Amount            int64                 `bson:"amount"`
	Type              types.LedgerEntryType `bson:"type"`
	Balance           types.BalanceKind     `bson:"balance"`
	GiftEventID       string                `bson:"gift_event_id,omitempty"`
	CounterpartUserID string                `bson:"counterpart_user_id,omitempty"`
	Applied           bool                  `bson:"applied"`
	Voided            bool                  `bson:"voided"`
	CreatedAt         time.Time             `bson:"created_at"`
}

type WalletDocument struct {
	UserID           string `bson:"_id"`
	SpendableBalance int64  `bson:"spendable_balance"`
	EarnedBalance    int64  `bson:"earned_balance"`
	// RecentEntries holds the ids of the last applied ledger entries so that
	// applying an entry twice is detected.
	RecentEntries []string  `bson:"recent_entries"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// BalanceField maps a balance kind onto the wallet document field it moves.
func BalanceField(kind types.BalanceKind) string {
	if kind == types.BalanceEarned {
		return "earned_balance"
	}
	return "spendable_balance"
}
