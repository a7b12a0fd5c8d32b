package types

type LedgerEntryType string

const (
	LedgerEntryPurchase    LedgerEntryType = "purchase"
	LedgerEntrySpendGift   LedgerEntryType = "spend_gift"
	LedgerEntryReceiveGift LedgerEntryType = "receive_gift"
)

func (t LedgerEntryType) String() string {
	return string(t)
}

// BalanceKind selects which wallet balance a ledger entry moves.
type BalanceKind string

const (
	BalanceSpendable BalanceKind = "spendable"
	BalanceEarned    BalanceKind = "earned"
)

func (b BalanceKind) String() string {
	return string(b)
}
