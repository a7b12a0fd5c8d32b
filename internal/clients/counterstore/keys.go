package counterstore

import "fmt"

func RoundCoinsKey(challengeID string, roundNumber uint32) string {
	return fmt.Sprintf("challenge:%s:round:%d:coins", challengeID, roundNumber)
}

// StreakKey identifies a run of identical gifts from one sender to one
// recipient on a channel.
type StreakKey struct {
	Channel     string
	SenderID    string
	RecipientID string
	GiftID      string
}

func (k StreakKey) String() string {
	return fmt.Sprintf("streak:%s:%s:%s:%s", k.Channel, k.SenderID, k.RecipientID, k.GiftID)
}
