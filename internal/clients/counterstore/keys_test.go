package counterstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "challenge:c1:round:3:coins", RoundCoinsKey("c1", 3))

	key := StreakKey{Channel: "ch", SenderID: "s", RecipientID: "r", GiftID: "rose"}
	assert.Equal(t, "streak:ch:s:r:rose", key.String())
}
