package model

const StreamCollection = "streams"

// StreamDocument is owned by the streaming side of the platform, this
// service only toggles the challenge flag.
type StreamDocument struct {
	ID                string `bson:"_id"`
	IsChallengeActive bool   `bson:"is_challenge_active"`
	ActiveChallengeID string `bson:"active_challenge_id,omitempty"`
}
