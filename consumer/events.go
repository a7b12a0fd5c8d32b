package consumer

const eventSchemaVersion = 1

type EventType string

const (
	RoundResultEventType        EventType = "round_result"
	ChallengeFinishedEventType  EventType = "challenge_finished"
	ChallengeCancelledEventType EventType = "challenge_cancelled"
)

// RoutingKey is the topic key an event of this type is published under.
func (t EventType) RoutingKey() string {
	return "challenge." + string(t)
}

type RoundResultEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     EventType `json:"event_type"`
	ChallengeID   string    `json:"challenge_id"`
	StreamID      string    `json:"stream_id"`
	RoundNumber   uint32    `json:"round_number"`
	Team1Coins    uint64    `json:"team_1_coins"`
	Team2Coins    uint64    `json:"team_2_coins"`
	// WinnerTeamNo is nil on a tie.
	WinnerTeamNo *uint8 `json:"winner_team_no"`
	AggregatedAt int64  `json:"aggregated_at"`
}

func NewRoundResultEvent(
	challengeID, streamID string, roundNumber uint32, team1Coins, team2Coins uint64, winner *uint8, aggregatedAt int64,
) *RoundResultEvent {
	return &RoundResultEvent{
		SchemaVersion: eventSchemaVersion,
		EventType:     RoundResultEventType,
		ChallengeID:   challengeID,
		StreamID:      streamID,
		RoundNumber:   roundNumber,
		Team1Coins:    team1Coins,
		Team2Coins:    team2Coins,
		WinnerTeamNo:  winner,
		AggregatedAt:  aggregatedAt,
	}
}

type TeamResult struct {
	TeamNo           uint8    `json:"team_no"`
	UserID           string   `json:"user_id"`
	MemberIDs        []string `json:"member_ids"`
	TotalCoinsEarned uint64   `json:"total_coins_earned"`
	RoundsWon        uint32   `json:"rounds_won"`
	// CoinWins is the display value derived from max_coins_per_win.
	CoinWins uint64 `json:"coin_wins"`
}

type ChallengeFinishedEvent struct {
	SchemaVersion    int          `json:"schema_version"`
	EventType        EventType    `json:"event_type"`
	ChallengeID      string       `json:"challenge_id"`
	StreamID         string       `json:"stream_id"`
	RoundCount       uint32       `json:"round_count"`
	TotalCoinsEarned uint64       `json:"total_coins_earned"`
	Teams            []TeamResult `json:"teams"`
	WinnerTeamNo     *uint8       `json:"winner_team_no"`
	EndedAt          int64        `json:"ended_at"`
}

func NewChallengeFinishedEvent(
	challengeID, streamID string, roundCount uint32, totalCoins uint64, teams []TeamResult, winner *uint8, endedAt int64,
) *ChallengeFinishedEvent {
	return &ChallengeFinishedEvent{
		SchemaVersion:    eventSchemaVersion,
		EventType:        ChallengeFinishedEventType,
		ChallengeID:      challengeID,
		StreamID:         streamID,
		RoundCount:       roundCount,
		TotalCoinsEarned: totalCoins,
		Teams:            teams,
		WinnerTeamNo:     winner,
		EndedAt:          endedAt,
	}
}

type ChallengeCancelledEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     EventType `json:"event_type"`
	ChallengeID   string    `json:"challenge_id"`
	StreamID      string    `json:"stream_id"`
	CurrentRound  uint32    `json:"current_round"`
	CancelledAt   int64     `json:"cancelled_at"`
}

func NewChallengeCancelledEvent(challengeID, streamID string, currentRound uint32, cancelledAt int64) *ChallengeCancelledEvent {
	return &ChallengeCancelledEvent{
		SchemaVersion: eventSchemaVersion,
		EventType:     ChallengeCancelledEventType,
		ChallengeID:   challengeID,
		StreamID:      streamID,
		CurrentRound:  currentRound,
		CancelledAt:   cancelledAt,
	}
}
