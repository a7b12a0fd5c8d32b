package consumer

import "context"

// EventConsumer receives challenge notifications. Callers treat push
// failures as non-fatal.
//
//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go
type EventConsumer interface {
	Start() error
	PushRoundResultEvent(ctx context.Context, ev *RoundResultEvent) error
	PushChallengeFinishedEvent(ctx context.Context, ev *ChallengeFinishedEvent) error
	PushChallengeCancelledEvent(ctx context.Context, ev *ChallengeCancelledEvent) error
	Stop() error
}
