package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/consumer"
	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
)

// QueueManager publishes challenge events to a durable topic exchange with
// publisher confirms. The connection is (re)opened lazily on publish.
type QueueManager struct {
	cfg *config.QueueConfig

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	if cfg == nil {
		return nil, errors.New("nil queue config")
	}
	return &QueueManager{cfg: cfg}, nil
}

func (qm *QueueManager) Start() error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	_, err := qm.ensureChannel()
	return err
}

func (qm *QueueManager) PushRoundResultEvent(ctx context.Context, ev *consumer.RoundResultEvent) error {
	return qm.publish(ctx, ev.EventType, ev.ChallengeID, ev)
}

func (qm *QueueManager) PushChallengeFinishedEvent(ctx context.Context, ev *consumer.ChallengeFinishedEvent) error {
	return qm.publish(ctx, ev.EventType, ev.ChallengeID, ev)
}

func (qm *QueueManager) PushChallengeCancelledEvent(ctx context.Context, ev *consumer.ChallengeCancelledEvent) error {
	return qm.publish(ctx, ev.EventType, ev.ChallengeID, ev)
}

func (qm *QueueManager) Stop() error {
	qm.Shutdown()
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			log.Error().Err(err).Msg("failed to close queue channel")
		}
		qm.channel = nil
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			log.Error().Err(err).Msg("failed to close queue connection")
		}
		qm.conn = nil
	}
}

func (qm *QueueManager) publish(ctx context.Context, eventType consumer.EventType, challengeID string, ev any) error {
	err := qm.doPublish(ctx, eventType, ev)
	if err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_type", string(eventType)).
			Str("challenge_id", challengeID).
			Msg("failed to push event to the queue")
		return err
	}

	log.Ctx(ctx).Debug().
		Str("event_type", string(eventType)).
		Str("challenge_id", challengeID).
		Msg("pushed event to the queue")
	return nil
}

func (qm *QueueManager) doPublish(ctx context.Context, eventType consumer.EventType, ev any) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.QueueProcessingTimeout)
	defer cancel()

	qm.mu.Lock()
	defer qm.mu.Unlock()

	ch, err := qm.ensureChannel()
	if err != nil {
		return err
	}

	confirmation, err := ch.PublishWithDeferredConfirmWithContext(ctx, qm.cfg.Exchange, eventType.RoutingKey(), false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         string(eventType),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm %s event: %w", eventType, err)
	}
	if !acked {
		return fmt.Errorf("%s event was nacked by the broker", eventType)
	}

	return nil
}

// ensureChannel must be called with qm.mu held.
func (qm *QueueManager) ensureChannel() (*amqp.Channel, error) {
	if qm.channel != nil && !qm.channel.IsClosed() {
		return qm.channel, nil
	}

	if qm.conn == nil || qm.conn.IsClosed() {
		conn, err := amqp.Dial(qm.amqpURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to the queue: %w", err)
		}
		qm.conn = conn
	}

	ch, err := qm.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	err = ch.ExchangeDeclare(qm.cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", qm.cfg.Exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	qm.channel = ch
	return ch, nil
}

func (qm *QueueManager) amqpURL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(qm.cfg.QueueUser, qm.cfg.QueuePassword),
		Host:   qm.cfg.Url,
	}
	return u.String()
}
