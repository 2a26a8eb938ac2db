package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventPublisher implements ports.WalletEventPublisher: the synchronous
// post-commit event channel. Each publish wraps the payload in a fresh
// envelope; the durable copy of the same event travels separately
// through the outbox, so a failure here is never fatal.
type EventPublisher struct {
	broker ports.BrokerPublisher
	stream string
	log    zerolog.Logger
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(broker ports.BrokerPublisher, stream string, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		broker: broker,
		stream: stream,
		log:    log,
	}
}

// PublishWalletEvent publishes the payload wrapped in an envelope.
func (p *EventPublisher) PublishWalletEvent(ctx context.Context, payload domain.EventPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	aggregateID := payload.AggregateID()
	if aggregateID == "" {
		aggregateID = domain.UnknownAggregateID
	}

	envelope := domain.EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     payload.EventType(),
		AggregateID:   aggregateID,
		Payload:       data,
		CreatedAt:     time.Now().UTC(),
		CorrelationID: payload.CorrelationID(),
	}
	message, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	if err := p.broker.Publish(ctx, p.stream, aggregateID, message); err != nil {
		return err
	}

	p.log.Debug().
		Str("event_id", envelope.EventID).
		Str("event_type", envelope.EventType).
		Msg("wallet event published")
	return nil
}
