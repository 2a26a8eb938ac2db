package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallet-ledger/config"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// OutboxPublisherImpl implements ports.OutboxEventPublisher. It writes
// the serialized payload as an outbox row inside the caller's database
// transaction, so the intent-to-publish commits with the mutation.
type OutboxPublisherImpl struct {
	outboxRepo ports.OutboxRepository
	enabled    bool
	log        zerolog.Logger
}

// NewOutboxPublisher creates a new OutboxPublisherImpl.
func NewOutboxPublisher(outboxRepo ports.OutboxRepository, cfg config.OutboxConfig, log zerolog.Logger) *OutboxPublisherImpl {
	return &OutboxPublisherImpl{
		outboxRepo: outboxRepo,
		enabled:    cfg.AuditEnabled,
		log:        log,
	}
}

// PublishOutboxEvent records the payload in the outbox. A failure here
// must abort the enclosing transaction: a committed mutation without
// its outbox row would never reach the audit stream.
func (p *OutboxPublisherImpl) PublishOutboxEvent(ctx context.Context, tx pgx.Tx, payload domain.EventPayload) error {
	if !p.enabled {
		p.log.Debug().
			Str("event_type", payload.EventType()).
			Msg("audit disabled, skipping outbox write")
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return apperror.ErrOutboxWrite(fmt.Errorf("marshal payload: %w", err))
	}

	aggregateID := payload.AggregateID()
	if aggregateID == "" {
		aggregateID = domain.UnknownAggregateID
	}
	correlationID := payload.CorrelationID()
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	event := &domain.OutboxEvent{
		ID:            uuid.New(),
		AggregateID:   aggregateID,
		EventType:     payload.EventType(),
		EventData:     data,
		CreatedAt:     time.Now().UTC(),
		CorrelationID: correlationID,
	}
	if err := p.outboxRepo.Create(ctx, tx, event); err != nil {
		return apperror.ErrOutboxWrite(err)
	}

	p.log.Debug().
		Str("event_id", event.ID.String()).
		Str("event_type", event.EventType).
		Str("aggregate_id", event.AggregateID).
		Msg("outbox event recorded")
	return nil
}
