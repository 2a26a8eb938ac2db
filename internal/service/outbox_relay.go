package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/config"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// OutboxRelay drains unprocessed outbox events to the broker. It runs
// a single polling goroutine; cycles never overlap, so a slow broker
// delays delivery but cannot pile up concurrent publishes for the same
// event. Delivery is at-least-once: consumers deduplicate by event id.
type OutboxRelay struct {
	outboxRepo ports.OutboxRepository
	broker     ports.BrokerPublisher
	stream     string
	cfg        config.OutboxConfig
	log        zerolog.Logger
}

// NewOutboxRelay creates a new OutboxRelay.
func NewOutboxRelay(outboxRepo ports.OutboxRepository, broker ports.BrokerPublisher, stream string, cfg config.OutboxConfig, log zerolog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outboxRepo: outboxRepo,
		broker:     broker,
		stream:     stream,
		cfg:        cfg,
		log:        log,
	}
}

// Run polls the outbox until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	r.log.Info().
		Dur("poll_interval", r.cfg.PollInterval).
		Int("batch_size", r.cfg.BatchSize).
		Msg("outbox relay started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("outbox relay stopped")
			return
		case <-ticker.C:
			r.runCycle(ctx)
		}
	}
}

// runCycle relays one batch. Only events older than MinAge are picked
// up, which keeps the relay from racing transactions that are still
// committing their outbox row.
func (r *OutboxRelay) runCycle(ctx context.Context) {
	if !r.cfg.AuditEnabled {
		return
	}

	olderThan := time.Now().UTC().Add(-r.cfg.MinAge)
	events, err := r.outboxRepo.ListUnprocessed(ctx, olderThan, r.cfg.MaxRetries, r.cfg.BatchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("listing unprocessed outbox events failed")
		return
	}

	for i := range events {
		r.relayEvent(ctx, &events[i])
	}
}

// relayEvent publishes one event and settles its outbox row. A failure
// is recorded on the row and never stops the rest of the batch.
func (r *OutboxRelay) relayEvent(ctx context.Context, e *domain.OutboxEvent) {
	envelope := domain.EventEnvelope{
		EventID:       e.ID.String(),
		EventType:     e.EventType,
		AggregateID:   e.AggregateID,
		Payload:       json.RawMessage(e.EventData),
		CreatedAt:     e.CreatedAt,
		CorrelationID: e.CorrelationID,
	}
	message, err := json.Marshal(envelope)
	if err != nil {
		r.recordFailure(ctx, e, fmt.Errorf("marshal envelope: %w", err))
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, r.cfg.PublishTimeout)
	defer cancel()

	if err := r.broker.Publish(pubCtx, r.stream, e.AggregateID, message); err != nil {
		r.recordFailure(ctx, e, err)
		return
	}

	if err := r.outboxRepo.MarkProcessed(ctx, e.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Another relay instance claimed the event between our list
			// and our mark. The duplicate publish is absorbed by
			// consumer-side dedupe.
			r.log.Debug().
				Str("event_id", e.ID.String()).
				Msg("outbox event already claimed")
			return
		}
		r.log.Error().
			Err(err).
			Str("event_id", e.ID.String()).
			Msg("marking outbox event processed failed")
		return
	}

	r.log.Debug().
		Str("event_id", e.ID.String()).
		Str("event_type", e.EventType).
		Msg("outbox event relayed")
}

func (r *OutboxRelay) recordFailure(ctx context.Context, e *domain.OutboxEvent, cause error) {
	if err := r.outboxRepo.RecordFailure(ctx, e.ID, cause.Error()); err != nil {
		r.log.Error().
			Err(err).
			Str("event_id", e.ID.String()).
			Msg("recording outbox failure failed")
		return
	}

	if e.RetryCount+1 >= r.cfg.MaxRetries {
		// The event stays in the table for manual inspection but is
		// never listed again.
		r.log.Error().
			Err(cause).
			Str("event_id", e.ID.String()).
			Str("event_type", e.EventType).
			Int("retry_count", e.RetryCount+1).
			Msg("outbox event exhausted its retries")
		return
	}

	r.log.Warn().
		Err(cause).
		Str("event_id", e.ID.String()).
		Str("event_type", e.EventType).
		Int("retry_count", e.RetryCount+1).
		Msg("outbox event publish failed, will retry")
}
