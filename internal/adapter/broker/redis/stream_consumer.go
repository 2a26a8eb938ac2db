package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	consumerName  = "audit-1"
	readBatchSize = 100
	readBlock     = 5 * time.Second
	// seenCapacity bounds the in-memory dedupe window. Redelivery of an
	// event older than the window would be audited twice, which is
	// acceptable for an append-only audit trail.
	seenCapacity = 10000
)

// AuditConsumer reads the wallet event stream through a consumer group
// and writes an audit record per event. Delivery is at-least-once, so
// events are deduplicated by their envelope event id before handling.
type AuditConsumer struct {
	client *goredis.Client
	stream string
	group  string
	log    zerolog.Logger

	handle func(ctx context.Context, envelope domain.EventEnvelope)

	seen      map[string]struct{}
	seenOrder []string
}

// NewAuditConsumer creates a new AuditConsumer.
func NewAuditConsumer(client *goredis.Client, stream, group string, log zerolog.Logger) *AuditConsumer {
	c := &AuditConsumer{
		client: client,
		stream: stream,
		group:  group,
		log:    log,
		seen:   make(map[string]struct{}, seenCapacity),
	}
	c.handle = c.audit
	return c
}

// Run consumes the stream until ctx is cancelled.
func (c *AuditConsumer) Run(ctx context.Context) {
	if err := c.ensureGroup(ctx); err != nil {
		c.log.Error().Err(err).Str("group", c.group).Msg("creating consumer group failed")
		return
	}

	c.log.Info().
		Str("stream", c.stream).
		Str("group", c.group).
		Msg("audit consumer started")

	for {
		if ctx.Err() != nil {
			c.log.Info().Msg("audit consumer stopped")
			return
		}
		if _, err := c.consumeBatch(ctx, readBlock); err != nil {
			if ctx.Err() != nil {
				c.log.Info().Msg("audit consumer stopped")
				return
			}
			c.log.Warn().Err(err).Msg("reading event stream failed")
			time.Sleep(time.Second)
		}
	}
}

// ensureGroup creates the consumer group from the start of the stream.
// An already-existing group is not an error.
func (c *AuditConsumer) ensureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// consumeBatch reads and handles one batch of messages, acknowledging
// each after handling. Returns the number of messages handled.
func (c *AuditConsumer) consumeBatch(ctx context.Context, block time.Duration) (int, error) {
	res, err := c.client.XReadGroup(ctx, &goredis.XReadGroupArgs{
		Group:    c.group,
		Consumer: consumerName,
		Streams:  []string{c.stream, ">"},
		Count:    readBatchSize,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	handled := 0
	for _, stream := range res {
		for _, msg := range stream.Messages {
			if c.handleMessage(ctx, msg) {
				handled++
			}
			if err := c.client.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
				c.log.Warn().Err(err).Str("message_id", msg.ID).Msg("acking message failed")
			}
		}
	}
	return handled, nil
}

// handleMessage parses and dispatches one stream entry. Reports whether
// the entry was handled (false for malformed or duplicate entries).
func (c *AuditConsumer) handleMessage(ctx context.Context, msg goredis.XMessage) bool {
	raw, ok := msg.Values["message"].(string)
	if !ok {
		c.log.Warn().Str("message_id", msg.ID).Msg("stream entry without message field")
		return false
	}

	var envelope domain.EventEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		c.log.Warn().Err(err).Str("message_id", msg.ID).Msg("malformed event envelope")
		return false
	}

	if c.isDuplicate(envelope.EventID) {
		c.log.Debug().
			Str("event_id", envelope.EventID).
			Msg("duplicate event skipped")
		return false
	}

	c.handle(ctx, envelope)
	return true
}

// audit writes one audit record per event type.
func (c *AuditConsumer) audit(_ context.Context, envelope domain.EventEnvelope) {
	entry := c.log.Info().
		Str("event_id", envelope.EventID).
		Str("aggregate_id", envelope.AggregateID).
		Str("correlation_id", envelope.CorrelationID).
		Time("created_at", envelope.CreatedAt).
		RawJSON("payload", envelope.Payload)

	switch envelope.EventType {
	case domain.EventTypeWalletCreated:
		entry.Msg("audit: wallet created")
	case domain.EventTypeFundsDeposited:
		entry.Msg("audit: funds deposited")
	case domain.EventTypeFundsWithdrawn:
		entry.Msg("audit: funds withdrawn")
	case domain.EventTypeFundsTransferred:
		entry.Msg("audit: funds transferred")
	default:
		entry.Msg("audit: unknown event type")
	}
}

// isDuplicate records the event id and reports whether it was already
// seen. The window is bounded: the oldest id falls out at capacity.
func (c *AuditConsumer) isDuplicate(eventID string) bool {
	if eventID == "" {
		return false
	}
	if _, ok := c.seen[eventID]; ok {
		return true
	}
	c.seen[eventID] = struct{}{}
	c.seenOrder = append(c.seenOrder, eventID)
	if len(c.seenOrder) > seenCapacity {
		delete(c.seen, c.seenOrder[0])
		c.seenOrder = c.seenOrder[1:]
	}
	return false
}
