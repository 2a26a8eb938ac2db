package redis

import (
	"context"

	"wallet-ledger/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// StreamPublisher implements ports.BrokerPublisher on Redis Streams.
// XAdd is a synchronous command round-trip, so a nil error doubles as
// the broker acknowledgment the outbox relay relies on.
type StreamPublisher struct {
	client *goredis.Client
}

// NewStreamPublisher creates a new StreamPublisher.
func NewStreamPublisher(client *goredis.Client) *StreamPublisher {
	return &StreamPublisher{client: client}
}

// Publish appends the message to the stream. The key rides along as a
// field so consumers can partition or filter by aggregate.
func (p *StreamPublisher) Publish(ctx context.Context, stream, key string, message []byte) error {
	err := p.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"key":     key,
			"message": message,
		},
	}).Err()
	if err != nil {
		return apperror.ErrTransport(err)
	}
	return nil
}
