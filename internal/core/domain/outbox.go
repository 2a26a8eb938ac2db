package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a durable intent-to-publish row, written in the same
// unit of work as the domain mutation it describes. Only the relay
// mutates the status fields (Processed, ProcessedAt, RetryCount,
// ErrorMessage) after creation.
type OutboxEvent struct {
	ID            uuid.UUID  `json:"id"`
	AggregateID   string     `json:"aggregate_id"`
	EventType     string     `json:"event_type"`
	EventData     []byte     `json:"event_data"` // serialized JSON payload
	CreatedAt     time.Time  `json:"created_at"`
	Processed     bool       `json:"processed"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	RetryCount    int        `json:"retry_count"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CorrelationID string     `json:"correlation_id"`
}

// IsExhausted reports whether the event has used up its publish
// attempts and requires manual intervention.
func (e *OutboxEvent) IsExhausted(maxRetries int) bool {
	return e.RetryCount >= maxRetries
}
