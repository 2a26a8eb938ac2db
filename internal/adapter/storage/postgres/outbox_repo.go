package postgres

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OutboxRepo implements ports.OutboxRepository.
type OutboxRepo struct {
	pool Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(pool Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Create inserts an outbox event within a database transaction, so the
// intent-to-publish commits or rolls back with the domain mutation.
func (r *OutboxRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.OutboxEvent) error {
	query := `INSERT INTO outbox_events
		(id, aggregate_id, event_type, event_data, created_at, processed, processed_at, retry_count, error_message, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.AggregateID, e.EventType, e.EventData, e.CreatedAt,
		e.Processed, e.ProcessedAt, e.RetryCount, e.ErrorMessage, e.CorrelationID,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// ListUnprocessed returns up to limit unprocessed events created before
// olderThan with retry_count below maxRetries, oldest first. Events at
// or past maxRetries are exhausted: retained for inspection but never
// returned here again.
func (r *OutboxRepo) ListUnprocessed(ctx context.Context, olderThan time.Time, maxRetries, limit int) ([]domain.OutboxEvent, error) {
	query := `SELECT id, aggregate_id, event_type, event_data, created_at, processed, processed_at, retry_count, error_message, correlation_id
		FROM outbox_events
		WHERE processed = FALSE AND created_at < $1 AND retry_count < $2
		ORDER BY created_at ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, olderThan, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed outbox events: %w", err)
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		e := domain.OutboxEvent{}
		err := rows.Scan(
			&e.ID, &e.AggregateID, &e.EventType, &e.EventData, &e.CreatedAt,
			&e.Processed, &e.ProcessedAt, &e.RetryCount, &e.ErrorMessage, &e.CorrelationID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox event rows: %w", err)
	}
	return events, nil
}

// MarkProcessed flips an event to processed. The processed = FALSE
// guard makes the update a claim: a second marker finds zero rows.
func (r *OutboxRepo) MarkProcessed(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	query := `UPDATE outbox_events SET processed = TRUE, processed_at = $1
		WHERE id = $2 AND processed = FALSE`

	tag, err := r.pool.Exec(ctx, query, processedAt, id)
	if err != nil {
		return fmt.Errorf("mark outbox event processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RecordFailure increments retry_count and stores the publish error,
// leaving the event eligible for a later cycle until it exhausts.
func (r *OutboxRepo) RecordFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `UPDATE outbox_events SET retry_count = retry_count + 1, error_message = $1
		WHERE id = $2 AND processed = FALSE`

	_, err := r.pool.Exec(ctx, query, errMsg, id)
	if err != nil {
		return fmt.Errorf("record outbox event failure: %w", err)
	}
	return nil
}
