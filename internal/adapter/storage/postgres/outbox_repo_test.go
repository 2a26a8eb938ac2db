package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutboxEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            uuid.New(),
		AggregateID:   uuid.NewString(),
		EventType:     domain.EventTypeFundsDeposited,
		EventData:     []byte(`{"walletId":"w-1"}`),
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
		Processed:     false,
		RetryCount:    0,
		CorrelationID: uuid.NewString(),
	}
}

func outboxColumns() []string {
	return []string{"id", "aggregate_id", "event_type", "event_data", "created_at", "processed", "processed_at", "retry_count", "error_message", "correlation_id"}
}

func outboxRow(e *domain.OutboxEvent) []any {
	return []any{
		e.ID, e.AggregateID, e.EventType, e.EventData, e.CreatedAt,
		e.Processed, e.ProcessedAt, e.RetryCount, e.ErrorMessage, e.CorrelationID,
	}
}

func TestOutboxRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOutboxRepo(mock)
	event := newTestOutboxEvent()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.AggregateID, event.EventType, event.EventData,
			event.CreatedAt, false, event.ProcessedAt, 0, event.ErrorMessage, event.CorrelationID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_ListUnprocessed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOutboxRepo(mock)
	event := newTestOutboxEvent()
	olderThan := time.Now().UTC().Add(-time.Second)

	mock.ExpectQuery("SELECT .+ FROM outbox_events").
		WithArgs(olderThan, 3, 50).
		WillReturnRows(pgxmock.NewRows(outboxColumns()).AddRow(outboxRow(event)...))

	events, err := repo.ListUnprocessed(context.Background(), olderThan, 3, 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.False(t, events[0].Processed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_MarkProcessed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOutboxRepo(mock)
	id := uuid.New()
	processedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE outbox_events SET processed = TRUE").
		WithArgs(processedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkProcessed(context.Background(), id, processedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_MarkProcessed_AlreadyClaimed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOutboxRepo(mock)
	id := uuid.New()
	processedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE outbox_events SET processed = TRUE").
		WithArgs(processedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.MarkProcessed(context.Background(), id, processedAt)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepo_RecordFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOutboxRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE outbox_events SET retry_count = retry_count").
		WithArgs("broker unavailable", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.RecordFailure(context.Background(), id, "broker unavailable")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
