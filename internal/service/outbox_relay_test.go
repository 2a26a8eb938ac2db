package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wallet-ledger/config"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testStream = "wallet-events"

func relayCfg() config.OutboxConfig {
	return config.OutboxConfig{
		AuditEnabled:   true,
		PollInterval:   5 * time.Second,
		BatchSize:      50,
		MaxRetries:     3,
		MinAge:         time.Second,
		PublishTimeout: 10 * time.Second,
	}
}

type relayTestDeps struct {
	relay      *OutboxRelay
	outboxRepo *mocks.MockOutboxRepository
	broker     *mocks.MockBrokerPublisher
	ctrl       *gomock.Controller
}

func setupRelay(t *testing.T, cfg config.OutboxConfig) *relayTestDeps {
	ctrl := gomock.NewController(t)
	d := &relayTestDeps{
		outboxRepo: mocks.NewMockOutboxRepository(ctrl),
		broker:     mocks.NewMockBrokerPublisher(ctrl),
		ctrl:       ctrl,
	}
	d.relay = NewOutboxRelay(d.outboxRepo, d.broker, testStream, cfg, zerolog.Nop())
	return d
}

func pendingEvent(retryCount int) domain.OutboxEvent {
	return domain.OutboxEvent{
		ID:            uuid.New(),
		AggregateID:   uuid.NewString(),
		EventType:     domain.EventTypeFundsDeposited,
		EventData:     []byte(`{"walletId":"w-1","amount":"30"}`),
		CreatedAt:     time.Now().UTC().Add(-time.Minute),
		RetryCount:    retryCount,
		CorrelationID: uuid.NewString(),
	}
}

func TestOutboxRelay_RelaysAndMarksProcessed(t *testing.T) {
	d := setupRelay(t, relayCfg())
	defer d.ctrl.Finish()

	ctx := context.Background()
	event := pendingEvent(0)

	d.outboxRepo.EXPECT().
		ListUnprocessed(ctx, gomock.Any(), 3, 50).
		Return([]domain.OutboxEvent{event}, nil)

	var published []byte
	d.broker.EXPECT().
		Publish(gomock.Any(), testStream, event.AggregateID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, message []byte) error {
			published = message
			return nil
		})
	d.outboxRepo.EXPECT().MarkProcessed(ctx, event.ID, gomock.Any()).Return(nil)

	d.relay.runCycle(ctx)

	var envelope domain.EventEnvelope
	require.NoError(t, json.Unmarshal(published, &envelope))
	assert.Equal(t, event.ID.String(), envelope.EventID)
	assert.Equal(t, event.EventType, envelope.EventType)
	assert.Equal(t, event.AggregateID, envelope.AggregateID)
	assert.Equal(t, event.CorrelationID, envelope.CorrelationID)
	assert.JSONEq(t, string(event.EventData), string(envelope.Payload))
}

func TestOutboxRelay_RecordsPublishFailure(t *testing.T) {
	d := setupRelay(t, relayCfg())
	defer d.ctrl.Finish()

	ctx := context.Background()
	event := pendingEvent(0)

	d.outboxRepo.EXPECT().
		ListUnprocessed(ctx, gomock.Any(), 3, 50).
		Return([]domain.OutboxEvent{event}, nil)
	d.broker.EXPECT().
		Publish(gomock.Any(), testStream, event.AggregateID, gomock.Any()).
		Return(errors.New("stream unavailable"))
	d.outboxRepo.EXPECT().RecordFailure(ctx, event.ID, "stream unavailable").Return(nil)

	d.relay.runCycle(ctx)
}

func TestOutboxRelay_FailureDoesNotBlockBatch(t *testing.T) {
	d := setupRelay(t, relayCfg())
	defer d.ctrl.Finish()

	ctx := context.Background()
	poisoned := pendingEvent(2)
	healthy := pendingEvent(0)

	d.outboxRepo.EXPECT().
		ListUnprocessed(ctx, gomock.Any(), 3, 50).
		Return([]domain.OutboxEvent{poisoned, healthy}, nil)

	d.broker.EXPECT().
		Publish(gomock.Any(), testStream, poisoned.AggregateID, gomock.Any()).
		Return(errors.New("stream unavailable"))
	d.outboxRepo.EXPECT().RecordFailure(ctx, poisoned.ID, "stream unavailable").Return(nil)

	d.broker.EXPECT().
		Publish(gomock.Any(), testStream, healthy.AggregateID, gomock.Any()).
		Return(nil)
	d.outboxRepo.EXPECT().MarkProcessed(ctx, healthy.ID, gomock.Any()).Return(nil)

	d.relay.runCycle(ctx)
}

func TestOutboxRelay_AlreadyClaimedEvent(t *testing.T) {
	d := setupRelay(t, relayCfg())
	defer d.ctrl.Finish()

	ctx := context.Background()
	event := pendingEvent(0)

	d.outboxRepo.EXPECT().
		ListUnprocessed(ctx, gomock.Any(), 3, 50).
		Return([]domain.OutboxEvent{event}, nil)
	d.broker.EXPECT().
		Publish(gomock.Any(), testStream, event.AggregateID, gomock.Any()).
		Return(nil)
	d.outboxRepo.EXPECT().MarkProcessed(ctx, event.ID, gomock.Any()).Return(pgx.ErrNoRows)

	d.relay.runCycle(ctx)
}

func TestOutboxRelay_AuditDisabledSkipsCycle(t *testing.T) {
	cfg := relayCfg()
	cfg.AuditEnabled = false
	d := setupRelay(t, cfg)
	defer d.ctrl.Finish()

	d.relay.runCycle(context.Background())
}

func TestOutboxRelay_ListFailureAbortsCycle(t *testing.T) {
	d := setupRelay(t, relayCfg())
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.outboxRepo.EXPECT().
		ListUnprocessed(ctx, gomock.Any(), 3, 50).
		Return(nil, errors.New("connection refused"))

	d.relay.runCycle(ctx)
}
