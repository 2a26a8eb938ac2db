package redis

import (
	"context"
	"encoding/json"
	"testing"

	"wallet-ledger/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_PublishWalletEvent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewEventPublisher(NewStreamPublisher(client), "wallet-events", zerolog.Nop())
	ctx := context.Background()

	walletID := uuid.NewString()
	payload := domain.FundsDeposited{
		WalletID:        walletID,
		UserID:          "user-1",
		Amount:          decimal.RequireFromString("30"),
		Currency:        "BRL",
		PreviousBalance: decimal.RequireFromString("100"),
		NewBalance:      decimal.RequireFromString("130"),
		TransactionID:   uuid.NewString(),
	}

	err := pub.PublishWalletEvent(ctx, payload)
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "wallet-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, walletID, entries[0].Values["key"])

	var envelope domain.EventEnvelope
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["message"].(string)), &envelope))
	assert.Equal(t, domain.EventTypeFundsDeposited, envelope.EventType)
	assert.Equal(t, walletID, envelope.AggregateID)
	_, err = uuid.Parse(envelope.EventID)
	assert.NoError(t, err, "every publish mints a fresh event id")

	var data map[string]any
	require.NoError(t, json.Unmarshal(envelope.Payload, &data))
	assert.Equal(t, "user-1", data["userId"])
	assert.Equal(t, "130", data["newBalance"])
}

func TestEventPublisher_UnknownAggregate(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewEventPublisher(NewStreamPublisher(client), "wallet-events", zerolog.Nop())
	ctx := context.Background()

	err := pub.PublishWalletEvent(ctx, domain.WalletCreated{UserID: "user-1", Currency: "BRL"})
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "wallet-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.UnknownAggregateID, entries[0].Values["key"])
}

func TestEventPublisher_BrokerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewEventPublisher(NewStreamPublisher(client), "wallet-events", zerolog.Nop())
	s.Close()

	err := pub.PublishWalletEvent(context.Background(), domain.WalletCreated{WalletID: uuid.NewString()})
	assert.Error(t, err)
}
