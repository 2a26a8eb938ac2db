package redis

import (
	"context"
	"testing"

	"wallet-ledger/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPublisher_Publish(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewStreamPublisher(client)
	ctx := context.Background()

	err := pub.Publish(ctx, "wallet-events", "wallet-1", []byte(`{"eventId":"e-1"}`))
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "wallet-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wallet-1", entries[0].Values["key"])
	assert.Equal(t, `{"eventId":"e-1"}`, entries[0].Values["message"])
}

func TestStreamPublisher_PublishPreservesOrder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewStreamPublisher(client)
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, "wallet-events", "w", []byte("first")))
	require.NoError(t, pub.Publish(ctx, "wallet-events", "w", []byte("second")))

	entries, err := client.XRange(ctx, "wallet-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Values["message"])
	assert.Equal(t, "second", entries[1].Values["message"])
}

func TestStreamPublisher_BrokerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewStreamPublisher(client)
	s.Close()

	err := pub.Publish(context.Background(), "wallet-events", "w", []byte("msg"))
	require.Error(t, err)
	assert.Equal(t, "OBX_002", apperror.CodeOf(err))
}
