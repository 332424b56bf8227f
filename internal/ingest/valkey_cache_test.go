package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"
)

func newTestValkeyCache(t *testing.T, ttl time.Duration) (*ValkeyCache, *mock.Client) {
	t.Helper()
	client := mock.NewClient(gomock.NewController(t))
	vc := clients.NewValkeyClientFrom(client, clients.ValkeyOptions{Addr: "localhost:6379"})
	return NewValkeyCache(vc, ttl), client
}

func TestValkeyCache_Miss(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, time.Minute)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", valkeyKey("fp"))).
		Return(mock.Result(mock.ValkeyNil())).
		Times(1)

	got, ok, err := cache.Get(ctx, "fp")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestValkeyCache_Hit(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, time.Minute)

	data, err := encodeSnapshot(sampleRecords)
	require.NoError(t, err)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", valkeyKey("fp"))).
		Return(mock.Result(mock.ValkeyBlobString(string(data))))

	got, ok, err := cache.Get(ctx, "fp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleRecords, got)
}

func TestValkeyCache_CorruptEntryIsDropped(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, time.Minute)

	gomock.InOrder(
		client.EXPECT().
			Do(gomock.Any(), mock.Match("GET", valkeyKey("fp"))).
			Return(mock.Result(mock.ValkeyBlobString("not msgpack"))),
		client.EXPECT().
			Do(gomock.Any(), mock.Match("DEL", valkeyKey("fp"))).
			Return(mock.Result(mock.ValkeyInt64(1))),
	)

	got, ok, err := cache.Get(ctx, "fp")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestValkeyCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, 90*time.Second)

	data, err := encodeSnapshot(sampleRecords)
	require.NoError(t, err)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("SET", valkeyKey("fp"), string(data), "EX", "90")).
		Return(mock.Result(mock.ValkeyString("OK")))

	require.NoError(t, cache.Set(ctx, "fp", sampleRecords))
}

func TestValkeyCache_SetSubSecondTTLRoundsUp(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, 200*time.Millisecond)

	data, err := encodeSnapshot(sampleRecords)
	require.NoError(t, err)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("SET", valkeyKey("fp"), string(data), "EX", "1")).
		Return(mock.Result(mock.ValkeyString("OK")))

	require.NoError(t, cache.Set(ctx, "fp", sampleRecords))
}

func TestValkeyCache_SetWithoutTTL(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, 0)

	data, err := encodeSnapshot(sampleRecords)
	require.NoError(t, err)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("SET", valkeyKey("fp"), string(data))).
		Return(mock.Result(mock.ValkeyString("OK")))

	require.NoError(t, cache.Set(ctx, "fp", sampleRecords))
}

func TestValkeyCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, client := newTestValkeyCache(t, time.Minute)

	client.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", valkeyKey("fp"))).
		Return(mock.Result(mock.ValkeyInt64(0)))

	require.NoError(t, cache.Invalidate(ctx, "fp"))
}
