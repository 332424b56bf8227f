package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"
)

var errBusy = errors.New("LOADING server is loading the dataset")

func getKey(c valkey.Client) valkey.Completed {
	return c.B().Get().Key("k").Build()
}

func TestDoWithRetry_NilReplyIsNotRetried(t *testing.T) {
	client := mock.NewClient(gomock.NewController(t))
	vc := NewValkeyClientFrom(client, ValkeyOptions{})

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "k")).
		Return(mock.Result(mock.ValkeyNil())).
		Times(1)

	res := vc.DoWithRetry(context.Background(), getKey, MAX_RETRIES)
	assert.True(t, valkey.IsValkeyNil(res.Error()))
}

func TestDoWithRetry_RetriesUntilSuccess(t *testing.T) {
	client := mock.NewClient(gomock.NewController(t))
	vc := NewValkeyClientFrom(client, ValkeyOptions{})

	gomock.InOrder(
		client.EXPECT().
			Do(gomock.Any(), mock.Match("GET", "k")).
			Return(mock.ErrorResult(errBusy)),
		client.EXPECT().
			Do(gomock.Any(), mock.Match("GET", "k")).
			Return(mock.Result(mock.ValkeyString("v"))),
	)

	res := vc.DoWithRetry(context.Background(), getKey, MAX_RETRIES)
	got, err := res.ToString()
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestDoWithRetry_GivesUpAfterRetries(t *testing.T) {
	client := mock.NewClient(gomock.NewController(t))
	vc := NewValkeyClientFrom(client, ValkeyOptions{})

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "k")).
		Return(mock.ErrorResult(errBusy)).
		Times(2)

	res := vc.DoWithRetry(context.Background(), getKey, 2)
	assert.ErrorIs(t, res.Error(), errBusy)
}

func TestDoWithRetry_StopsWhenContextDone(t *testing.T) {
	client := mock.NewClient(gomock.NewController(t))
	vc := NewValkeyClientFrom(client, ValkeyOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "k")).
		Return(mock.ErrorResult(errBusy)).
		Times(1)

	res := vc.DoWithRetry(ctx, getKey, MAX_RETRIES)
	assert.ErrorIs(t, res.Error(), errBusy)
}

func TestIsConnectionError(t *testing.T) {
	assert.False(t, isConnectionError(nil))
	assert.False(t, isConnectionError(errBusy))
	assert.True(t, isConnectionError(errors.New("dial tcp: connection refused")))
	assert.True(t, isConnectionError(errors.New("unexpected EOF")))
}
