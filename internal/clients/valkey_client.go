package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyOptions configures the connection to a Valkey server.
type ValkeyOptions struct {
	Addr     string
	Password string
	TLS      bool
}

type ValkeyClient struct {
	Client valkey.Client
	opts   ValkeyOptions
	mu     sync.Mutex
}

func (o ValkeyOptions) clientOption() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress: []string{
			o.Addr,
		},
		Password:         o.Password,
		ClientName:       CLIENT_NAME,
		ConnWriteTimeout: DIAL_TIMEOUT,
		SelectDB:         0,
	}

	if o.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func dialValkey(ctx context.Context, o ValkeyOptions) (valkey.Client, error) {
	client, err := valkey.NewClient(o.clientOption())
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return client, nil
}

// NewValkeyClient connects and pings the server.
func NewValkeyClient(ctx context.Context, o ValkeyOptions) (*ValkeyClient, error) {
	client, err := dialValkey(ctx, o)
	if err != nil {
		return nil, err
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("addr", o.Addr))

	return NewValkeyClientFrom(client, o), nil
}

// NewValkeyClientFrom wraps an existing client. o is used to redial after a
// connection error.
func NewValkeyClientFrom(client valkey.Client, o ValkeyOptions) *ValkeyClient {
	return &ValkeyClient{Client: client, opts: o}
}

func (vc *ValkeyClient) recreateClient(ctx context.Context) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := dialValkey(ctx, vc.opts)
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}

	vc.Client.Close()
	vc.Client = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vc *ValkeyClient) client() valkey.Client {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.Client
}

func (vc *ValkeyClient) Close() {
	vc.client().Close()
}

// DoWithRetry retries failed commands. A nil reply is a valid answer and is
// not retried. It gives up early when ctx is done.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, build func(c valkey.Client) valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		c := vc.client()
		result = c.Do(ctx, build(c))
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		if isConnectionError(err) {
			vc.recreateClient(ctx)
		}

		if i == retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return result
		case <-time.After(RETRY_DELAY):
		}
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
