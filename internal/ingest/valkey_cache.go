package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/valkey-io/valkey-go"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	valkeyKeyPrefix     = "reviewlens:corpus:"
	snapshotFormatV1    = 1
	minValkeyTTLSeconds = 1
)

// snapshot is the msgpack envelope stored under each corpus key.
type snapshot struct {
	Version int                   `msgpack:"v"`
	Records []models.ReviewRecord `msgpack:"records"`
}

// ValkeyCache shares parsed corpora between processes through Valkey.
type ValkeyCache struct {
	vc  *clients.ValkeyClient
	ttl time.Duration
}

// NewValkeyCache stores entries with the given TTL; zero means no expiry.
func NewValkeyCache(vc *clients.ValkeyClient, ttl time.Duration) *ValkeyCache {
	return &ValkeyCache{vc: vc, ttl: ttl}
}

func valkeyKey(fingerprint string) string {
	return valkeyKeyPrefix + fingerprint
}

func (c *ValkeyCache) Get(ctx context.Context, fingerprint string) ([]models.ReviewRecord, bool, error) {
	key := valkeyKey(fingerprint)
	res := c.vc.DoWithRetry(ctx, func(client valkey.Client) valkey.Completed {
		return client.B().Get().Key(key).Build()
	}, clients.MAX_RETRIES)

	data, err := res.AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ingest: valkey get %s: %w", key, err)
	}

	records, err := decodeSnapshot(data)
	if err != nil {
		slog.Warn("[ValkeyCache] Dropping undecodable entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false, c.Invalidate(ctx, fingerprint)
	}
	return records, true, nil
}

func (c *ValkeyCache) Set(ctx context.Context, fingerprint string, records []models.ReviewRecord) error {
	data, err := encodeSnapshot(records)
	if err != nil {
		return err
	}

	key := valkeyKey(fingerprint)
	res := c.vc.DoWithRetry(ctx, func(client valkey.Client) valkey.Completed {
		set := client.B().Set().Key(key).Value(valkey.BinaryString(data))
		if seconds := c.ttlSeconds(); seconds > 0 {
			return set.ExSeconds(seconds).Build()
		}
		return set.Build()
	}, clients.MAX_RETRIES)
	if err := res.Error(); err != nil {
		return fmt.Errorf("ingest: valkey set %s: %w", key, err)
	}

	slog.Debug("[ValkeyCache] Stored corpus snapshot",
		slog.String("key", key),
		slog.Int("records", len(records)))
	return nil
}

// ttlSeconds rounds the TTL down to whole seconds, with a floor of one.
// Zero means the key does not expire.
func (c *ValkeyCache) ttlSeconds() int64 {
	if c.ttl <= 0 {
		return 0
	}
	return max(int64(c.ttl/time.Second), minValkeyTTLSeconds)
}

func (c *ValkeyCache) Invalidate(ctx context.Context, fingerprint string) error {
	key := valkeyKey(fingerprint)
	res := c.vc.DoWithRetry(ctx, func(client valkey.Client) valkey.Completed {
		return client.B().Del().Key(key).Build()
	}, clients.MAX_RETRIES)
	if err := res.Error(); err != nil {
		return fmt.Errorf("ingest: valkey del %s: %w", key, err)
	}
	return nil
}

func encodeSnapshot(records []models.ReviewRecord) ([]byte, error) {
	data, err := msgpack.Marshal(snapshot{Version: snapshotFormatV1, Records: records})
	if err != nil {
		return nil, fmt.Errorf("ingest: encoding snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) ([]models.ReviewRecord, error) {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("ingest: decoding snapshot: %w", err)
	}
	if s.Version != snapshotFormatV1 {
		return nil, fmt.Errorf("ingest: unsupported snapshot version %d", s.Version)
	}
	return s.Records, nil
}
