package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/uploadcache/core/storage"
)

// Compile-time check that RedisStorage implements the storage.Storage interface.
var _ storage.Storage = (*RedisStorage)(nil)

// DefaultTTL bounds how long a cached upload survives without being
// promoted to permanent storage.
const DefaultTTL = 24 * time.Hour

// Config contains connection settings for the Redis cache backend.
type Config struct {
	ConnectionURL string        `env:"UPLOADCACHE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts int           `env:"UPLOADCACHE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"UPLOADCACHE_REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect creates a Redis client from the configured URL and verifies
// connectivity with a ping before returning it. Transient failures are
// retried RetryAttempts times with RetryInterval between attempts.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	client := redis.NewClient(opts)

	attempts := max(cfg.RetryAttempts, 1)
	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrRedisNotReady, pingErr)
}

// RedisStorage stores cached uploads as raw byte values with a TTL.
type RedisStorage struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// Option configures a RedisStorage.
type Option func(*RedisStorage)

// WithKeyPrefix sets the key prefix isolating cache entries in a shared
// database.
func WithKeyPrefix(prefix string) Option {
	return func(s *RedisStorage) {
		s.prefix = prefix
	}
}

// WithTTL sets the entry lifetime. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *RedisStorage) {
		s.ttl = ttl
	}
}

// New creates a Redis cache backend over an established client.
func New(client redis.Cmdable, opts ...Option) *RedisStorage {
	s := &RedisStorage{
		client: client,
		prefix: "uploadcache:",
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store persists the bytes read from r under the cache name, refreshing
// the TTL on overwrite.
func (s *RedisStorage) Store(ctx context.Context, name string, r io.Reader) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read entry content: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store entry operation failed: %w", err)
	}
	return nil
}

// Fetch returns the bytes stored under the cache name.
func (s *RedisStorage) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", storage.ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("fetch entry operation failed: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Exists reports whether an entry is stored under the cache name.
func (s *RedisStorage) Exists(ctx context.Context, name string) bool {
	key, err := s.key(name)
	if err != nil {
		return false
	}

	n, err := s.client.Exists(ctx, key).Result()
	return err == nil && n > 0
}

// key maps a cache name onto a Redis key. Traversal sequences are
// meaningless in a key-value store but rejected anyway to keep name
// validation uniform across backends.
func (s *RedisStorage) key(name string) (string, error) {
	if name == "" || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", storage.ErrInvalidName, name)
	}
	return s.prefix + name, nil
}
