// Package redis provides a Redis backend for the upload temporary cache.
// Cached entries are stored as raw byte values under prefixed keys with a
// TTL, so abandoned uploads expire without external housekeeping.
//
// # Usage
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		return err
//	}
//	backend := redis.New(client, redis.WithTTL(6*time.Hour))
//
//	sess := upload.NewSession(uploadCfg, upload.WithStorage(backend))
//
// Connect validates the URL, establishes the connection, and verifies it
// with a ping, retrying transient failures. A missing entry on fetch
// surfaces as storage.ErrFileNotFound, matching the other backends.
package redis
