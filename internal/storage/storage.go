// Package storage provides the Redis-backed stores shared across bot
// instances: API keys, i18n preferences, and the vote-status cache. Each
// operation is a single independent round trip; there are no transactions,
// so concurrent writers are last-write-wins.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Connection wraps the shared Redis client.
type Connection struct {
	Redis *redis.Client
}

// Connect creates a Redis client and verifies it with a ping.
func Connect(ctx context.Context, addr, password string, db int) (*Connection, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Connection{Redis: rdb}, nil
}

// Close releases the underlying client.
func (c *Connection) Close() error {
	return c.Redis.Close()
}

// Store is a namespaced hash-backed key/value store (`store:<name>`).
type Store struct {
	conn *Connection
	name string
}

// NewStore returns a store bound to one namespace.
func (c *Connection) NewStore(name string) *Store {
	return &Store{conn: c, name: name}
}

func (s *Store) keyName() string {
	return "store:" + s.name
}

// Get returns the value for key, or found=false when absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.conn.Redis.HGet(ctx, s.keyName(), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set writes key to value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.conn.Redis.HSet(ctx, s.keyName(), key, value).Err()
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.conn.Redis.HDel(ctx, s.keyName(), key).Err()
}

// Has reports whether key exists.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	return s.conn.Redis.HExists(ctx, s.keyName(), key).Result()
}

// Cache is a namespaced expiring cache (`cache:<type>:<key>`).
type Cache struct {
	conn *Connection
	typ  string
}

// NewCache returns a cache bound to one namespace.
func (c *Connection) NewCache(typ string) *Cache {
	return &Cache{conn: c, typ: typ}
}

func (c *Cache) keyName(key string) string {
	return "cache:" + c.typ + ":" + key
}

// Get returns the cached value for key, or found=false when absent or expired.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.conn.Redis.Get(ctx, c.keyName(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set writes key with an expiry.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.conn.Redis.Set(ctx, c.keyName(key), value, ttl).Err()
}
