package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyValueStore is the subset of Store the key index writes through. It
// exists so the index logic can be tested without Redis.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// APIKeys maps users to API keys and back. The two directions are always
// created and deleted together.
type APIKeys struct {
	store KeyValueStore
}

// APIKeys returns the API key store.
func (c *Connection) APIKeys() *APIKeys {
	return &APIKeys{store: c.NewStore("api:auth")}
}

// NewAPIKeys returns a key index over an arbitrary backing store.
func NewAPIKeys(store KeyValueStore) *APIKeys {
	return &APIKeys{store: store}
}

// GetOrCreate returns the user's API key, generating and persisting a new one
// only if none exists. Repeated calls return the same key.
func (k *APIKeys) GetOrCreate(ctx context.Context, userID string) (string, bool, error) {
	key, found, err := k.store.Get(ctx, userID)
	if err != nil {
		return "", false, err
	}
	if found {
		return key, false, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("generate api key: %w", err)
	}
	key = hex.EncodeToString(buf)

	if err := k.store.Set(ctx, userID, key); err != nil {
		return "", false, err
	}
	if err := k.store.Set(ctx, key, userID); err != nil {
		return "", false, err
	}
	return key, true, nil
}

// Revoke deletes the user's key in both directions. Returns false when the
// user had no key.
func (k *APIKeys) Revoke(ctx context.Context, userID string) (bool, error) {
	key, found, err := k.store.Get(ctx, userID)
	if err != nil || !found {
		return false, err
	}
	if err := k.store.Delete(ctx, userID); err != nil {
		return false, err
	}
	if err := k.store.Delete(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}

// UserForKey resolves an API key back to its owning user, for bearer auth.
func (k *APIKeys) UserForKey(ctx context.Context, key string) (string, bool, error) {
	return k.store.Get(ctx, key)
}
