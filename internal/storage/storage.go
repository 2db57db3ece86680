package storage

import (
	"context"
	"encoding/json"
	"errors"

	"tableside/internal/logger"
)

// Persisted key names. Storage is the only durable boundary of the system,
// so these are effectively its wire format.
const (
	KeyProducts    = "products"
	KeyCategories  = "categories"
	KeyOrders      = "orders"
	KeyLastOrderID = "lastOrderId"
)

// ErrNotFound is returned by Read when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store persists JSON blobs under named keys. Writes are full-value
// replacements and carry no atomicity promise across keys.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// ReadJSON loads the value under key into dest. A missing key, a failed
// read, or a value that does not decode leaves dest untouched and returns
// false, so the caller keeps its default. Corrupt values are logged and
// treated as absent.
func ReadJSON(ctx context.Context, st Store, key string, dest any) bool {
	raw, err := st.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Get().Warnw("storage read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Get().Warnw("discarding corrupt stored value", "key", key, "err", err)
		return false
	}
	return true
}

// WriteJSON serializes value and persists it under key.
func WriteJSON(ctx context.Context, st Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return st.Write(ctx, key, raw)
}
