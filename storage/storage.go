package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"rosea_server/config"

	"github.com/MonkyMars/gecho"
)

// Store is the narrow key-value port every shop store persists through.
// Values are opaque JSON blobs; one key per slice of state, read and written
// wholesale. There is no transactional guarantee across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")

// Persisted key space. Absence of a key means "use the bundled default".
const (
	KeyProducts    = "rosea_products"
	KeyCategories  = "rosea_categories"
	KeyHeroImage   = "rosea_hero_image"
	KeyLogo        = "rosea_logo"
	KeySiteContent = "rosea_site_content"
	KeyUsers       = "rosea_users"
	KeyOrders      = "rosea_orders"
	KeyCarts       = "rosea_carts"
)

// AllKeys enumerates every key the stores own, in the order a factory reset
// removes them. Reset is best effort, not atomic.
func AllKeys() []string {
	return []string{
		KeyProducts,
		KeyCategories,
		KeyHeroImage,
		KeyLogo,
		KeySiteContent,
		KeyUsers,
		KeyOrders,
		KeyCarts,
	}
}

// Read returns the stored value for key decoded into T, or def when the key
// is absent or the stored payload fails to parse. Parse and backend failures
// are logged and swallowed; callers never see a read error.
func Read[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			config.GetLogger().Error("Failed to read key from storage",
				gecho.Field("key", key),
				gecho.Field("error", err),
			)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		config.GetLogger().Error("Corrupt payload in storage, substituting default",
			gecho.Field("key", key),
			gecho.Field("error", err),
		)
		return def
	}
	return value
}

// Write serializes value and stores it under key. Failures are logged and
// returned, but callers treat writes as best effort: in-memory state is not
// rolled back when the backend rejects a write.
func Write(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		config.GetLogger().Error("Failed to serialize value for storage",
			gecho.Field("key", key),
			gecho.Field("error", err),
		)
		return err
	}

	if err := s.Set(ctx, key, raw); err != nil {
		config.GetLogger().Error("Failed to persist key",
			gecho.Field("key", key),
			gecho.Field("error", err),
		)
		return err
	}
	return nil
}

var instance Store

// Initialize sets up the global store instance from configuration.
func Initialize() error {
	cfg := config.GetConfig()

	store, err := newStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend %q: %w", cfg.Storage.Backend, err)
	}

	instance = store
	config.GetLogger().Info("Storage initialized", gecho.Field("backend", cfg.Storage.Backend))
	return nil
}

// GetInstance returns the global store.
// This is the primary way to access the store outside of tests.
func GetInstance() Store {
	if instance == nil {
		log.Fatal("Storage instance is not initialized. Call Initialize() first.")
	}
	return instance
}
