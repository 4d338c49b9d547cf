// Package storage is the persistence port of the storefront: named slots holding one JSON
// document each, with adapters for memory, a bbolt file, MongoDB and PostgreSQL.
package storage

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Slot keys
const (
	KeyCart           = "cart"
	KeyProducts       = "products"
	KeyHeroSlides     = "hero_slides"
	KeyTestimonials   = "testimonials"
	KeyClients        = "clients"
	KeySettings       = "general_settings"
	KeyOrders         = "orders"
	KeyAdminLoggedIn  = "admin_logged_in"
	KeyAdminEmail     = "admin_email"
	KeySchemaVersions = "schema_versions"
)

// CartKey returns the slot of a visitor cart; the empty id maps to the shared cart slot.
func CartKey(cartID string) string {
	if cartID == "" {
		return KeyCart
	}
	return KeyCart + ":" + cartID
}

// ErrMalformed is returned when a slot holds data that does not decode into the target
var ErrMalformed = errors.New("malformed slot data")

// Slots loads and saves whole JSON documents under string keys.
// Load reports false when the slot is empty.
type Slots interface {
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(key string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding slot %q: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: slot %q: %v", ErrMalformed, key, err)
	}
	return nil
}
