package storage

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var slotsBucket = []byte("slots")

// BoltSlots persists slots in a single bbolt file
type BoltSlots struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path
func OpenBolt(path string) (*BoltSlots, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt file %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slots bucket: %w", err)
	}
	return &BoltSlots{db: db}, nil
}

func (b *BoltSlots) Load(_ context.Context, key string, v any) (bool, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		// bbolt values are only valid inside the transaction
		if raw := tx.Bucket(slotsBucket).Get([]byte(key)); raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	return true, decode(key, data, v)
}

func (b *BoltSlots) Save(_ context.Context, key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(slotsBucket).Put([]byte(key), data)
	})
}

func (b *BoltSlots) Delete(_ context.Context, key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(slotsBucket).Delete([]byte(key))
	})
}

func (b *BoltSlots) Close() error {
	return b.db.Close()
}
