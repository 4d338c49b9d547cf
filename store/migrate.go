package store

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"go-storefront/storage"
)

// Record is a stored document kept as raw JSON fields so unknown fields survive a migration
type Record map[string]jsoniter.RawMessage

// Migration upgrades every record of one slot to the next schema version
type Migration struct {
	Slot    string
	Version int
	Name    string
	Up      func(Record) (Record, error)
}

// Migrations is the ordered list applied at startup
var Migrations = []Migration{
	{
		Slot:    storage.KeyProducts,
		Version: 1,
		Name:    "single image field to images array",
		Up:      productImagesToGallery,
	},
}

// productImagesToGallery moves a legacy "image" string to the front of "images"
func productImagesToGallery(r Record) (Record, error) {
	raw, ok := r["image"]
	if !ok {
		return r, nil
	}
	delete(r, "image")

	var image string
	if err := json.Unmarshal(raw, &image); err != nil || image == "" {
		return r, nil
	}

	var images []string
	if rawImages, ok := r["images"]; ok {
		if err := json.Unmarshal(rawImages, &images); err != nil {
			return nil, fmt.Errorf("images field: %w", err)
		}
	}
	for _, img := range images {
		if img == image {
			return r, nil
		}
	}

	data, err := json.Marshal(append([]string{image}, images...))
	if err != nil {
		return nil, err
	}
	r["images"] = data
	return r, nil
}

// Migrate applies the pending migrations once and records the applied versions.
// Empty slots are marked as migrated since they will be seeded in the current shape.
func Migrate(ctx context.Context, slots storage.Slots, migrations []Migration) error {
	versions := map[string]int{}
	if _, err := slots.Load(ctx, storage.KeySchemaVersions, &versions); err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return err
		}
		zap.S().Warnf("Schema versions unreadable, re-running migrations: %v", err)
		versions = map[string]int{}
	}

	for _, m := range migrations {
		if versions[m.Slot] >= m.Version {
			continue
		}

		var records []Record
		ok, err := slots.Load(ctx, m.Slot, &records)
		if errors.Is(err, storage.ErrMalformed) {
			zap.S().Errorf("Skipping migration %s@%d, slot unreadable: %v", m.Slot, m.Version, err)
			continue
		}
		if err != nil {
			return err
		}

		if ok {
			for i, r := range records {
				if records[i], err = m.Up(r); err != nil {
					return fmt.Errorf("migration %s@%d (%s), record %d: %w", m.Slot, m.Version, m.Name, i, err)
				}
			}
			if err := slots.Save(ctx, m.Slot, records); err != nil {
				return err
			}
			zap.S().Infof("Applied migration %s@%d: %s (%d records)", m.Slot, m.Version, m.Name, len(records))
		}

		versions[m.Slot] = m.Version
		if err := slots.Save(ctx, storage.KeySchemaVersions, versions); err != nil {
			return err
		}
	}
	return nil
}
