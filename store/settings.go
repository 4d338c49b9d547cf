package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/storage"
)

// SettingsStore holds the single site settings object
type SettingsStore struct {
	mu       sync.Mutex
	slots    storage.Slots
	settings models.SiteSettings
	loaded   bool
}

func NewSettingsStore(slots storage.Slots) *SettingsStore {
	return &SettingsStore{slots: slots}
}

func (s *SettingsStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	settings := DefaultSettings()
	ok, err := s.slots.Load(ctx, storage.KeySettings, &settings)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		zap.S().Errorf("Error loading general settings, using defaults: %v", err)
		settings = DefaultSettings()
	case err != nil:
		return err
	case !ok:
		if err := s.slots.Save(ctx, storage.KeySettings, settings); err != nil {
			return err
		}
	}
	s.settings = settings
	s.loaded = true
	return nil
}

// Get returns the current settings
func (s *SettingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return models.SiteSettings{}, err
	}
	return s.settings, nil
}

// Save replaces the whole settings object
func (s *SettingsStore) Save(ctx context.Context, settings models.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slots.Save(ctx, storage.KeySettings, settings); err != nil {
		return err
	}
	s.settings = settings
	s.loaded = true
	return nil
}

// Patch merges the JSON object into the current settings and saves the result
func (s *SettingsStore) Patch(ctx context.Context, patch []byte) (models.SiteSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return current, err
	}
	if err := overlay(&current, patch); err != nil {
		return current, err
	}
	return current, s.Save(ctx, current)
}

// Reset restores and saves the default settings
func (s *SettingsStore) Reset(ctx context.Context) (models.SiteSettings, error) {
	defaults := DefaultSettings()
	return defaults, s.Save(ctx, defaults)
}
