package store

import (
	"context"
	"errors"

	"go-storefront/storage"
)

// SessionStore records the single logged-in admin session. Starting a new session
// replaces the previous one.
type SessionStore struct {
	slots storage.Slots
}

func NewSessionStore(slots storage.Slots) *SessionStore {
	return &SessionStore{slots: slots}
}

// Start saves the session id and email of a fresh login
func (s *SessionStore) Start(ctx context.Context, sessionID, email string) error {
	if err := s.slots.Save(ctx, storage.KeyAdminLoggedIn, sessionID); err != nil {
		return err
	}
	return s.slots.Save(ctx, storage.KeyAdminEmail, email)
}

// Active reports whether sessionID is the current session
func (s *SessionStore) Active(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	var current string
	ok, err := s.slots.Load(ctx, storage.KeyAdminLoggedIn, &current)
	if errors.Is(err, storage.ErrMalformed) {
		return false, nil
	}
	if err != nil || !ok {
		return false, err
	}
	return current == sessionID, nil
}

// Email returns the email of the logged-in admin, if any
func (s *SessionStore) Email(ctx context.Context) (string, error) {
	var email string
	_, err := s.slots.Load(ctx, storage.KeyAdminEmail, &email)
	return email, err
}

// End logs the admin out
func (s *SessionStore) End(ctx context.Context) error {
	if err := s.slots.Delete(ctx, storage.KeyAdminLoggedIn); err != nil {
		return err
	}
	return s.slots.Delete(ctx, storage.KeyAdminEmail)
}
