package controllers

import (
	"io"
	"net/http"

	"go-storefront/store"
)

// SettingsController handles the site settings
type SettingsController struct {
	Settings *store.SettingsStore
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settings *store.SettingsStore) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GetSettings returns the current settings
func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	settings, err := sc.Settings.Get(ctx)
	if err != nil {
		storeError(w, err, "Error fetching settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings merges the request body into the settings (Admin only)
func (sc *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	settings, err := sc.Settings.Patch(ctx, body)
	if err != nil {
		storeError(w, err, "Error saving settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// ResetSettings restores the default settings (Admin only)
func (sc *SettingsController) ResetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	settings, err := sc.Settings.Reset(ctx)
	if err != nil {
		storeError(w, err, "Error resetting settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
