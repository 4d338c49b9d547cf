package controllers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/store"
)

// Resource exposes the admin CRUD endpoints of one store collection
type Resource[T any] struct {
	Name       string
	Collection *store.Collection[T]
}

// List returns every record, inactive ones included
func (rc *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	items, err := rc.Collection.List(ctx)
	if err != nil {
		storeError(w, err, "Error fetching "+rc.Name)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListActive returns the records visible on the storefront
func (rc *Resource[T]) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	items, err := rc.Collection.ListActive(ctx)
	if err != nil {
		storeError(w, err, "Error fetching "+rc.Name)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one record
func (rc *Resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	item, found, err := rc.Collection.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err, "Error fetching "+rc.Name)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create adds a record
func (rc *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	created, err := rc.Collection.Create(ctx, item)
	if err != nil {
		storeError(w, err, "Error creating "+rc.Name)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update merges the request body into the record
func (rc *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	updated, found, err := rc.Collection.Patch(ctx, mux.Vars(r)["id"], body)
	if err != nil {
		storeError(w, err, "Error updating "+rc.Name)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes the record
func (rc *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	found, err := rc.Collection.Delete(ctx, mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err, "Error deleting "+rc.Name)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Toggle flips the visibility of the record
func (rc *Resource[T]) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	item, found, err := rc.Collection.ToggleActive(ctx, mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err, "Error updating "+rc.Name)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Move swaps the record with its neighbour; body is {"direction": "up"|"down"}
func (rc *Resource[T]) Move(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	found, err := rc.Collection.Reorder(ctx, mux.Vars(r)["id"], req.Direction)
	if err != nil {
		storeError(w, err, "Error reordering "+rc.Name)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	items, err := rc.Collection.List(ctx)
	if err != nil {
		storeError(w, err, "Error fetching "+rc.Name)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
