package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"go-storefront/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// requestTimeout bounds every storage round trip of a handler
const requestTimeout = 5 * time.Second

func withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorf("Error encoding response: %v", err)
	}
}

// storeError maps store errors to HTTP statuses. Validation failures carry their
// message to the client; anything unexpected is logged and reported as msg.
func storeError(w http.ResponseWriter, err error, msg string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrDuplicateSKU) {
			status = http.StatusConflict
		}
		http.Error(w, verr.Message, status)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, store.ErrEmptyCart), errors.Is(err, store.ErrBadCartID),
		errors.Is(err, store.ErrBadDirection), errors.Is(err, store.ErrNotOrdered),
		errors.Is(err, store.ErrNoActiveFlag):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		http.Error(w, "Request timed out", http.StatusGatewayTimeout)
	default:
		zap.S().Errorf("%s: %v", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

// cartID reads the visitor cart id; no header means the shared cart
func cartID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Cart-ID"))
}
