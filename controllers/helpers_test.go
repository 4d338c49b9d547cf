package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-storefront/store"
)

func TestStoreError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{&store.ValidationError{Field: "name", Message: "Name is required"}, http.StatusBadRequest, "Name is required\n"},
		{&store.ValidationError{Field: "sku", Message: "SKU taken", Err: store.ErrDuplicateSKU}, http.StatusConflict, "SKU taken\n"},
		{fmt.Errorf("lookup: %w", store.ErrNotFound), http.StatusNotFound, "Not found\n"},
		{store.ErrEmptyCart, http.StatusBadRequest, "cart is empty\n"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "Request timed out\n"},
		{errors.New("disk full"), http.StatusInternalServerError, "Error saving\n"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		storeError(rec, c.err, "Error saving")
		assert.Equal(t, c.status, rec.Code, c.err.Error())
		assert.Equal(t, c.body, rec.Body.String())
	}
}

func TestCartID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	assert.Equal(t, "", cartID(req))
	req.Header.Set("X-Cart-ID", " abc ")
	assert.Equal(t, "abc", cartID(req))
}
