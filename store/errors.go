package store

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrNotOrdered    = errors.New("records of this kind have no manual order")
	ErrNoActiveFlag  = errors.New("records of this kind have no active flag")
	ErrBadDirection  = errors.New(`direction must be "up" or "down"`)
	ErrDuplicateSKU  = errors.New("sku already in use")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBadCartID     = errors.New("invalid cart id")
	ErrInvalidStatus = errors.New("invalid order status")
)

// ValidationError is a rejected admin or checkout form; nothing was written.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func required(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
