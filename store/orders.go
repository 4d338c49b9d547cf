package store

import (
	"context"
	"time"

	"go-storefront/models"
	"go-storefront/storage"
	"go-storefront/utils"
)

// OrderStore keeps placed orders
type OrderStore struct {
	*Collection[models.Order]
}

func NewOrderStore(slots storage.Slots) *OrderStore {
	return &OrderStore{NewCollection(slots, Schema[models.Order]{
		Key:   storage.KeyOrders,
		ID:    func(o *models.Order) *string { return &o.ID },
		NewID: func() string { return utils.NewOrderID(time.Now()) },
		Prepare: func(o *models.Order) {
			now := time.Now().UTC()
			if o.CreatedAt.IsZero() {
				o.CreatedAt = now
			}
			o.UpdatedAt = now
			if o.Status == "" {
				o.Status = models.OrderPending
			}
		},
		Validate: func(o *models.Order) error {
			if !models.ValidOrderStatus(o.Status) {
				return &ValidationError{Field: "status", Message: "Invalid order status", Err: ErrInvalidStatus}
			}
			return nil
		},
	})}
}

// Add stores a new order and returns it with its id and timestamps
func (s *OrderStore) Add(ctx context.Context, order models.Order) (models.Order, error) {
	return s.Create(ctx, order)
}

// UpdateStatus changes the status of an order
func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (models.Order, bool, error) {
	return s.Update(ctx, id, func(o *models.Order) error {
		o.Status = status
		return nil
	})
}

// ByStatus lists the orders in a given status
func (s *OrderStore) ByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return s.Filter(ctx, func(o *models.Order) bool { return o.Status == status })
}

// FindByNumber looks an order up by id or customer facing number
func (s *OrderStore) FindByNumber(ctx context.Context, ref string) (models.Order, bool, error) {
	if o, ok, err := s.Get(ctx, ref); err != nil || ok {
		return o, ok, err
	}
	matches, err := s.Filter(ctx, func(o *models.Order) bool { return o.OrderNumber == ref })
	if err != nil || len(matches) == 0 {
		return models.Order{}, false, err
	}
	return matches[0], true, nil
}
