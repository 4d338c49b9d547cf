package store

import (
	"context"
	"errors"
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/pricing"
	"go-storefront/storage"
)

// CartStore is one shopping cart. Inputs are clamped, never rejected; the only error
// a mutation returns is a failed write of the cart slot.
type CartStore struct {
	mu    sync.Mutex
	slots storage.Slots
	key   string
	items []models.CartItem
}

// OpenCart restores the cart saved under key. Unreadable data starts an empty cart.
func OpenCart(ctx context.Context, slots storage.Slots, key string) (*CartStore, error) {
	var items []models.CartItem
	_, err := slots.Load(ctx, key, &items)
	if errors.Is(err, storage.ErrMalformed) {
		zap.S().Errorf("Error loading cart %s, starting empty: %v", key, err)
		items = nil
	} else if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return &CartStore{slots: slots, key: key, items: items}, nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *CartStore) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (c *CartStore) commit(ctx context.Context, next []models.CartItem) error {
	if err := c.slots.Save(ctx, c.key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *CartStore) snapshot() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem adds quantity units of product, merging with an existing line for the same id.
// The resulting quantity is capped at product.Stock; a result below 1 leaves no line.
func (c *CartStore) AddItem(ctx context.Context, product models.Product, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.snapshot()
	if i := c.indexOf(product.ID); i >= 0 {
		q := clamp(next[i].Quantity+quantity, 0, product.Stock)
		if q == 0 {
			next = append(next[:i], next[i+1:]...)
		} else {
			next[i].Quantity = q
			next[i].Stock = product.Stock
		}
		return c.commit(ctx, next)
	}

	q := clamp(quantity, 0, product.Stock)
	if q == 0 {
		return nil
	}
	next = append(next, models.CartItem{Product: snapshotProduct(product), Quantity: q})
	return c.commit(ctx, next)
}

// snapshotProduct copies the slices and maps so later catalog edits do not leak into the cart
func snapshotProduct(p models.Product) models.Product {
	p.Images = append([]string(nil), p.Images...)
	p.RelatedProducts = append([]string(nil), p.RelatedProducts...)
	if p.SalePrice != nil {
		sale := *p.SalePrice
		p.SalePrice = &sale
	}
	if p.Specifications != nil {
		specs := make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			specs[k] = v
		}
		p.Specifications = specs
	}
	return p
}

// RemoveItem drops the line of productID; absent ids are ignored
func (c *CartStore) RemoveItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	return c.commit(ctx, next)
}

// UpdateQuantity sets the quantity of a line, clamped to [0, stock]; 0 removes the line
func (c *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.ID == productID {
			item.Quantity = clamp(quantity, 0, item.Stock)
			if item.Quantity == 0 {
				continue
			}
		}
		next = append(next, item)
	}
	return c.commit(ctx, next)
}

// RemoveOrdered takes the ordered quantities out of the cart. Lines or units added
// after the order snapshot was taken stay in the cart.
func (c *CartStore) RemoveOrdered(ctx context.Context, ordered []models.CartItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	taken := make(map[string]int, len(ordered))
	for _, item := range ordered {
		taken[item.ID] += item.Quantity
	}
	next := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		item.Quantity -= taken[item.ID]
		if item.Quantity > 0 {
			next = append(next, item)
		}
	}
	return c.commit(ctx, next)
}

// Clear empties the cart
func (c *CartStore) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(ctx, []models.CartItem{})
}

// Items returns a copy of the cart lines
func (c *CartStore) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// TotalItems is the sum of the line quantities
func (c *CartStore) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of effective price times quantity
func (c *CartStore) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, item := range c.items {
		total += pricing.LineTotal(item)
	}
	return total
}

// Subtotal is an alias of TotalPrice
func (c *CartStore) Subtotal() int64 {
	return c.TotalPrice()
}

// Summary returns the cart breakdown including tax
func (c *CartStore) Summary() pricing.Summary {
	return pricing.Summarize(c.Items())
}

var cartIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// DefaultCartCacheSize is how many carts a registry keeps open
const DefaultCartCacheSize = 1024

// CartRegistry opens one CartStore per visitor cart id, lazily. Only the most recently
// used carts stay in memory; an evicted cart is reloaded from its slot on the next request.
type CartRegistry struct {
	mu    sync.Mutex
	slots storage.Slots
	carts *lru.Cache
}

// NewCartRegistry creates an empty registry holding at most DefaultCartCacheSize carts
func NewCartRegistry(slots storage.Slots) *CartRegistry {
	return NewCartRegistrySize(slots, DefaultCartCacheSize)
}

// NewCartRegistrySize creates an empty registry holding at most size carts
func NewCartRegistrySize(slots storage.Slots, size int) *CartRegistry {
	if size <= 0 {
		size = DefaultCartCacheSize
	}
	carts, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &CartRegistry{slots: slots, carts: carts}
}

// Get returns the cart for cartID; the empty id is the shared "cart" slot
func (r *CartRegistry) Get(ctx context.Context, cartID string) (*CartStore, error) {
	if cartID != "" && !cartIDPattern.MatchString(cartID) {
		return nil, ErrBadCartID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.carts.Get(cartID); ok {
		return cart.(*CartStore), nil
	}
	cart, err := OpenCart(ctx, r.slots, storage.CartKey(cartID))
	if err != nil {
		return nil, err
	}
	r.carts.Add(cartID, cart)
	return cart, nil
}

// Open reports how many carts are held in memory
func (r *CartRegistry) Open() int {
	return r.carts.Len()
}
