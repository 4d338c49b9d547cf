// Package store holds the in-memory state containers of the storefront. Each one loads its
// slot on first use and writes the whole collection back after every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"go-storefront/storage"
	"go-storefront/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Directions accepted by Reorder
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// Schema describes how a Collection reaches into its record type.
// Order and Active are nil for kinds without a manual order or visibility flag.
type Schema[T any] struct {
	Key       string
	Defaults  func() []T
	ID        func(*T) *string
	Order     func(*T) *int
	Active    func(*T) *bool
	NewID     func() string
	Prepare   func(*T)
	Validate  func(*T) error
	Conflicts func(existing []T, rec *T) error
}

// Collection is the load / mutate / write-through container shared by the admin stores
type Collection[T any] struct {
	mu     sync.Mutex
	slots  storage.Slots
	schema Schema[T]
	items  []T
	loaded bool
}

// NewCollection creates a collection; nothing is read until first use
func NewCollection[T any](slots storage.Slots, schema Schema[T]) *Collection[T] {
	if schema.NewID == nil {
		schema.NewID = utils.NewID
	}
	return &Collection[T]{slots: slots, schema: schema}
}

func (c *Collection[T]) defaults() []T {
	if c.schema.Defaults == nil {
		return []T{}
	}
	return c.schema.Defaults()
}

// load must be called with c.mu held
func (c *Collection[T]) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	var items []T
	ok, err := c.slots.Load(ctx, c.schema.Key, &items)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		zap.S().Errorf("Error loading %s, falling back to defaults: %v", c.schema.Key, err)
		items = c.defaults()
	case err != nil:
		return err
	case !ok:
		items = c.defaults()
		if err := c.slots.Save(ctx, c.schema.Key, items); err != nil {
			return err
		}
	}
	if items == nil {
		items = []T{}
	}

	c.sort(items)
	c.items = items
	c.loaded = true
	return nil
}

func (c *Collection[T]) sort(items []T) {
	if c.schema.Order == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return *c.schema.Order(&items[i]) < *c.schema.Order(&items[j])
	})
}

// commit persists next and makes it the current state; c.mu must be held
func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	c.sort(next)
	if err := c.slots.Save(ctx, c.schema.Key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// clone deep-copies a record so a mutation cannot reach slices or maps of the stored one
func clone[T any](rec T) (T, error) {
	var out T
	data, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

// cloneAll deep-copies records handed out to callers
func cloneAll[T any](recs []T) ([]T, error) {
	out := make([]T, len(recs))
	for i := range recs {
		var err error
		if out[i], err = clone(recs[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if *c.schema.ID(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) check(existing []T, rec *T) error {
	if c.schema.Prepare != nil {
		c.schema.Prepare(rec)
	}
	if c.schema.Validate != nil {
		if err := c.schema.Validate(rec); err != nil {
			return err
		}
	}
	if c.schema.Conflicts != nil {
		return c.schema.Conflicts(existing, rec)
	}
	return nil
}

// Reload drops the in-memory state so the next call reads the slot again
func (c *Collection[T]) Reload() {
	c.mu.Lock()
	c.loaded = false
	c.items = nil
	c.mu.Unlock()
}

// List returns every record, sorted by the manual order when the kind has one
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return cloneAll(c.items)
}

// ListActive returns the records whose active flag is set
func (c *Collection[T]) ListActive(ctx context.Context) ([]T, error) {
	if c.schema.Active == nil {
		return c.List(ctx)
	}
	return c.Filter(ctx, func(rec *T) bool { return *c.schema.Active(rec) })
}

// Filter returns the records matching keep, in collection order
func (c *Collection[T]) Filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	all, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Get returns the record with the given id
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.load(ctx); err != nil {
		return zero, false, err
	}
	if i := c.indexOf(id); i >= 0 {
		rec, err := clone(c.items[i])
		return rec, err == nil, err
	}
	return zero, false, nil
}

// Create assigns a new id, appends the record and persists the collection.
// Ordered kinds without an explicit order go last.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.load(ctx); err != nil {
		return zero, err
	}

	*c.schema.ID(&rec) = c.schema.NewID()
	if c.schema.Order != nil && *c.schema.Order(&rec) <= 0 {
		last := 0
		for i := range c.items {
			if o := *c.schema.Order(&c.items[i]); o > last {
				last = o
			}
		}
		*c.schema.Order(&rec) = last + 1
	}
	if err := c.check(c.items, &rec); err != nil {
		return zero, err
	}

	next := append(c.snapshot(), rec)
	if err := c.commit(ctx, next); err != nil {
		return zero, err
	}
	return clone(rec)
}

// Update applies mutate to a copy of the record and replaces it. The id cannot change.
// found is false, and nothing is written, when the id is absent.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (rec T, found bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err = c.load(ctx); err != nil {
		return rec, false, err
	}

	i := c.indexOf(id)
	if i < 0 {
		return rec, false, nil
	}
	if rec, err = clone(c.items[i]); err != nil {
		return rec, true, err
	}
	if err = mutate(&rec); err != nil {
		return rec, true, err
	}
	*c.schema.ID(&rec) = id

	others := make([]T, 0, len(c.items)-1)
	others = append(others, c.items[:i]...)
	others = append(others, c.items[i+1:]...)
	if err = c.check(others, &rec); err != nil {
		return rec, true, err
	}

	next := c.snapshot()
	next[i] = rec
	if err = c.commit(ctx, next); err != nil {
		return rec, true, err
	}
	rec, err = clone(rec)
	return rec, true, err
}

// Patch shallow-merges a JSON object into the record: top-level fields present in patch
// replace the stored ones whole, absent fields are kept.
func (c *Collection[T]) Patch(ctx context.Context, id string, patch []byte) (T, bool, error) {
	return c.Update(ctx, id, func(rec *T) error { return overlay(rec, patch) })
}

// overlay replaces the top-level JSON fields of rec named in patch. Nested objects are
// taken whole, so keys missing from a patched map are dropped.
func overlay[T any](rec *T, patch []byte) error {
	var changes map[string]jsoniter.RawMessage
	if err := json.Unmarshal(patch, &changes); err != nil {
		return &ValidationError{Field: "body", Message: "Invalid input", Err: err}
	}
	current, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	fields := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(current, &fields); err != nil {
		return err
	}
	for k, v := range changes {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var next T
	if err := json.Unmarshal(merged, &next); err != nil {
		return &ValidationError{Field: "body", Message: "Invalid input", Err: err}
	}
	*rec = next
	return nil
}

// Delete removes the record; the order of the remaining records is left as is.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return false, err
	}

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)
	return true, c.commit(ctx, next)
}

// ToggleActive flips the visibility flag
func (c *Collection[T]) ToggleActive(ctx context.Context, id string) (T, bool, error) {
	if c.schema.Active == nil {
		var zero T
		return zero, false, ErrNoActiveFlag
	}
	return c.Update(ctx, id, func(rec *T) error {
		active := c.schema.Active(rec)
		*active = !*active
		return nil
	})
}

// Reorder swaps the record with its neighbour in the current order and renumbers every
// record 1..N. Moving the first record up or the last one down changes nothing.
func (c *Collection[T]) Reorder(ctx context.Context, id, direction string) (bool, error) {
	if c.schema.Order == nil {
		return false, ErrNotOrdered
	}
	if direction != MoveUp && direction != MoveDown {
		return false, ErrBadDirection
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return false, err
	}

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	target := i + 1
	if direction == MoveUp {
		target = i - 1
	}
	if target < 0 || target >= len(c.items) {
		return true, nil
	}

	next := c.snapshot()
	next[i], next[target] = next[target], next[i]
	for n := range next {
		*c.schema.Order(&next[n]) = n + 1
	}
	if err := c.commit(ctx, next); err != nil {
		return true, fmt.Errorf("saving %s order: %w", c.schema.Key, err)
	}
	return true, nil
}
