package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kitis-shop/models"
	"kitis-shop/storage"
)

// DefaultKey is the storage slot the cart has always lived under.
const DefaultKey = "kitis_cart"

// Notifier is a fire-and-forget sink for short user-facing messages,
// a toast in the browser or just a log line.
type Notifier interface {
	Notify(message string)
}

// ChangeFunc receives the cart after every successful mutation. The
// view layer subscribes here instead of being called directly.
type ChangeFunc func(cart models.Cart)

// Store owns the persisted cart: a single slot holding the ordered
// {id, qty} list for one visitor. All access is driven by discrete UI
// events in a single writer context, so there is no internal locking.
type Store struct {
	store    storage.Store
	key      string
	log      *zap.Logger
	notifier Notifier
	onChange ChangeFunc
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage slot key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithNotifier sets the user-message sink.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithOnChange sets the hook invoked with the cart after each
// successful mutation.
func WithOnChange(fn ChangeFunc) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates a cart store over the given persistence collaborator.
func NewStore(st storage.Store, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		store: st,
		key:   DefaultKey,
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted cart. A missing slot yields an empty cart;
// so does unreadable or malformed data, which is logged and swallowed
// rather than surfaced — the worst case is a fresh cart, never an error.
func (s *Store) Load(ctx context.Context) models.Cart {
	raw, err := s.store.Read(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Cart{}
	}
	if err != nil {
		s.log.Warn("could not read cart, starting empty", zap.Error(err))
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		s.log.Warn("could not parse cart, starting empty", zap.Error(err))
		return models.Cart{}
	}
	return c
}

// Add increments the quantity of an existing line for productID, or
// appends a new line. qty must be positive; anything else is ignored.
func (s *Store) Add(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	c := s.Load(ctx)
	if i := c.Find(productID); i >= 0 {
		c[i].Quantity += qty
	} else {
		c = append(c, models.CartLine{ProductID: productID, Quantity: qty})
	}
	if err := s.save(ctx, c); err != nil {
		return err
	}
	s.notify("Added to cart")
	return nil
}

// Increment raises an existing line's quantity by one without a
// notification. Unlike Add it does not create a line.
func (s *Store) Increment(ctx context.Context, productID string) error {
	c := s.Load(ctx)
	i := c.Find(productID)
	if i < 0 {
		return nil
	}
	c[i].Quantity++
	return s.save(ctx, c)
}

// Decrement lowers an existing line's quantity by one, removing the
// line when it reaches zero.
func (s *Store) Decrement(ctx context.Context, productID string) error {
	c := s.Load(ctx)
	i := c.Find(productID)
	if i < 0 {
		return nil
	}
	return s.SetQuantity(ctx, productID, c[i].Quantity-1)
}

// SetQuantity sets a line's quantity to exactly qty. A qty of zero or
// less removes the line. Setting a quantity for an unknown product is
// a no-op (the cart is still re-persisted, matching Add/Remove's
// persist-after-every-mutation contract).
func (s *Store) SetQuantity(ctx context.Context, productID string, qty int) error {
	c := s.Load(ctx)
	if qty <= 0 {
		c = removeLine(c, productID)
	} else if i := c.Find(productID); i >= 0 {
		c[i].Quantity = qty
	}
	return s.save(ctx, c)
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(ctx context.Context, productID string) error {
	return s.save(ctx, removeLine(s.Load(ctx), productID))
}

// Count returns the sum of quantities across all lines.
func (s *Store) Count(ctx context.Context) int {
	return s.Load(ctx).Count()
}

// Clear removes the persisted slot entirely; the next Load returns an
// empty cart.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.changed(models.Cart{})
	return nil
}

func removeLine(c models.Cart, productID string) models.Cart {
	out := c[:0]
	for _, line := range c {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return out
}

// save persists the cart and fires the change hook. The hook runs even
// when persistence fails so the view keeps showing the in-memory state
// the user just produced.
func (s *Store) save(ctx context.Context, c models.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	werr := s.store.Write(ctx, s.key, string(raw))
	if werr != nil {
		s.log.Error("could not persist cart", zap.Error(werr))
		werr = fmt.Errorf("persist cart: %w", werr)
	}
	s.changed(c)
	return werr
}

func (s *Store) changed(c models.Cart) {
	if s.onChange != nil {
		s.onChange(c.Clone())
	}
}

func (s *Store) notify(message string) {
	if s.notifier != nil {
		s.notifier.Notify(message)
	}
}
