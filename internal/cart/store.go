package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
)

// MaxQty caps a line item's quantity. Adds saturate at it and persisted lines
// above it are dropped on hydrate.
const MaxQty = math.MaxInt32

// SanitizeQty coerces a requested quantity to a positive integer: finite
// positive input is floored and capped at MaxQty, anything else (including
// values that floor to zero) becomes 1.
func SanitizeQty(requested float64) int {
	if math.IsNaN(requested) || math.IsInf(requested, 0) || requested <= 0 {
		return 1
	}
	q := math.Floor(requested)
	if q < 1 {
		return 1
	}
	if q > MaxQty {
		return MaxQty
	}
	return int(q)
}

// Store is the ordered list of line items, mirrored to the key/value store
// after every mutation.
type Store struct {
	kv     storage.KV
	logger *zap.Logger

	mu    sync.Mutex
	items []Item
}

func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger, items: []Item{}}
}

// Hydrate replaces the in-memory cart with the persisted one. A missing,
// unreadable or malformed value results in an empty cart.
func (s *Store) Hydrate(ctx context.Context) {
	items := s.read(ctx)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *Store) read(ctx context.Context) []Item {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("read persisted cart", zap.Error(err))
		}
		return []Item{}
	}
	if raw == "" {
		return []Item{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("discarding malformed persisted cart", zap.Error(err))
		return []Item{}
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		var it Item
		if err := json.Unmarshal(entry, &it); err != nil {
			s.logger.Warn("dropping malformed cart line", zap.Int("index", i), zap.Error(err))
			continue
		}
		if it.ID == "" || it.Qty < 1 || it.Qty > MaxQty {
			continue
		}
		items = append(items, it)
	}
	return items
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Add puts requested units of p into the cart. An existing line item for the
// same product id is incremented instead of duplicated.
func (s *Store) Add(ctx context.Context, p catalog.Product, requested float64) error {
	qty := SanitizeQty(requested)

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Qty = addQty(s.items[i].Qty, qty)
			updated = true
			break
		}
	}
	if !updated {
		s.items = append(s.items, Item{
			ID:    p.ID,
			Brand: p.Brand,
			Model: p.Model,
			Price: p.Price,
			Qty:   qty,
		})
	}

	return s.persistLocked(ctx)
}

func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept

	return s.persistLocked(ctx)
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	body, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(body)); err != nil {
		s.logger.Error("persist cart", zap.Error(err))
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func addQty(current, delta int) int {
	if current > MaxQty-delta {
		return MaxQty
	}
	return current + delta
}
