package cart

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
)

type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Close() error { return nil }

var (
	airForce  = catalog.Product{ID: "nk-001", Brand: "Nike", Model: "Air Force 1", Price: 89990}
	stanSmith = catalog.Product{ID: "ad-001", Brand: "Adidas", Model: "Stan Smith", Price: 74990}
)

func TestSanitizeQty(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want int
	}{
		"positive integer": {in: 3, want: 3},
		"fraction floors":  {in: 2.7, want: 2},
		"below one":        {in: 0.4, want: 1},
		"zero":             {in: 0, want: 1},
		"negative":         {in: -5, want: 1},
		"nan":              {in: math.NaN(), want: 1},
		"positive inf":     {in: math.Inf(1), want: 1},
		"negative inf":     {in: math.Inf(-1), want: 1},
		"capped":           {in: 1e12, want: MaxQty},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SanitizeQty(tt.in); got != tt.want {
				t.Fatalf("SanitizeQty(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStoreAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("new item snapshots product", func(t *testing.T) {
		kv := newFakeKV()
		s := NewStore(kv, nil)

		require.NoError(t, s.Add(ctx, airForce, 2))

		require.Equal(t, []Item{{ID: "nk-001", Brand: "Nike", Model: "Air Force 1", Price: 89990, Qty: 2}}, s.Items())
		require.JSONEq(t, `[{"id":"nk-001","brand":"Nike","model":"Air Force 1","price":89990,"qty":2}]`, kv.data[StorageKey])
	})

	t.Run("same id increments instead of duplicating", func(t *testing.T) {
		s := NewStore(newFakeKV(), nil)

		require.NoError(t, s.Add(ctx, airForce, 2))
		require.NoError(t, s.Add(ctx, stanSmith, 1))
		require.NoError(t, s.Add(ctx, airForce, 3))

		items := s.Items()
		require.Len(t, items, 2)
		require.Equal(t, "nk-001", items[0].ID)
		require.Equal(t, 5, items[0].Qty)
		require.Equal(t, "ad-001", items[1].ID)
	})

	t.Run("invalid quantities count as one", func(t *testing.T) {
		s := NewStore(newFakeKV(), nil)

		for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			require.NoError(t, s.Add(ctx, airForce, q))
		}
		require.Equal(t, 4, s.Items()[0].Qty)
	})

	t.Run("price snapshot is kept", func(t *testing.T) {
		s := NewStore(newFakeKV(), nil)
		require.NoError(t, s.Add(ctx, airForce, 1))

		repriced := airForce
		repriced.Price = 1
		require.NoError(t, s.Add(ctx, repriced, 1))

		require.Equal(t, int64(89990), s.Items()[0].Price)
	})

	t.Run("persist error keeps in-memory change", func(t *testing.T) {
		kv := newFakeKV()
		kv.setErr = errors.New("quota exceeded")
		s := NewStore(kv, nil)

		err := s.Add(ctx, airForce, 1)
		require.Error(t, err)
		require.Len(t, s.Items(), 1)
	})
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	s := NewStore(kv, nil)

	require.NoError(t, s.Add(ctx, airForce, 1))
	require.NoError(t, s.Add(ctx, stanSmith, 1))

	require.NoError(t, s.Remove(ctx, "nk-001"))
	require.Equal(t, []string{"ad-001"}, itemIDs(s.Items()))

	// Second removal is a no-op.
	require.NoError(t, s.Remove(ctx, "nk-001"))
	require.Equal(t, []string{"ad-001"}, itemIDs(s.Items()))
	require.JSONEq(t, `[{"id":"ad-001","brand":"Adidas","model":"Stan Smith","price":74990,"qty":1}]`, kv.data[StorageKey])
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	s := NewStore(kv, nil)

	require.NoError(t, s.Clear(ctx))
	require.Empty(t, s.Items())
	require.Equal(t, `[]`, kv.data[StorageKey])

	require.NoError(t, s.Add(ctx, airForce, 3))
	require.NoError(t, s.Add(ctx, stanSmith, 1))
	require.NoError(t, s.Clear(ctx))

	require.Empty(t, s.Items())
	require.Equal(t, `[]`, kv.data[StorageKey])
	require.Equal(t, 4, kv.sets)
}

func TestStoreHydrate(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		stored  *string
		getErr  error
		wantIDs []string
	}{
		"missing key": {
			wantIDs: []string{},
		},
		"valid array": {
			stored:  strPtr(`[{"id":"ad-001","brand":"Adidas","model":"Stan Smith","price":74990,"qty":2},{"id":"nk-001","brand":"Nike","model":"Air Force 1","price":89990,"qty":1}]`),
			wantIDs: []string{"ad-001", "nk-001"},
		},
		"object": {
			stored:  strPtr(`{"id":"nk-001"}`),
			wantIDs: []string{},
		},
		"null": {
			stored:  strPtr(`null`),
			wantIDs: []string{},
		},
		"corrupt string": {
			stored:  strPtr(`[{"id":`),
			wantIDs: []string{},
		},
		"empty string": {
			stored:  strPtr(``),
			wantIDs: []string{},
		},
		"entries without id or quantity are dropped": {
			stored:  strPtr(`[{"id":"","qty":1},{"id":"pm-001","qty":0},{"id":"pm-002","brand":"Puma","model":"RS-X","price":94990,"qty":1}]`),
			wantIDs: []string{"pm-002"},
		},
		"malformed entries are dropped one by one": {
			stored:  strPtr(`[{"id":"nk-001","qty":"3"},{"id":"ad-001","brand":"Adidas","model":"Stan Smith","price":74990,"qty":2},7,{"id":"pm-001","qty":1e30}]`),
			wantIDs: []string{"ad-001"},
		},
		"quantity above the ceiling is dropped": {
			stored:  strPtr(`[{"id":"nk-001","brand":"Nike","model":"Air Force 1","price":89990,"qty":9223372036854775807},{"id":"pm-002","brand":"Puma","model":"RS-X","price":94990,"qty":2147483647}]`),
			wantIDs: []string{"pm-002"},
		},
		"storage error": {
			getErr:  errors.New("io error"),
			wantIDs: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kv := newFakeKV()
			s := NewStore(kv, nil)
			// Hydrate must replace whatever is in memory.
			require.NoError(t, s.Add(ctx, airForce, 1))

			delete(kv.data, StorageKey)
			if tt.stored != nil {
				kv.data[StorageKey] = *tt.stored
			}
			kv.getErr = tt.getErr

			s.Hydrate(ctx)

			require.Equal(t, tt.wantIDs, itemIDs(s.Items()))
		})
	}
}

func TestStoreAddSaturatesAtMaxQty(t *testing.T) {
	ctx := context.Background()

	t.Run("oversized persisted line never wraps", func(t *testing.T) {
		kv := newFakeKV()
		kv.data[StorageKey] = `[{"id":"nk-001","brand":"Nike","model":"Air Force 1","price":89990,"qty":9223372036854775807}]`

		s := NewStore(kv, nil)
		s.Hydrate(ctx)
		require.NoError(t, s.Add(ctx, airForce, 1))

		items := s.Items()
		require.Len(t, items, 1)
		require.Equal(t, 1, items[0].Qty)

		totals := Summarize(items)
		require.Equal(t, int64(89990), totals.Subtotal)
		require.Equal(t, ShippingFee, totals.Shipping)
	})

	t.Run("increment stops at the ceiling", func(t *testing.T) {
		kv := newFakeKV()
		kv.data[StorageKey] = `[{"id":"nk-001","brand":"Nike","model":"Air Force 1","price":89990,"qty":2147483646}]`

		s := NewStore(kv, nil)
		s.Hydrate(ctx)
		require.NoError(t, s.Add(ctx, airForce, 5))
		require.Equal(t, MaxQty, s.Items()[0].Qty)

		require.NoError(t, s.Add(ctx, airForce, 1e12))
		items := s.Items()
		require.Equal(t, MaxQty, items[0].Qty)
		require.Positive(t, Summarize(items).Subtotal)
	})
}

func TestStoreHydrateRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	first := NewStore(kv, nil)
	require.NoError(t, first.Add(ctx, stanSmith, 2))
	require.NoError(t, first.Add(ctx, airForce, 1))

	second := NewStore(kv, nil)
	second.Hydrate(ctx)

	require.Equal(t, first.Items(), second.Items())
}

func itemIDs(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }
