// Package storefront holds the application state of one storefront session
// and the operations the UI surface triggers on it.
package storefront

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/view"
)

var ErrUnknownProduct = errors.New("unknown product")

// CatalogLoader is satisfied by *catalog.Loader.
type CatalogLoader interface {
	Load(ctx context.Context) []catalog.Product
}

// Filters is the current brand selector and search text.
type Filters struct {
	Brand string `json:"brand"`
	Query string `json:"query"`
}

// State is a point-in-time copy of everything the UI displays.
type State struct {
	Filters         Filters          `json:"filters"`
	Products        view.ProductGrid `json:"products"`
	Cart            view.CartView    `json:"cart"`
	CheckoutMessage string           `json:"checkoutMessage"`
}

// Session owns the catalog, the cart and the filter selection. Every
// operation runs to completion under the session lock, so callers on
// different goroutines observe the same sequential behaviour a single UI
// thread would.
type Session struct {
	loader CatalogLoader
	cart   *cart.Store
	logger *zap.Logger

	mu              sync.Mutex
	products        []catalog.Product
	filters         Filters
	checkoutMessage string
}

func New(loader CatalogLoader, store *cart.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		loader:  loader,
		cart:    store,
		logger:  logger,
		filters: Filters{Brand: catalog.AllBrands},
	}
}

// Init loads the catalog, resets the filters and restores the persisted
// cart. It never fails: the catalog and the cart fall back to safe defaults.
func (s *Session) Init(ctx context.Context) State {
	products := s.loader.Load(ctx)
	s.cart.Hydrate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	s.filters = Filters{Brand: catalog.AllBrands}
	s.logger.Info("storefront ready",
		zap.Int("products", len(products)),
		zap.Int("cart_lines", len(s.cart.Items())))

	return s.stateLocked()
}

func (s *Session) SetBrand(brand string) view.ProductGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Brand = normalizeBrand(brand)
	return s.gridLocked()
}

func (s *Session) SetQuery(query string) view.ProductGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Query = query
	return s.gridLocked()
}

// ApplyFilters sets both filters at once.
func (s *Session) ApplyFilters(f Filters) view.ProductGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = Filters{Brand: normalizeBrand(f.Brand), Query: f.Query}
	return s.gridLocked()
}

func (s *Session) Reset() view.ProductGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = Filters{Brand: catalog.AllBrands}
	return s.gridLocked()
}

func (s *Session) Products() view.ProductGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gridLocked()
}

func (s *Session) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

// AddToCart adds qty units of the product. ErrUnknownProduct is returned,
// and the cart left unchanged, when the id is not in the catalog.
func (s *Session) AddToCart(ctx context.Context, productID string, qty float64) (view.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := catalog.Find(s.products, productID)
	if !ok {
		return view.RenderCart(s.cart.Items()), ErrUnknownProduct
	}

	err := s.cart.Add(ctx, p, qty)
	return view.RenderCart(s.cart.Items()), err
}

func (s *Session) RemoveFromCart(ctx context.Context, productID string) (view.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cart.Remove(ctx, productID)
	return view.RenderCart(s.cart.Items()), err
}

// ClearCart empties the cart and blanks the checkout message.
func (s *Session) ClearCart(ctx context.Context) (view.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cart.Clear(ctx)
	s.checkoutMessage = ""
	return view.RenderCart(s.cart.Items()), err
}

func (s *Session) Checkout() cart.CheckoutResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := cart.Checkout(s.cart.Items())
	s.checkoutMessage = res.Message
	return res
}

func (s *Session) Cart() view.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return view.RenderCart(s.cart.Items())
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

func (s *Session) gridLocked() view.ProductGrid {
	return view.RenderProducts(catalog.Filter(s.products, s.filters.Brand, s.filters.Query))
}

func (s *Session) stateLocked() State {
	return State{
		Filters:         s.filters,
		Products:        s.gridLocked(),
		Cart:            view.RenderCart(s.cart.Items()),
		CheckoutMessage: s.checkoutMessage,
	}
}

func normalizeBrand(brand string) string {
	if strings.TrimSpace(brand) == "" {
		return catalog.AllBrands
	}
	return brand
}
