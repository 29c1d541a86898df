package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storefront"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/view"
)

// Storefront is the session surface the handlers drive. *storefront.Session
// implements it.
type Storefront interface {
	ApplyFilters(f storefront.Filters) view.ProductGrid
	Reset() view.ProductGrid
	Products() view.ProductGrid
	AddToCart(ctx context.Context, productID string, qty float64) (view.CartView, error)
	RemoveFromCart(ctx context.Context, productID string) (view.CartView, error)
	ClearCart(ctx context.Context) (view.CartView, error)
	Checkout() cart.CheckoutResult
	Cart() view.CartView
	Snapshot() storefront.State
}

type Handler struct {
	store  Storefront
	logger *zap.Logger
}

func NewHandler(store Storefront, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// ListProducts applies the brand and q query parameters when at least one of
// them is present; otherwise it returns the grid for the current filters.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("brand") && !q.Has("q") {
		writeJSON(w, http.StatusOK, h.store.Products())
		return
	}

	grid := h.store.ApplyFilters(storefront.Filters{
		Brand: q.Get("brand"),
		Query: q.Get("q"),
	})
	writeJSON(w, http.StatusOK, grid)
}

func (h *Handler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Reset())
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Cart())
}

type addItemRequest struct {
	ProductID string          `json:"productId"`
	Qty       json.RawMessage `json:"qty"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.ProductID) == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	v, err := h.store.AddToCart(r.Context(), body.ProductID, requestedQty(body.Qty))
	if err != nil {
		if errors.Is(err, storefront.ErrUnknownProduct) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("add to cart", zap.String("product_id", body.ProductID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	v, err := h.store.RemoveFromCart(r.Context(), productID)
	if err != nil {
		h.logger.Error("remove from cart", zap.String("product_id", productID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	v, err := h.store.ClearCart(r.Context())
	if err != nil {
		h.logger.Error("clear cart", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Checkout always answers 200: an empty cart is reported in the message,
// not as an HTTP error.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Checkout())
}

// requestedQty converts the loosely typed qty field into a number the cart
// can sanitize. Numbers out of float64 range come back as ±Inf; anything that
// is not a number becomes NaN. The cart treats both as 1.
func requestedQty(raw json.RawMessage) float64 {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 1
	}

	if strings.HasPrefix(text, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return math.NaN()
		}
		text = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
