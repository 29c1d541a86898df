package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/middleware"
)

// NewRouter mounts the storefront API. allowOrigins feeds the CORS
// middleware; nil disables cross-origin access.
func NewRouter(h *Handler, logger *zap.Logger, allowOrigins []string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(allowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.State)

		r.Get("/products", h.ListProducts)
		r.Post("/products/reset", h.ResetFilters)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddItem)
			r.Delete("/items/{productId}", h.RemoveItem)
			r.Post("/checkout", h.Checkout)
		})
	})

	return r
}
