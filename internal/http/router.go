package http

import (
	"net/http"
	"time"

	"github.com/WGledhill94/loadLab/internal/auth"
	"github.com/WGledhill94/loadLab/internal/catalog"
	"github.com/WGledhill94/loadLab/internal/checkout"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
}

// NewRouter wires the API surface. The bearer middleware runs on every
// route so any endpoint can see an optional identity without requiring one.
func NewRouter(
	cfg RouterConfig,
	catalogSvc *catalog.Service,
	authSvc *auth.Service,
	checkoutSvc checkout.Service,
) *chi.Mux {
	productHandler := NewProductHandler(catalogSvc)
	authHandler := NewAuthHandler(authSvc)
	checkoutHandler := NewCheckoutHandler(checkoutSvc)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	if cfg.MaxRequestBodySize > 0 {
		r.Use(middleware.RequestSize(cfg.MaxRequestBodySize))
	}
	r.Use(BearerAuth(authSvc))

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/categories", productHandler.Categories)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Post("/checkout", checkoutHandler.Submit)

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	})

	return r
}
