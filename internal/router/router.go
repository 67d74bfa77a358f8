package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketplace-api/internal/config"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.MaxBodyBytes(cfg.MaxBodyBytes))

	if h.Health != nil {
		r.Get("/health", h.Health.Health)
	}

	r.Get("/", h.Product.List)
	r.Post("/login", h.Auth.Login)
	r.Post("/registrarse", h.Auth.Register)
	r.Post("/contacto", h.Contact.Submit)

	r.Group(func(protected chi.Router) {
		protected.Use(authMiddleware.RequireAuth)

		protected.Get("/usuario", h.Auth.Profile)
		protected.Post("/publicar", h.Product.Publish)
		protected.Get("/mis-publicaciones", h.Product.Mine)
	})

	return r
}
