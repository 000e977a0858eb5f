package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/config"
	"github.com/studentdesk/studentdesk-go/internal/middleware"
)

// NewRouter builds the route table. Background work started by the
// middleware stops when ctx is done.
func NewRouter(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
	tokens middleware.TokenValidator,
	authHandler *AuthHandler,
	studentHandler *StudentHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.NewCORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Get("/auth/me", authHandler.HandleMe)
		r.Get("/users/{id}", authHandler.HandleGetUser)

		r.Route("/api/students", func(r chi.Router) {
			r.Post("/", studentHandler.HandleCreate)
			r.Get("/", studentHandler.HandleList)
			r.Get("/{id}", studentHandler.HandleGet)
			r.Put("/{id}", studentHandler.HandleUpdate)
			r.Delete("/{id}", studentHandler.HandleDelete)
		})
	})

	return r
}
