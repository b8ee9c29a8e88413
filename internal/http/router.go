package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pantrypay/internal/auth"
	familyHandler "pantrypay/internal/http/family"
	paymentHandler "pantrypay/internal/http/payment"
)

func New(
	jwtSecret string,
	paymentsV1 *paymentHandler.Handler,
	familiesV1 *familyHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/families", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			familiesV1.Routes(r)
		})
	})

	return router
}
