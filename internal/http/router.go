package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clutch42/envelope-budget/internal/http/envelope"
	"github.com/clutch42/envelope-budget/internal/http/importcsv"
	"github.com/clutch42/envelope-budget/internal/http/transaction"
)

func New(
	envelopes *envelope.Handler,
	transactions *transaction.Handler,
	importer *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/envelopes", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		envelopes.Routes(r)
	})

	router.Route("/transactions", func(r chi.Router) {
		// Import uploads multipart, everything else is JSON.
		r.Route("/import", importer.Routes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactions.Routes(r)
		})
	})

	return router
}
