// Package emulator assembles a local stand-in for the kakeibo API,
// used for integration tests and offline development.
package emulator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/api"
	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/store"
)

// Options configures the emulator router.
type Options struct {
	// APIKey is the bearer key every request must present.
	APIKey string

	// LockedBefore is a YYYY-MM-DD bound; journals dated strictly before
	// it belong to a closed accounting period. Empty disables locking.
	LockedBefore string

	// Quiet disables request logging.
	Quiet bool
}

// NewRouter builds the emulator's HTTP router on the given store.
func NewRouter(st *store.Store, opts Options) http.Handler {
	journalsHandler := api.NewJournalsHandler(st, opts.LockedBefore)
	draftsHandler := api.NewDraftsHandler(st)

	r := chi.NewRouter()
	if !opts.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(api.AuthMiddleware(opts.APIKey))

		r.Route("/journals", func(r chi.Router) {
			r.Get("/", journalsHandler.List)
			r.Post("/", journalsHandler.Create)
			r.Get("/{id}", journalsHandler.Get)
			r.Delete("/{id}", journalsHandler.Delete)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/analyze", draftsHandler.Analyze)
			r.Route("/drafts", func(r chi.Router) {
				r.Get("/", draftsHandler.List)
				r.Get("/{id}", draftsHandler.Get)
				r.Delete("/{id}", draftsHandler.Delete)
			})
		})
	})

	return r
}
