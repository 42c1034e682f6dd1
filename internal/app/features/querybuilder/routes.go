// internal/app/features/querybuilder/routes.go
package querybuilder

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Get("/open", h.ServeOpen)
	return r
}
