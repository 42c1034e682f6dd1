// internal/app/features/releasenotes/routes.go
package releasenotes

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	return r
}
