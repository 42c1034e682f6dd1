package settings

import "net/http"

// RequireLoaded returns middleware that answers every request with
// unavailable when policy is PolicyBlock and the settings load failed.
// Under any other policy, or after a successful load, it passes through.
func RequireLoaded(h *Holder, policy Policy, unavailable http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if policy != PolicyBlock {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.Degraded() {
				unavailable.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
