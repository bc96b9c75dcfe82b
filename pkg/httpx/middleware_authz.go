package httpx

import "net/http"

// RequirePermission gates a handler on the caller's role. The decision
// function comes from the access policy table so role checks cannot
// drift between handlers. Must run after AuthnMiddleware.
func RequirePermission(permit func(role int) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				writeUnauthorized(w)
				return
			}
			if !permit(role) {
				WriteError(w, http.StatusForbidden, "Not permitted")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
