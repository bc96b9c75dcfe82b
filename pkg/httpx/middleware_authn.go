package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/sablevale/userd/pkg/slogx"
	"github.com/sablevale/userd/pkg/tokenx"
)

// AuthnMiddleware is the per-request authorization guard. The header must
// be exactly "Bearer <token>" with both parts non-empty; the token must
// carry a valid MAC and an unexpired exp claim. Every failure (missing
// header, wrong scheme, bad signature, expiry) maps to the same 401 so
// the response does not reveal which check tripped.
//
// The caller identity is taken entirely from the token claims; no store
// lookup happens here, so a role change only takes effect once the
// current token expires and a new one is issued.
func AuthnMiddleware(codec tokenx.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeUnauthorized(w)
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				log.Warn("bearer token rejected")
				writeUnauthorized(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyAccountID, claims.UserID)
			ctx = context.WithValue(ctx, CtxKeyRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
