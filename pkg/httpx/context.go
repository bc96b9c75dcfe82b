package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyRole      ctxKey = "role"
)

// AccountIDFromContext returns the authenticated caller's account id, or
// "" when the request did not pass the authn middleware.
func AccountIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext returns the caller's role as frozen in the presented
// token. The bool is false when no authenticated caller is attached.
func RoleFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(CtxKeyRole).(int)
	return v, ok
}
