package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sablevale/userd/pkg/tokenx"
	"github.com/stretchr/testify/require"
)

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	codec := tokenx.Codec{Secret: []byte("test-secret"), TTL: time.Hour}

	var gotAccountID string
	var gotRole int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccountID = AccountIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthnMiddleware(codec)(next)

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid bearer token passes and injects identity", func(t *testing.T) {
		token, err := codec.Issue("acct-1", 2)
		require.NoError(t, err)

		rec := do("Bearer " + token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "acct-1", gotAccountID)
		require.Equal(t, 2, gotRole)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		token, err := codec.Issue("acct-1", 2)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, do("Token "+token).Code)
	})

	t.Run("scheme without token rejected", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("Bearer").Code)
		require.Equal(t, http.StatusUnauthorized, do("Bearer ").Code)
	})

	t.Run("extra parts rejected", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("Bearer abc def").Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		short := tokenx.Codec{Secret: []byte("test-secret"), TTL: time.Nanosecond}
		token, err := short.Issue("acct-1", 2)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		require.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		other := tokenx.Codec{Secret: []byte("other-secret"), TTL: time.Hour}
		token, err := other.Issue("acct-1", 2)
		require.NoError(t, err)

		require.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	codec := tokenx.Codec{Secret: []byte("test-secret"), TTL: time.Hour}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	adminOnly := func(role int) bool { return role <= 2 && role >= 0 }
	handler := Chain(next, AuthnMiddleware(codec), RequirePermission(adminOnly))

	do := func(role int) *httptest.ResponseRecorder {
		token, err := codec.Issue("acct-1", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do(0).Code)
	require.Equal(t, http.StatusOK, do(2).Code)
	require.Equal(t, http.StatusForbidden, do(3).Code)
	require.Equal(t, http.StatusForbidden, do(-1).Code)

	t.Run("unauthenticated request rejected before the role check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
