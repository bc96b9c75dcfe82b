package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP handles the login endpoint.
//
//	@Summary		Authenticate an account
//	@Description	Verifies credentials and issues a session token. The account must be approved before it may authenticate.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}

	session, err := h.LoginService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		// Unknown email and bad password are indistinguishable at the
		// boundary so the response cannot be used to probe for accounts.
		case errors.Is(err, service.ErrWrongLogin), errors.Is(err, service.ErrWrongPassword):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrNotPermit):
			httpx.WriteError(w, http.StatusForbidden, "Account not activated")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:  session.Token,
		UserID: session.AccountID,
		Role:   session.Role,
	})
}
