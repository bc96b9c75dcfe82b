package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/slogx"
)

type PasswordResetHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles the pre-authentication recovery flow: no token and
// no current credential are required, only the email. The new credential
// is stored and approval is revoked until an admin re-approves the
// account.
//
//	@Summary		Reset a password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Router			/v1/auth/password-reset [post].
func (h *PasswordResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req passwordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Weak password")
		return
	}

	err := h.AccountService.ResetCredentials(ctx, req.Email, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrWeakCredential):
			httpx.WriteError(w, http.StatusBadRequest, "Weak password")
		default:
			log.Error("password reset failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}
