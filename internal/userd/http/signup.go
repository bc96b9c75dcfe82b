package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/slogx"
)

type SignupHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP handles self-service registration. The account is created
// pending approval; the response still carries a session token for the
// fresh identity.
//
//	@Summary		Register an account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}

	session, err := h.RegistrationService.Register(ctx, service.Registration{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
	}, false)
	if err != nil {
		writeRegistrationError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:  session.Token,
		UserID: session.AccountID,
		Role:   session.Role,
	})
}

// writeRegistrationError maps registration outcomes for both the
// self-service and administrative creation paths.
func writeRegistrationError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Already registered by email")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Already registered by username")
	case errors.Is(err, service.ErrWeakCredential):
		httpx.WriteError(w, http.StatusBadRequest, "Weak password")
	default:
		log.Error("registration failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
