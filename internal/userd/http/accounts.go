package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/idx"
	"github.com/sablevale/userd/pkg/slogx"
)

// AccountsHandler serves the administrative account operations. Role
// gating happens in the router middleware; by the time a request lands
// here the caller is an authenticated admin.
type AccountsHandler struct {
	AccountService      *service.AccountService
	RegistrationService *service.RegistrationService
}

// HandleCreate is the administrative creation path: the account is
// stored pre-activated and no session token is returned, because the
// admin is not the identity being created.
//
//	@Summary	Create an account (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts [post].
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	_, err := h.RegistrationService.Register(ctx, service.Registration{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
	}, true)
	if err != nil {
		writeRegistrationError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}

// HandleList returns every account.
//
//	@Summary	List accounts (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts [get].
func (h *AccountsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := h.AccountService.List(ctx)
	if err != nil {
		log.Error("list accounts failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	out := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns a single account by id.
//
//	@Summary	Fetch an account (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts/{id} [get].
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	acct, err := h.AccountService.Get(ctx, id)
	if err != nil {
		writeMutationError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(acct))
}

// HandleUpdate rewrites an account's profile, optionally replacing the
// credential in the same update.
//
//	@Summary	Update an account (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts/{id} [put].
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req accountChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return
	}

	err := h.AccountService.UpdateProfile(ctx, id, domain.ProfilePatch{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Allow:     req.Allow,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusBadRequest, "Already registered by email")
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "Already registered by username")
		default:
			writeMutationError(w, log, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}

// HandleApprove activates a pending account so it may authenticate.
//
//	@Summary	Approve an account (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts/{id}/approve [post].
func (h *AccountsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.Approve(ctx, id); err != nil {
		writeMutationError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}

// HandleDelete removes an account permanently.
//
//	@Summary	Delete an account (admin)
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Router		/v1/accounts/{id} [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.Delete(ctx, id); err != nil {
		writeMutationError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}

// accountID extracts and validates the {id} path value, writing the
// error response itself when the id is malformed.
func accountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Wrong request")
		return "", false
	}
	return id.String(), true
}

func writeMutationError(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.Is(err, service.ErrAccountNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	log.Error("account operation failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}
