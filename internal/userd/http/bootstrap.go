package http

import (
	"net/http"

	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP seeds the super-admin account. Idempotent: calling it when
// the account already exists is an acknowledged no-op, so deployment
// scripts can run it unconditionally.
//
//	@Summary	Seed the super-admin account
//	@Tags		System
//	@Produce	json
//	@Router		/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	created, err := h.BootstrapService.Bootstrap(ctx)
	if err != nil {
		log.Error("bootstrap failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !created {
		httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "User already registered"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Message: "Success"})
}
