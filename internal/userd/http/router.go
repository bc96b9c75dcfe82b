package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sablevale/userd/internal/userd/policy"
	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/pkg/httpx"
	"github.com/sablevale/userd/pkg/slogx"
	"github.com/sablevale/userd/pkg/tokenx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        tokenx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	LoginService        *service.LoginService
	RegistrationService *service.RegistrationService
	AccountService      *service.AccountService
	BootstrapService    *service.BootstrapService
}

func NewRouter(codec tokenx.Codec, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware
// chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Credential endpoints are the brute-force surface; all of them sit
	// behind the strict per-IP limit.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{LoginService: r.LoginService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(&SignupHandler{RegistrationService: r.RegistrationService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Pre-authentication recovery flow: deliberately unauthenticated.
	r.Mux.Handle("POST /v1/auth/password-reset",
		httpx.Chain(&PasswordResetHandler{AccountService: r.AccountService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{
		AccountService:      r.AccountService,
		RegistrationService: r.RegistrationService,
	}

	// One chain per administrative action; every role decision goes
	// through the policy table so the allow-lists cannot drift.
	secure := func(handler http.HandlerFunc, action policy.Action) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.codec),
			httpx.RequirePermission(policy.Can(action)),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /v1/accounts", secure(h.HandleCreate, policy.ActionAccountCreate))
	r.Mux.Handle("GET /v1/accounts", secure(h.HandleList, policy.ActionAccountList))
	r.Mux.Handle("GET /v1/accounts/{id}", secure(h.HandleGet, policy.ActionAccountGet))
	r.Mux.Handle("PUT /v1/accounts/{id}", secure(h.HandleUpdate, policy.ActionAccountUpdate))
	r.Mux.Handle("POST /v1/accounts/{id}/approve", secure(h.HandleApprove, policy.ActionAccountApprove))
	r.Mux.Handle("DELETE /v1/accounts/{id}", secure(h.HandleDelete, policy.ActionAccountDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(&BootstrapHandler{BootstrapService: r.BootstrapService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
