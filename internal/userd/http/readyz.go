package http

import (
	"net/http"
	"time"

	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/pkg/httpx"
)

// ReadyzHandler reports readiness: the process is up and the store
// answers a ping.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "store unavailable",
				Version: version,
				Uptime:  time.Since(startTime).Truncate(time.Second).String(),
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).Truncate(time.Second).String(),
		})
	})
}
