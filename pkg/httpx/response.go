package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error envelope. Only a coarse cause string
// reaches the client, never internal detail.
type ErrorBody struct {
	Cause string `json:"cause"`
}

// WriteJSON writes a JSON response with the given status code. Responses
// carry credentials or account data, so caching is disabled across the
// board.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the error envelope with the given status and cause.
func WriteError(w http.ResponseWriter, code int, cause string) {
	WriteJSON(w, code, ErrorBody{Cause: cause})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
