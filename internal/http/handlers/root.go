package handlers

import (
	"net/http"

	"github.com/hongminglow/jobtracker-be/internal/http/respond"
)

// RegisterRoot attaches the welcome route and the JSON fallback for
// unmatched paths.
func RegisterRoot(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1", func(w http.ResponseWriter, _ *http.Request) {
		respond.Msg(w, http.StatusOK, "welcome")
	})
	mux.HandleFunc("/", NotFound)
}

// NotFound answers any route the mux does not know.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	respond.Msg(w, http.StatusNotFound, "Route does not exist")
}
