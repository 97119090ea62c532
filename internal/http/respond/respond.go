// Package respond writes JSON bodies and maps service errors to responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/hongminglow/jobtracker-be/internal/apperr"
	"github.com/hongminglow/jobtracker-be/internal/logging"
)

// Message is the body of every error response.
type Message struct {
	Msg string `json:"msg"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Msg writes {"msg": msg} with the given status.
func Msg(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Msg: msg})
}

// Error maps err to a status and client-safe message. Internal errors are
// logged with their cause and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	Msg(w, status, apperr.Message(err))
}

// Decode reads a JSON body into dst. Malformed bodies become Validation errors.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.New(apperr.Validation, "Invalid request body")
	}
	return nil
}
