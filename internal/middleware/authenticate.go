package middleware

import (
	"net/http"
	"strings"

	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/http/respond"
)

const authInvalidMsg = "Authentication invalid"

// TokenVerifier validates a bearer token and returns its identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate rejects requests without a valid bearer token and attaches the
// verified identity to the request context.
func Authenticate(tokens TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			respond.Msg(w, http.StatusUnauthorized, authInvalidMsg)
			return
		}
		id, err := tokens.Verify(token)
		if err != nil {
			respond.Msg(w, http.StatusUnauthorized, authInvalidMsg)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
