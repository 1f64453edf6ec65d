package middleware

import (
	"context"
	"net/http"

	"github.com/routeburn/product-flow/internal/services"
)

// SessionCookie is the cookie carrying the signed studio session token.
const SessionCookie = "studio_session"

type sessionKeyType string

const sessionKey sessionKeyType = "studio_session"

// Session validates the studio_session cookie using the provided HMAC
// secret and adds the decoded session to context. A missing, expired, or
// tampered cookie means the caller is logged out and gets 401.
func Session(hmacSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			sess, err := services.ParseSession(c.Value, hmacSecret)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the decoded session from context, or nil outside the
// session-gated routes.
func GetSession(ctx context.Context) *services.Session {
	if v := ctx.Value(sessionKey); v != nil {
		if s, ok := v.(*services.Session); ok {
			return s
		}
	}
	return nil
}
