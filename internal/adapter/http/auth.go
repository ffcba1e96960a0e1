package httpadapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session roles. Sessions themselves are minted by the external auth
// collaborator; this service only verifies the cookie it is handed.
const (
	roleBusiness = "business"
	roleAdmin    = "admin"

	sessionCookie = "session"
)

type ctxKey int

const userIDKey ctxKey = iota

// sessionClaims is the JWT payload of the session cookie: standard claims
// plus the user's role. The subject carries the numeric user id.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// requireRole verifies the session cookie signature and role claim and
// stores the user id in the request context.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				h.writeError(w, http.StatusUnauthorized, "not_authenticated", nil)
				return
			}
			claims := &sessionClaims{}
			_, err = jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
				return []byte(h.auth.Secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				h.writeError(w, http.StatusUnauthorized, "invalid_session", err)
				return
			}
			if claims.Role != role {
				h.writeError(w, http.StatusForbidden, "forbidden", nil)
				return
			}
			uid, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				h.writeError(w, http.StatusUnauthorized, "invalid_session", err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, uid)))
		})
	}
}

// sessionUserID returns the authenticated user id stored by requireRole.
func sessionUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}
