package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
	"github.com/studentdesk/studentdesk-go/internal/crypto"
)

type contextKey string

const loginKey contextKey = "login"

// TokenValidator parses and verifies bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*crypto.Claims, error)
}

// JWTAuth returns middleware that validates a Bearer token from the Authorization header.
func JWTAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				apperror.Write(w, apperror.Unauthorized.Payload())
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				apperror.Write(w, apperror.Unauthorized.Payload())
				return
			}

			ctx := context.WithValue(r.Context(), loginKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginFromContext extracts the authenticated login (the token subject).
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey).(string)
	return login, ok
}
