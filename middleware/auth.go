package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"go-storefront/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// SessionChecker tells whether a panel session is still open
type SessionChecker interface {
	Active(ctx context.Context, sessionID string) (bool, error)
}

// ClaimsFrom returns the claims AuthMiddleware attached to the request
func ClaimsFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// AuthMiddleware verifies JWT tokens and attaches the claims to the context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseJWT(parts[1])
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware ensures the token belongs to an admin whose session was not closed.
// It must run after AuthMiddleware.
func AdminMiddleware(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r)
			if !ok || claims.Role != utils.RoleAdmin {
				http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
				return
			}

			active, err := sessions.Active(r.Context(), claims.Id)
			if err != nil {
				zap.S().Errorf("Error checking admin session: %v", err)
				http.Error(w, "Error checking session", http.StatusInternalServerError)
				return
			}
			if !active {
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
