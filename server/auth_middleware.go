package server

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyEmail stores the authenticated email
	ContextKeyEmail ContextKey = "email"
)

// RequireAuth is middleware that validates a Bearer session token and
// injects the user identity into the request context.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				s.writeError(w, errNoActiveSession())
				return
			}

			claims, err := s.tokens.Parse(raw)
			if err != nil {
				s.writeError(w, errNoActiveSession())
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, ContextKeyEmail, claims.Email)
			next(w, r.WithContext(ctx))
		}
	}
}

// bearerToken extracts the session token from the Authorization header, or
// from the "token" query parameter for clients that cannot set headers
// (browser WebSocket connections).
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// userID returns the authenticated user ID from the request context.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(ContextKeyUserID).(string)
	return id
}
