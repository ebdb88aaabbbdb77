package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

type userIDKeyType struct{}

var userIDKey userIDKeyType

// SetUserID stores the authenticated user ID on the context.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// bearerToken extracts the token from an Authorization header. The
// returned reason is a client-safe message for the 401 body.
func bearerToken(r *http.Request) (token, reason string) {
	header := r.Header.Get("Authorization")
	switch {
	case header == "":
		return "", "missing authorization header"
	case !strings.HasPrefix(header, "Bearer "):
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth wraps a handler with Bearer token verification. On
// success the user ID is placed on the request context; on failure the
// wrapped handler never runs and the client gets a 401 envelope.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, reason := bearerToken(r)
			if reason != "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, reason)
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}
