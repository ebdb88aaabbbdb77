package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confprogram/internal/delivery/http/helpers"
)

// fakeTokenVerifier approves any token and returns a fixed user ID,
// or fails with err when set.
type fakeTokenVerifier struct {
	userID string
	err    error
}

func (f *fakeTokenVerifier) Verify(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		authHeader string
		verifier   *fakeTokenVerifier
		wantUserID string
		wantReason string
	}{
		{
			name:       "valid token reaches the handler",
			authHeader: "Bearer good-token",
			verifier:   &fakeTokenVerifier{userID: "user-42"},
			wantUserID: "user-42",
		},
		{
			name:       "missing header",
			authHeader: "",
			verifier:   &fakeTokenVerifier{userID: "user-42"},
			wantReason: "missing authorization header",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			verifier:   &fakeTokenVerifier{userID: "user-42"},
			wantReason: "invalid authorization format",
		},
		{
			name:       "empty token after prefix",
			authHeader: "Bearer   ",
			verifier:   &fakeTokenVerifier{userID: "user-42"},
			wantReason: "missing token",
		},
		{
			name:       "verifier rejects the token",
			authHeader: "Bearer expired-token",
			verifier:   &fakeTokenVerifier{err: errors.New("token is expired")},
			wantReason: "invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			var nextRan bool
			next := func(w http.ResponseWriter, r *http.Request) {
				nextRan = true
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "http://test/orgs", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			RequireAuth(tt.verifier, logger)(next)(rr, req)

			if tt.wantReason == "" {
				require.Equal(t, http.StatusOK, rr.Code)
				require.True(t, nextRan)
				assert.Equal(t, tt.wantUserID, gotUserID)
				return
			}
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			require.False(t, nextRan, "handler must not run on auth failure")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			assert.Equal(t, tt.wantReason, envelope.Error.Message)
		})
	}
}

func TestUserIDFromContext_absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://test/orgs", nil)
	id, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
	assert.Empty(t, id)
}
