package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"confprogram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + "|" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+"|"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "ada@example.com", password: "correct-horse"},
		{name: "invalid email", email: "not-an-email", password: "correct-horse", wantErr: domain.ErrInvalidInput},
		{name: "short password", email: "ada@example.com", password: "short", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newFakeUserRepo(), fakeHasher{}, fakeIssuer{}, time.Hour, testTimeout)
			user, err := svc.SignUp(ctx, tt.email, tt.password, "Ada", "Lovelace")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "ada@example.com", user.Email)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, fakeHasher{}, fakeIssuer{}, time.Hour, testTimeout)
		_, err := svc.SignUp(ctx, "ada@example.com", "correct-horse", "Ada", "Lovelace")
		require.NoError(t, err)
		_, err = svc.SignUp(ctx, "ada@example.com", "correct-horse", "Ada", "Lovelace")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeHasher{}, fakeIssuer{}, time.Hour, testTimeout)

	user, err := svc.SignUp(ctx, "ada@example.com", "correct-horse", "Ada", "Lovelace")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, got, err := svc.Login(ctx, "Ada@Example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "token-"+user.ID, token)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ada@example.com", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
