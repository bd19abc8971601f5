package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizen-center/backend/internal/domain/users"
)

type fakeUsers struct {
	byEmail map[string]*users.User
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*users.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, users.ErrNotFound
}

func newAuthService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	repo := &fakeUsers{byEmail: map[string]*users.User{
		"admin@example.com": {
			ID:           "u1",
			Email:        "admin@example.com",
			PasswordHash: hash,
			Role:         users.RoleAdmin,
		},
	}}
	return NewService(repo, []byte("test-secret"), time.Hour, nil)
}

func TestLoginAndParse(t *testing.T) {
	svc := newAuthService(t)

	token, user, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	require.NotEmpty(t, token)

	sess, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "admin@example.com", sess.Email)
	assert.Equal(t, users.RoleAdmin, sess.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseGarbage(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	svc := newAuthService(t)
	svc.TTL = -2 * time.Hour // issue tokens already expired

	token, _, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	svc := newAuthService(t)
	token, _, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)

	other := NewService(&fakeUsers{}, []byte("another-secret"), time.Hour, nil)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
