package authService

import (
	"context"
	"testing"

	auth "DigitalLab/internal/api/auth"
	authRepository "DigitalLab/internal/api/auth/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/bcrypt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminStore struct {
	admins map[string]entity.Admin
}

func (f *fakeAdminStore) GetAdminByEmail(_ context.Context, email string) (entity.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return entity.Admin{}, auth.ErrInvalidCredentials
	}
	return admin, nil
}

type fakeAuthRepo struct {
	store *fakeAdminStore
}

func (f *fakeAuthRepo) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Admins:   f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestAuthService(t *testing.T, password string) IAuthService {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	bcryptUtils := bcrypt.New()
	hash, err := bcryptUtils.HashPassword(password)
	require.NoError(t, err)

	store := &fakeAdminStore{admins: map[string]entity.Admin{
		"admin@example.com": {
			ID:           "a1",
			Email:        "admin@example.com",
			PasswordHash: hash,
		},
	}}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewAuthService(logger, &fakeAuthRepo{store: store}, bcryptUtils)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse-battery")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse-battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse-battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
