package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hksalaudeen/bookman/internal/config"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/store"
	"github.com/hksalaudeen/bookman/internal/utils"
	"github.com/hksalaudeen/bookman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "bookman-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "Ada",
		Email: "ada@example.com",
	}, "correct horse battery staple")
	require.NoError(t, err)

	assert.Equal(t, int64(7), registered.UserID)
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "correct horse battery staple", persisted.PasswordHash)

	match, err := utils.VerifyPassword("correct horse battery staple", persisted.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	cases := []struct {
		name     string
		user     models.User
		password string
	}{
		{"empty name", models.User{Email: "a@b.c"}, "secret"},
		{"empty email", models.User{Name: "Ada"}, "secret"},
		{"empty password", models.User{Name: "Ada", Email: "a@b.c"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tc.user, tc.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "Ada",
		Email: "taken@example.com",
	}, "secret")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	digest, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestAuthService_Login_StoreFailure verifies that a repository failure that
// is not a missing user keeps its storage identity instead of masquerading
// as a credentials rejection, so the transport layer renders it as an
// internal error.
func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery)
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ada@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	digest, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "ada@example.com", "not the password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	digest, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	known := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, PasswordHash: digest}, nil
		},
	}
	unknown := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	_, errWrongPassword := newTestAuthService(known).Login(context.Background(), "ada@example.com", "wrong")
	_, errUnknownEmail := newTestAuthService(unknown).Login(context.Background(), "nobody@example.com", "wrong")

	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tc.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	otherCfg := config.App{
		TokenSignKey:  "a completely different key",
		TokenIssuer:   "bookman-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
	other := NewAuthService(&mockUserRepository{}, otherCfg, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolveUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "ada@example.com"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.ResolveUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestAuthService_ResolveUser_Deleted(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.ResolveUser(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_RegisterUser_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, repoErr
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "Ada",
		Email: "ada@example.com",
	}, "secret")
	assert.ErrorIs(t, err, repoErr)
}
