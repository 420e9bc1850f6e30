package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hksalaudeen/bookman/internal/service"
	"github.com/hksalaudeen/bookman/internal/store"
	"github.com/hksalaudeen/bookman/internal/utils"
	"github.com/hksalaudeen/bookman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolvingAuthService returns a mock that accepts any token and resolves it
// to the given user id.
func resolvingAuthService(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
		resolveUserFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{UserID: id}, nil
		},
	}
}

// runAuth sends a request with the given Authorization header through the
// auth middleware and reports the recorded response plus the user id the
// downstream handler observed (zero if it never ran).
func runAuth(t *testing.T, auth service.AuthService, header string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var seenUserID int64
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		seenUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/books", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	if !nextCalled {
		return rec, 0, false
	}
	return rec, seenUserID, true
}

// TestAuth_ValidToken verifies the happy path: the token is parsed, its
// subject resolved, and the user id attached to the request context.
func TestAuth_ValidToken(t *testing.T) {
	rec, seenUserID, nextCalled := runAuth(t, resolvingAuthService(42), "Bearer some.jwt.token")

	require.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), seenUserID)
}

// TestAuth_MissingHeader verifies that an absent Authorization header is
// rejected with 401 before any token parsing.
func TestAuth_MissingHeader(t *testing.T) {
	rec, _, nextCalled := runAuth(t, &mockAuthService{}, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuth_MalformedHeader verifies that headers without a proper
// `Bearer <token>` shape are rejected with 401.
func TestAuth_MalformedHeader(t *testing.T) {
	headers := []struct {
		name   string
		header string
	}{
		{"no scheme", "some.jwt.token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"extra parts", "Bearer one two"},
	}

	for _, tc := range headers {
		t.Run(tc.name, func(t *testing.T) {
			rec, _, nextCalled := runAuth(t, &mockAuthService{}, tc.header)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestAuth_InvalidToken verifies that a token rejected by the verifier maps
// to 401 with no detail.
func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	rec, _, nextCalled := runAuth(t, auth, "Bearer tampered.jwt.token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuth_UnresolvedSubject verifies that a valid token whose subject no
// longer exists in storage is rejected with 401 rather than proceeding with
// an undefined user.
func TestAuth_UnresolvedSubject(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
		resolveUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	rec, _, nextCalled := runAuth(t, auth, "Bearer valid.but.orphaned")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer token more", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
