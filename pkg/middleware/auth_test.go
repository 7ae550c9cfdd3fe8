package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carparts-store/internal/data/entity"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"
	"carparts-store/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) SetRole(ctx context.Context, email string, role entity.UserRole) error {
	return m.Called(ctx, email, role).Error(0)
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	return auth.NewTokenManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 2})
}

func okHandler(called *bool, gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if gotEmail != nil {
			email, _ := utils.GetEmailFromContext(r.Context())
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeaderIs401(t *testing.T) {
	called := false
	handler := middleware.Auth(newTokens(t), zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthBadFormatIs403(t *testing.T) {
	called := false
	handler := middleware.Auth(newTokens(t), zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthInvalidTokenIs403(t *testing.T) {
	called := false
	handler := middleware.Auth(newTokens(t), zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthExpiredTokenIs403(t *testing.T) {
	expired := auth.NewTokenManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: -1})
	token, err := expired.Issue("buyer@example.com")
	require.NoError(t, err)

	called := false
	handler := middleware.Auth(newTokens(t), zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthValidTokenPassesEmail(t *testing.T) {
	tokens := newTokens(t)
	token, err := tokens.Issue("buyer@example.com")
	require.NoError(t, err)

	called := false
	var gotEmail string
	handler := middleware.Auth(tokens, zap.NewNop())(okHandler(&called, &gotEmail))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "buyer@example.com", gotEmail)
}

func TestAdminWithoutIdentityIs401(t *testing.T) {
	repo := new(mockUserRepo)
	called := false
	handler := middleware.Admin(repo, zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminUnknownUserIs403(t *testing.T) {
	repo := new(mockUserRepo)
	// A token email with no stored user record is not an admin, and must
	// never be treated as a server fault.
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	called := false
	handler := middleware.Admin(repo, zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.SetEmailContext(req.Context(), "ghost@example.com"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
	repo.AssertExpectations(t)
}

func TestAdminCustomerIs403(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "buyer@example.com").Return(&entity.User{
		Email: "buyer@example.com",
		Role:  entity.RoleCustomer,
	}, nil)

	called := false
	handler := middleware.Admin(repo, zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.SetEmailContext(req.Context(), "buyer@example.com"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAdminAllowed(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "boss@example.com").Return(&entity.User{
		Email: "boss@example.com",
		Role:  entity.RoleAdmin,
	}, nil)

	called := false
	handler := middleware.Admin(repo, zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.SetEmailContext(req.Context(), "boss@example.com"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminRepoErrorIs500(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "boss@example.com").Return(nil, assert.AnError)

	called := false
	handler := middleware.Admin(repo, zap.NewNop())(okHandler(&called, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(utils.SetEmailContext(req.Context(), "boss@example.com"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}
