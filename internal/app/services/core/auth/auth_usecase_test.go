package auth

import (
	"context"
	"testing"
	"time"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTenantRepo struct {
	tenant *models.Tenant
}

func (r *fakeTenantRepo) CreateTenant(ctx context.Context, tenant *models.Tenant) (string, error) {
	return "", nil
}

func (r *fakeTenantRepo) FindByID(ctx context.Context, tenantID string) (*models.Tenant, error) {
	return nil, nil
}

func (r *fakeTenantRepo) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if r.tenant != nil && r.tenant.Slug == slug {
		copied := *r.tenant
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeTenantRepo) FindAll(ctx context.Context, page, pageSize int) ([]models.Tenant, int, error) {
	return nil, 0, nil
}

func (r *fakeTenantRepo) UpdateTenant(ctx context.Context, tenant *models.Tenant) error { return nil }

func (r *fakeTenantRepo) UpdateSubscriptionStatus(ctx context.Context, tenantID, status string) error {
	return nil
}

func (r *fakeTenantRepo) DeleteByID(ctx context.Context, tenantID string) error { return nil }

type fakeUserRepo struct {
	user *models.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, tenantID, userID string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	if r.user != nil && r.user.TenantID == tenantID && r.user.Email == email {
		copied := *r.user
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) CountActiveByTenant(ctx context.Context, tenantID string) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) DeleteByID(ctx context.Context, tenantID, userID string) error { return nil }

type fakeRedisRepo struct {
	store map[string]string
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{store: make(map[string]string)}
}

func (r *fakeRedisRepo) Delete(ctx context.Context, key string) error {
	delete(r.store, key)
	return nil
}

func (r *fakeRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.store[key] = string(data)
	return nil
}

func (r *fakeRedisRepo) Get(ctx context.Context, key string) (string, error) {
	return r.store[key], nil
}

func (r *fakeRedisRepo) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 0, nil
}

func (r *fakeRedisRepo) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

const testJWTSecret = "test-secret"

func newLoginFixture(t *testing.T) (*fakeRedisRepo, *authUsecase) {
	t.Helper()

	hashed, err := utils.HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	tenantRepo := &fakeTenantRepo{tenant: &models.Tenant{ID: "tenant-1", Slug: "sunrise-dental"}}
	userRepo := &fakeUserRepo{user: &models.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		Email:    "dewi@sunrise.test",
		Password: hashed,
		Role:     "admin",
		Active:   true,
	}}
	redisRepo := newFakeRedisRepo()

	uc := NewAuthUsecase(userRepo, tenantRepo, redisRepo, testJWTSecret, 24, time.Hour, zap.NewNop())
	return redisRepo, uc.(*authUsecase)
}

func TestLoginUser_ReturnsTokenBackedByRedisSession(t *testing.T) {
	redisRepo, uc := newLoginFixture(t)

	response, err := uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "sunrise-dental",
		Email:      "dewi@sunrise.test",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)

	sessionID, err := utils.ParseSessionJWT(response.Token, testJWTSecret)
	require.NoError(t, err)

	sessionData, err := uc.ResolveSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sessionData.UserID)
	assert.Equal(t, "tenant-1", sessionData.TenantID)
	assert.Equal(t, "admin", sessionData.Role)

	assert.Len(t, redisRepo.store, 1)
}

func TestLoginUser_WrongPasswordRejected(t *testing.T) {
	_, uc := newLoginFixture(t)

	_, err := uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "sunrise-dental",
		Email:      "dewi@sunrise.test",
		Password:   "not-the-password",
	})
	require.Error(t, err)
}

func TestLoginUser_UnknownSlugLooksLikeBadCredentials(t *testing.T) {
	_, uc := newLoginFixture(t)

	_, badSlugErr := uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "other-clinic",
		Email:      "dewi@sunrise.test",
		Password:   "Sup3rSecret!",
	})
	require.Error(t, badSlugErr)

	_, badPassErr := uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "sunrise-dental",
		Email:      "dewi@sunrise.test",
		Password:   "not-the-password",
	})
	require.Error(t, badPassErr)

	// Identical client-facing message keeps slugs unguessable.
	var slugErr, passErr *exceptions.CustomError
	require.ErrorAs(t, badSlugErr, &slugErr)
	require.ErrorAs(t, badPassErr, &passErr)
	assert.Equal(t, passErr.ClientMessage, slugErr.ClientMessage)
	assert.Equal(t, passErr.StatusCode, slugErr.StatusCode)
}

func TestLoginUser_InactiveUserRejected(t *testing.T) {
	hashed, err := utils.HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	uc := NewAuthUsecase(
		&fakeUserRepo{user: &models.User{
			ID:       "user-1",
			TenantID: "tenant-1",
			Email:    "dewi@sunrise.test",
			Password: hashed,
			Active:   false,
		}},
		&fakeTenantRepo{tenant: &models.Tenant{ID: "tenant-1", Slug: "sunrise-dental"}},
		newFakeRedisRepo(),
		testJWTSecret,
		24,
		time.Hour,
		zap.NewNop(),
	)

	_, err = uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "sunrise-dental",
		Email:      "dewi@sunrise.test",
		Password:   "Sup3rSecret!",
	})
	require.Error(t, err)
}

func TestLogoutUser_InvalidatesSession(t *testing.T) {
	_, uc := newLoginFixture(t)

	response, err := uc.LoginUser(context.Background(), &requests.LoginUser{
		TenantSlug: "sunrise-dental",
		Email:      "dewi@sunrise.test",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(response.Token, testJWTSecret)
	require.NoError(t, err)

	require.NoError(t, uc.LogoutUser(context.Background(), sessionID))

	_, err = uc.ResolveSession(context.Background(), sessionID)
	require.Error(t, err)
}
