package users

import (
	"context"
	"testing"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.seq++
	id := "user-" + user.Email
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, tenantID, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok || user.TenantID != tenantID {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.TenantID == tenantID && user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) CountActiveByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.TenantID == tenantID && user.Active {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) DeleteByID(ctx context.Context, tenantID, userID string) error {
	delete(r.users, userID)
	return nil
}

type fakeUsageUsecase struct {
	limitErr error
}

func (u *fakeUsageUsecase) GetTenantUsage(ctx context.Context, tenantID string) (*responses.TenantUsage, error) {
	return nil, nil
}

func (u *fakeUsageUsecase) EnsureWithinPlanLimits(ctx context.Context, tenantID, resource string) error {
	return u.limitErr
}

func TestCreateUser_StoresHashedPasswordAndActivates(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo, &fakeUsageUsecase{}, zap.NewNop())

	response, err := uc.CreateUser(context.Background(), "tenant-1", &requests.CreateUser{
		FullName: "Dewi Anggraini",
		Email:    "dewi@clinic.test",
		Password: "Sup3rSecret!",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.True(t, response.Active)

	stored := repo.users[response.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Sup3rSecret!", stored.Password)
	assert.True(t, utils.CheckPasswordHash("Sup3rSecret!", stored.Password))
}

func TestCreateUser_DuplicateEmailInTenantRejected(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo, &fakeUsageUsecase{}, zap.NewNop())

	_, err := uc.CreateUser(context.Background(), "tenant-1", &requests.CreateUser{
		FullName: "Dewi Anggraini",
		Email:    "dewi@clinic.test",
		Password: "Sup3rSecret!",
		Role:     "staff",
	})
	require.NoError(t, err)

	_, err = uc.CreateUser(context.Background(), "tenant-1", &requests.CreateUser{
		FullName: "Other Person",
		Email:    "dewi@clinic.test",
		Password: "An0therSecret!",
		Role:     "staff",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 400, customErr.StatusCode)
}

func TestCreateUser_RejectedWhenPlanLimitReached(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo, &fakeUsageUsecase{limitErr: exceptions.ErrPlanLimitReached(assert.AnError)}, zap.NewNop())

	_, err := uc.CreateUser(context.Background(), "tenant-1", &requests.CreateUser{
		FullName: "Dewi Anggraini",
		Email:    "dewi@clinic.test",
		Password: "Sup3rSecret!",
		Role:     "staff",
	})
	require.Error(t, err)
	assert.Empty(t, repo.users, "no write when quota is exceeded")
}

func TestUpdateUser_DeactivationReleasesSeat(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo, &fakeUsageUsecase{}, zap.NewNop())

	created, err := uc.CreateUser(context.Background(), "tenant-1", &requests.CreateUser{
		FullName: "Dewi Anggraini",
		Email:    "dewi@clinic.test",
		Password: "Sup3rSecret!",
		Role:     "staff",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := uc.UpdateUser(context.Background(), "tenant-1", created.ID, &requests.UpdateUser{
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	seats, err := repo.CountActiveByTenant(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Zero(t, seats)
}
