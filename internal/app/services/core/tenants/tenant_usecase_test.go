package tenants

import (
	"context"
	"fmt"
	"testing"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTenantRepo struct {
	tenants       map[string]*models.Tenant
	seq           int
	statusUpdates map[string]string
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:       make(map[string]*models.Tenant),
		statusUpdates: make(map[string]string),
	}
}

func (r *fakeTenantRepo) CreateTenant(ctx context.Context, tenant *models.Tenant) (string, error) {
	r.seq++
	id := fmt.Sprintf("tenant-%d", r.seq)
	stored := *tenant
	stored.ID = id
	r.tenants[id] = &stored
	return id, nil
}

func (r *fakeTenantRepo) FindByID(ctx context.Context, tenantID string) (*models.Tenant, error) {
	tenant, ok := r.tenants[tenantID]
	if !ok {
		return nil, nil
	}
	copied := *tenant
	return &copied, nil
}

func (r *fakeTenantRepo) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	for _, tenant := range r.tenants {
		if tenant.Slug == slug {
			copied := *tenant
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) FindAll(ctx context.Context, page, pageSize int) ([]models.Tenant, int, error) {
	all := make([]models.Tenant, 0, len(r.tenants))
	for i := 1; i <= r.seq; i++ {
		if tenant, ok := r.tenants[fmt.Sprintf("tenant-%d", i)]; ok {
			all = append(all, *tenant)
		}
	}
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, len(all), nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (r *fakeTenantRepo) UpdateTenant(ctx context.Context, tenant *models.Tenant) error {
	stored := *tenant
	r.tenants[tenant.ID] = &stored
	return nil
}

func (r *fakeTenantRepo) UpdateSubscriptionStatus(ctx context.Context, tenantID, status string) error {
	r.statusUpdates[tenantID] = status
	if tenant, ok := r.tenants[tenantID]; ok {
		tenant.SubscriptionStatus = status
	}
	return nil
}

func (r *fakeTenantRepo) DeleteByID(ctx context.Context, tenantID string) error {
	delete(r.tenants, tenantID)
	return nil
}

type fakeUserRepo struct {
	users     []*models.User
	createErr error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	r.users = append(r.users, &stored)
	return stored.ID, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, tenantID, userID string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) CountActiveByTenant(ctx context.Context, tenantID string) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) DeleteByID(ctx context.Context, tenantID, userID string) error { return nil }

type spyMailer struct {
	sent    []*requests.EmailPayload
	sendErr error
}

func (m *spyMailer) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, request)
	return nil
}

func (m *spyMailer) ValidateEmail(email string) bool { return true }

type stubPaymentGateway struct {
	status *responses.SubscriptionStatus
	err    error
}

func (g *stubPaymentGateway) GetSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error) {
	return g.status, g.err
}

func registerRequest() *requests.RegisterTenant {
	return &requests.RegisterTenant{
		ClinicName:     "Sunrise Dental",
		Slug:           "sunrise-dental",
		AdminFullName:  "Dewi Anggraini",
		AdminEmail:     "dewi@sunrise.test",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
	}
}

func TestRegisterTenant_CreatesClinicWithAdminUser(t *testing.T) {
	tenantRepo := newFakeTenantRepo()
	userRepo := &fakeUserRepo{}
	mailer := &spyMailer{}
	uc := NewTenantUsecase(tenantRepo, userRepo, mailer, &stubPaymentGateway{}, "noreply@dentora.test", zap.NewNop())

	response, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "sunrise-dental", response.Slug)

	tenant := tenantRepo.tenants[response.TenantID]
	require.NotNil(t, tenant)
	assert.Equal(t, "starter", tenant.Plan.Name, "unspecified plan falls back to starter")
	assert.Equal(t, constvars.SubscriptionStatusTrialing, tenant.SubscriptionStatus)

	require.Len(t, userRepo.users, 1)
	admin := userRepo.users[0]
	assert.Equal(t, response.TenantID, admin.TenantID)
	assert.Equal(t, constvars.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"dewi@sunrise.test"}, mailer.sent[0].To)
}

func TestRegisterTenant_SlugTakenRejected(t *testing.T) {
	tenantRepo := newFakeTenantRepo()
	uc := NewTenantUsecase(tenantRepo, &fakeUserRepo{}, &spyMailer{}, &stubPaymentGateway{}, "noreply@dentora.test", zap.NewNop())

	_, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterTenant(context.Background(), registerRequest())
	require.Error(t, err)
	assert.Len(t, tenantRepo.tenants, 1)
}

func TestRegisterTenant_SucceedsWhenWelcomeEmailFails(t *testing.T) {
	uc := NewTenantUsecase(newFakeTenantRepo(), &fakeUserRepo{}, &spyMailer{sendErr: assert.AnError}, &stubPaymentGateway{}, "noreply@dentora.test", zap.NewNop())

	response, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, response.TenantID)
}

func TestRegisterTenant_RollsBackTenantWhenAdminUserCreationFails(t *testing.T) {
	tenantRepo := newFakeTenantRepo()
	userRepo := &fakeUserRepo{createErr: assert.AnError}
	mailer := &spyMailer{}
	uc := NewTenantUsecase(tenantRepo, userRepo, mailer, &stubPaymentGateway{}, "noreply@dentora.test", zap.NewNop())

	_, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.Error(t, err)

	// No orphan tenant holding the slug, so the same registration works once
	// the user store recovers.
	assert.Empty(t, tenantRepo.tenants)
	assert.Empty(t, mailer.sent)

	userRepo.createErr = nil
	response, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "sunrise-dental", response.Slug)
}

func TestRefreshSubscriptionStatus_PersistsChangedStatus(t *testing.T) {
	tenantRepo := newFakeTenantRepo()
	gateway := &stubPaymentGateway{status: &responses.SubscriptionStatus{Status: constvars.SubscriptionStatusActive, Provider: "stripe"}}
	uc := NewTenantUsecase(tenantRepo, &fakeUserRepo{}, &spyMailer{}, gateway, "noreply@dentora.test", zap.NewNop())

	registered, err := uc.RegisterTenant(context.Background(), registerRequest())
	require.NoError(t, err)

	status, err := uc.RefreshSubscriptionStatus(context.Background(), registered.TenantID)
	require.NoError(t, err)
	assert.Equal(t, constvars.SubscriptionStatusActive, status.Status)
	assert.Equal(t, constvars.SubscriptionStatusActive, tenantRepo.statusUpdates[registered.TenantID])
}

func TestFindAllTenantIDs_PagesThroughEveryTenant(t *testing.T) {
	tenantRepo := newFakeTenantRepo()
	uc := NewTenantUsecase(tenantRepo, &fakeUserRepo{}, &spyMailer{}, &stubPaymentGateway{}, "noreply@dentora.test", zap.NewNop())

	for i := 0; i < 205; i++ {
		_, err := tenantRepo.CreateTenant(context.Background(), &models.Tenant{
			ClinicName: fmt.Sprintf("Clinic %d", i),
			Slug:       fmt.Sprintf("clinic-%d", i),
		})
		require.NoError(t, err)
	}

	tenantIDs, err := uc.FindAllTenantIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, tenantIDs, 205)
}
