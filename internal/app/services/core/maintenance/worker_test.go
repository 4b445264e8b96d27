package maintenance

import (
	"context"
	"sync"
	"testing"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLocker struct {
	acquired bool
	unlocked bool
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return l.acquired, "token", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.unlocked = true
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type fakeTenantUsecase struct {
	tenantIDs  []string
	refreshErr map[string]error
	refreshed  []string
}

func (u *fakeTenantUsecase) RegisterTenant(ctx context.Context, request *requests.RegisterTenant) (*responses.RegisterTenant, error) {
	return nil, nil
}

func (u *fakeTenantUsecase) GetTenantByID(ctx context.Context, tenantID string) (*responses.Tenant, error) {
	return nil, nil
}

func (u *fakeTenantUsecase) UpdateTenant(ctx context.Context, tenantID string, request *requests.UpdateTenant) (*responses.Tenant, error) {
	return nil, nil
}

func (u *fakeTenantUsecase) RefreshSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error) {
	u.refreshed = append(u.refreshed, tenantID)
	if err := u.refreshErr[tenantID]; err != nil {
		return nil, err
	}
	return &responses.SubscriptionStatus{Status: "active"}, nil
}

func (u *fakeTenantUsecase) FindAllTenantIDs(ctx context.Context) ([]string, error) {
	return u.tenantIDs, nil
}

type spyCoordinator struct {
	mu         sync.Mutex
	recomputed []string
	failFor    map[string]error
}

func (c *spyCoordinator) Schedule(tenantID, subjectID string, delay time.Duration) error { return nil }

func (c *spyCoordinator) RecomputeAllForTenant(ctx context.Context, tenantID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recomputed = append(c.recomputed, tenantID)
	return c.failFor[tenantID]
}

func (c *spyCoordinator) PendingCount() int { return 0 }
func (c *spyCoordinator) Shutdown()         {}

func newTestWorker(locker *fakeLocker, tenants *fakeTenantUsecase, coordinator *spyCoordinator) *Worker {
	cfg := &config.InternalConfig{}
	cfg.App.MaintenanceCronSpec = "@daily"
	return NewWorker(zap.NewNop(), cfg, locker, tenants, coordinator)
}

func TestRunOnce_RecomputesAndRefreshesEveryTenant(t *testing.T) {
	tenants := &fakeTenantUsecase{tenantIDs: []string{"tenant-1", "tenant-2", "tenant-3"}}
	coordinator := &spyCoordinator{}
	locker := &fakeLocker{acquired: true}
	worker := newTestWorker(locker, tenants, coordinator)

	worker.runOnce(context.Background())

	assert.Equal(t, []string{"tenant-1", "tenant-2", "tenant-3"}, coordinator.recomputed)
	assert.Equal(t, []string{"tenant-1", "tenant-2", "tenant-3"}, tenants.refreshed)
	assert.True(t, locker.unlocked)
}

func TestRunOnce_SkipsWhenAnotherLeaderHoldsLock(t *testing.T) {
	tenants := &fakeTenantUsecase{tenantIDs: []string{"tenant-1"}}
	coordinator := &spyCoordinator{}
	worker := newTestWorker(&fakeLocker{acquired: false}, tenants, coordinator)

	worker.runOnce(context.Background())

	assert.Empty(t, coordinator.recomputed)
	assert.Empty(t, tenants.refreshed)
}

func TestRunOnce_OneBrokenTenantDoesNotStopTheRest(t *testing.T) {
	tenants := &fakeTenantUsecase{
		tenantIDs:  []string{"tenant-1", "tenant-2"},
		refreshErr: map[string]error{"tenant-1": assert.AnError},
	}
	coordinator := &spyCoordinator{failFor: map[string]error{"tenant-1": assert.AnError}}
	worker := newTestWorker(&fakeLocker{acquired: true}, tenants, coordinator)

	worker.runOnce(context.Background())

	assert.Equal(t, []string{"tenant-1", "tenant-2"}, coordinator.recomputed)
	assert.Equal(t, []string{"tenant-1", "tenant-2"}, tenants.refreshed)
}
