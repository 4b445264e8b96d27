package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTenantRepo struct {
	tenant *models.Tenant
	err    error
}

func (r *fakeTenantRepo) CreateTenant(ctx context.Context, tenant *models.Tenant) (string, error) {
	return "", nil
}
func (r *fakeTenantRepo) FindByID(ctx context.Context, tenantID string) (*models.Tenant, error) {
	return r.tenant, r.err
}
func (r *fakeTenantRepo) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
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
	contracts.UserRepository
	activeCount  int64
	perTenant    map[string]int64
	err          error
	lastTenantID string
}

func (r *fakeUserRepo) CountActiveByTenant(ctx context.Context, tenantID string) (int64, error) {
	r.lastTenantID = tenantID
	if r.perTenant != nil {
		return r.perTenant[tenantID], r.err
	}
	return r.activeCount, r.err
}

type fakePatientRepo struct {
	contracts.PatientRepository
	count        int64
	perTenant    map[string]int64
	err          error
	lastTenantID string
}

func (r *fakePatientRepo) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	r.lastTenantID = tenantID
	if r.perTenant != nil {
		return r.perTenant[tenantID], r.err
	}
	return r.count, r.err
}

type fakeAppointmentRepo struct {
	contracts.AppointmentRepository
	count        int64
	perTenant    map[string]int64
	err          error
	lastTenantID string
	lastSince    time.Time
}

func (r *fakeAppointmentRepo) CountCreatedSince(ctx context.Context, tenantID string, since time.Time) (int64, error) {
	r.lastTenantID = tenantID
	r.lastSince = since
	if r.perTenant != nil {
		return r.perTenant[tenantID], r.err
	}
	return r.count, r.err
}

func newTestUsecase(tenants *fakeTenantRepo, users *fakeUserRepo, patients *fakePatientRepo, appointments *fakeAppointmentRepo, clock contracts.Clock) contracts.UsageUsecase {
	return NewUsageUsecase(tenants, users, patients, appointments, clock, zap.NewNop())
}

func TestGetTenantUsage_FullSnapshotShape(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)}
	appointments := &fakeAppointmentRepo{count: 12}
	uc := newTestUsecase(
		&fakeTenantRepo{},
		&fakeUserRepo{activeCount: 4},
		&fakePatientRepo{count: 150},
		appointments,
		clock,
	)

	snapshot, err := uc.GetTenantUsage(context.Background(), "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, 4, snapshot.ActiveUsers)
	assert.Equal(t, 150, snapshot.PatientCount)
	assert.Equal(t, 12, snapshot.AppointmentsThisMonth)
	assert.Equal(t, 0.0, snapshot.StorageUsedGb)
	assert.Equal(t, 0, snapshot.ApiCallsThisMonth)

	// Appointment counting starts at midnight UTC on the first of the month.
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), appointments.lastSince)
}

func TestGetTenantUsage_CountsOnlyTheRequestedTenant(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)}
	users := &fakeUserRepo{perTenant: map[string]int64{"tenant-1": 4, "tenant-2": 9}}
	patients := &fakePatientRepo{perTenant: map[string]int64{"tenant-1": 150, "tenant-2": 7}}
	appointments := &fakeAppointmentRepo{perTenant: map[string]int64{"tenant-1": 12, "tenant-2": 2}}
	uc := newTestUsecase(&fakeTenantRepo{}, users, patients, appointments, clock)

	first, err := uc.GetTenantUsage(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 4, first.ActiveUsers)
	assert.Equal(t, 150, first.PatientCount)
	assert.Equal(t, 12, first.AppointmentsThisMonth)

	// Every count call carries the caller's tenant, never a sibling's.
	assert.Equal(t, "tenant-1", users.lastTenantID)
	assert.Equal(t, "tenant-1", patients.lastTenantID)
	assert.Equal(t, "tenant-1", appointments.lastTenantID)

	second, err := uc.GetTenantUsage(context.Background(), "tenant-2")
	require.NoError(t, err)
	assert.Equal(t, 9, second.ActiveUsers)
	assert.Equal(t, 7, second.PatientCount)
	assert.Equal(t, 2, second.AppointmentsThisMonth)

	assert.Equal(t, "tenant-2", users.lastTenantID)
	assert.Equal(t, "tenant-2", patients.lastTenantID)
	assert.Equal(t, "tenant-2", appointments.lastTenantID)
}

func TestGetTenantUsage_EmptyTenantScope(t *testing.T) {
	uc := newTestUsecase(&fakeTenantRepo{}, &fakeUserRepo{}, &fakePatientRepo{}, &fakeAppointmentRepo{}, fixedClock{now: time.Now()})

	snapshot, err := uc.GetTenantUsage(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, snapshot)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestGetTenantUsage_AnyComponentErrorFailsWholeSnapshot(t *testing.T) {
	dbErr := errors.New("count failed")
	clock := fixedClock{now: time.Now()}

	cases := []struct {
		name         string
		users        *fakeUserRepo
		patients     *fakePatientRepo
		appointments *fakeAppointmentRepo
	}{
		{"user count fails", &fakeUserRepo{err: dbErr}, &fakePatientRepo{count: 5}, &fakeAppointmentRepo{count: 5}},
		{"patient count fails", &fakeUserRepo{activeCount: 5}, &fakePatientRepo{err: dbErr}, &fakeAppointmentRepo{count: 5}},
		{"appointment count fails", &fakeUserRepo{activeCount: 5}, &fakePatientRepo{count: 5}, &fakeAppointmentRepo{err: dbErr}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(&fakeTenantRepo{}, tc.users, tc.patients, tc.appointments, clock)

			snapshot, err := uc.GetTenantUsage(context.Background(), "tenant-1")
			require.Error(t, err)
			assert.Nil(t, snapshot, "no partial snapshot on component failure")
		})
	}
}

func TestEnsureWithinPlanLimits(t *testing.T) {
	clock := fixedClock{now: time.Now()}
	tenant := &models.Tenant{
		ID:   "tenant-1",
		Plan: models.DefaultPlans["starter"],
	}

	t.Run("under quota passes", func(t *testing.T) {
		uc := newTestUsecase(
			&fakeTenantRepo{tenant: tenant},
			&fakeUserRepo{activeCount: 2},
			&fakePatientRepo{count: 10},
			&fakeAppointmentRepo{count: 10},
			clock,
		)
		assert.NoError(t, uc.EnsureWithinPlanLimits(context.Background(), "tenant-1", constvars.ResourceUsers))
	})

	t.Run("quota met rejects with conflict", func(t *testing.T) {
		uc := newTestUsecase(
			&fakeTenantRepo{tenant: tenant},
			&fakeUserRepo{activeCount: 3},
			&fakePatientRepo{count: 10},
			&fakeAppointmentRepo{count: 10},
			clock,
		)
		err := uc.EnsureWithinPlanLimits(context.Background(), "tenant-1", constvars.ResourceUsers)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		unlimited := &models.Tenant{ID: "tenant-1", Plan: models.DefaultPlans["enterprise"]}
		uc := newTestUsecase(
			&fakeTenantRepo{tenant: unlimited},
			&fakeUserRepo{activeCount: 9000},
			&fakePatientRepo{count: 9000},
			&fakeAppointmentRepo{count: 9000},
			clock,
		)
		assert.NoError(t, uc.EnsureWithinPlanLimits(context.Background(), "tenant-1", constvars.ResourcePatients))
	})

	t.Run("unknown tenant rejected", func(t *testing.T) {
		uc := newTestUsecase(&fakeTenantRepo{}, &fakeUserRepo{}, &fakePatientRepo{}, &fakeAppointmentRepo{}, clock)
		assert.Error(t, uc.EnsureWithinPlanLimits(context.Background(), "tenant-1", constvars.ResourceUsers))
	})
}
