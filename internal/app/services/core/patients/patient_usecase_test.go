package patients

import (
	"context"
	"sync"
	"testing"
	"time"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepo struct {
	patients map[string]*models.Patient
	created  int
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]*models.Patient)}
}

func (r *fakePatientRepo) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	r.created++
	id := "patient-" + patient.FullName
	stored := *patient
	stored.ID = id
	r.patients[id] = &stored
	return id, nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, tenantID, patientID string) (*models.Patient, error) {
	patient, ok := r.patients[patientID]
	if !ok || patient.TenantID != tenantID {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (r *fakePatientRepo) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	return int64(len(r.patients)), nil
}

func (r *fakePatientRepo) CountByDentist(ctx context.Context, tenantID, dentistID string) (int64, error) {
	var count int64
	for _, patient := range r.patients {
		if patient.TenantID == tenantID && patient.DentistID == dentistID {
			count++
		}
	}
	return count, nil
}

func (r *fakePatientRepo) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	stored := *patient
	r.patients[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepo) DeleteByID(ctx context.Context, tenantID, patientID string) error {
	delete(r.patients, patientID)
	return nil
}

type fakeDentistRepo struct {
	dentists map[string]bool
}

func (r *fakeDentistRepo) CreateDentist(ctx context.Context, dentist *models.Dentist) (string, error) {
	return "", nil
}

func (r *fakeDentistRepo) FindByID(ctx context.Context, tenantID, dentistID string) (*models.Dentist, error) {
	if !r.dentists[dentistID] {
		return nil, nil
	}
	return &models.Dentist{ID: dentistID, TenantID: tenantID}, nil
}

func (r *fakeDentistRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Dentist, int, error) {
	return nil, 0, nil
}

func (r *fakeDentistRepo) FindIDsByTenant(ctx context.Context, tenantID string) ([]string, error) {
	return nil, nil
}

func (r *fakeDentistRepo) UpdateDentist(ctx context.Context, dentist *models.Dentist) error {
	return nil
}

func (r *fakeDentistRepo) UpdatePatientCount(ctx context.Context, tenantID, dentistID string, count int64) error {
	return nil
}

func (r *fakeDentistRepo) DeleteByID(ctx context.Context, tenantID, dentistID string) error {
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

type spyCoordinator struct {
	mu        sync.Mutex
	scheduled []string
}

func (c *spyCoordinator) Schedule(tenantID, subjectID string, delay time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduled = append(c.scheduled, tenantID+"/"+subjectID)
	return nil
}

func (c *spyCoordinator) RecomputeAllForTenant(ctx context.Context, tenantID string) error {
	return nil
}

func (c *spyCoordinator) PendingCount() int { return 0 }
func (c *spyCoordinator) Shutdown()         {}

func (c *spyCoordinator) scheduledKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.scheduled))
	copy(out, c.scheduled)
	return out
}

func TestCreatePatient_SchedulesRecountForAssignedDentist(t *testing.T) {
	repo := newFakePatientRepo()
	coordinator := &spyCoordinator{}
	uc := NewPatientUsecase(
		repo,
		&fakeDentistRepo{dentists: map[string]bool{"dentist-1": true}},
		&fakeUsageUsecase{},
		coordinator,
		zap.NewNop(),
	)

	response, err := uc.CreatePatient(context.Background(), "tenant-1", &requests.CreatePatient{
		DentistID: "dentist-1",
		FullName:  "Ayu Lestari",
	})
	require.NoError(t, err)
	assert.Equal(t, "dentist-1", response.DentistID)
	assert.Equal(t, []string{"tenant-1/dentist-1"}, coordinator.scheduledKeys())
}

func TestCreatePatient_RejectedWhenPlanLimitReached(t *testing.T) {
	repo := newFakePatientRepo()
	coordinator := &spyCoordinator{}
	limitErr := exceptions.ErrPlanLimitReached(assert.AnError)
	uc := NewPatientUsecase(
		repo,
		&fakeDentistRepo{dentists: map[string]bool{"dentist-1": true}},
		&fakeUsageUsecase{limitErr: limitErr},
		coordinator,
		zap.NewNop(),
	)

	_, err := uc.CreatePatient(context.Background(), "tenant-1", &requests.CreatePatient{
		DentistID: "dentist-1",
		FullName:  "Ayu Lestari",
	})
	require.Error(t, err)
	assert.Equal(t, 0, repo.created, "no write when quota is exceeded")
	assert.Empty(t, coordinator.scheduledKeys())
}

func TestCreatePatient_UnknownDentistRejected(t *testing.T) {
	uc := NewPatientUsecase(
		newFakePatientRepo(),
		&fakeDentistRepo{dentists: map[string]bool{}},
		&fakeUsageUsecase{},
		&spyCoordinator{},
		zap.NewNop(),
	)

	_, err := uc.CreatePatient(context.Background(), "tenant-1", &requests.CreatePatient{
		DentistID: "dentist-missing",
		FullName:  "Ayu Lestari",
	})
	require.Error(t, err)
}

func TestTransferPatient_SchedulesRecountForBothDentists(t *testing.T) {
	repo := newFakePatientRepo()
	coordinator := &spyCoordinator{}
	uc := NewPatientUsecase(
		repo,
		&fakeDentistRepo{dentists: map[string]bool{"dentist-1": true, "dentist-2": true}},
		&fakeUsageUsecase{},
		coordinator,
		zap.NewNop(),
	)

	created, err := uc.CreatePatient(context.Background(), "tenant-1", &requests.CreatePatient{
		DentistID: "dentist-1",
		FullName:  "Ayu Lestari",
	})
	require.NoError(t, err)

	transferred, err := uc.TransferPatient(context.Background(), "tenant-1", created.ID, &requests.TransferPatient{
		DentistID: "dentist-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "dentist-2", transferred.DentistID)

	keys := coordinator.scheduledKeys()
	assert.Contains(t, keys, "tenant-1/dentist-1")
	assert.Contains(t, keys, "tenant-1/dentist-2")
}

func TestDeletePatient_SchedulesRecount(t *testing.T) {
	repo := newFakePatientRepo()
	coordinator := &spyCoordinator{}
	uc := NewPatientUsecase(
		repo,
		&fakeDentistRepo{dentists: map[string]bool{"dentist-1": true}},
		&fakeUsageUsecase{},
		coordinator,
		zap.NewNop(),
	)

	created, err := uc.CreatePatient(context.Background(), "tenant-1", &requests.CreatePatient{
		DentistID: "dentist-1",
		FullName:  "Ayu Lestari",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeletePatient(context.Background(), "tenant-1", created.ID))

	keys := coordinator.scheduledKeys()
	assert.Len(t, keys, 2)
	assert.Equal(t, "tenant-1/dentist-1", keys[1])
}
