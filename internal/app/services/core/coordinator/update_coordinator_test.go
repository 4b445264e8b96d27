package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"dentora-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type spyRecomputer struct {
	mu       sync.Mutex
	calls    map[string]int
	order    []string
	failWith map[string]error
}

func newSpyRecomputer() *spyRecomputer {
	return &spyRecomputer{
		calls:    make(map[string]int),
		failWith: make(map[string]error),
	}
}

func (s *spyRecomputer) RecomputePatientCount(ctx context.Context, tenantID, dentistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := tenantID + "/" + dentistID
	s.calls[key]++
	s.order = append(s.order, dentistID)
	if err, ok := s.failWith[key]; ok {
		return err
	}
	return nil
}

func (s *spyRecomputer) callCount(tenantID, dentistID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[tenantID+"/"+dentistID]
}

func (s *spyRecomputer) callOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *spyRecomputer) failFor(tenantID, dentistID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith[tenantID+"/"+dentistID] = err
}

type stubDentistRepo struct {
	ids    []string
	idsErr error
}

func (r *stubDentistRepo) CreateDentist(ctx context.Context, dentist *models.Dentist) (string, error) {
	return "", nil
}
func (r *stubDentistRepo) FindByID(ctx context.Context, tenantID, dentistID string) (*models.Dentist, error) {
	return nil, nil
}
func (r *stubDentistRepo) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Dentist, int, error) {
	return nil, 0, nil
}
func (r *stubDentistRepo) FindIDsByTenant(ctx context.Context, tenantID string) ([]string, error) {
	return r.ids, r.idsErr
}
func (r *stubDentistRepo) UpdateDentist(ctx context.Context, dentist *models.Dentist) error {
	return nil
}
func (r *stubDentistRepo) UpdatePatientCount(ctx context.Context, tenantID, dentistID string, count int64) error {
	return nil
}
func (r *stubDentistRepo) DeleteByID(ctx context.Context, tenantID, dentistID string) error {
	return nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	require.Fail(t, "condition not met within timeout")
}

func TestSchedule_DebouncesBurstsIntoOneRecompute(t *testing.T) {
	spy := newSpyRecomputer()
	c := NewUpdateCoordinator(spy, &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Schedule("tenant-1", "dentist-1", 30*time.Millisecond))
	}
	assert.Equal(t, 1, c.PendingCount())

	waitFor(t, time.Second, func() bool { return spy.callCount("tenant-1", "dentist-1") > 0 })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 1, spy.callCount("tenant-1", "dentist-1"))
	assert.Equal(t, 0, c.PendingCount())
}

func TestSchedule_DistinctKeysAreIndependent(t *testing.T) {
	spy := newSpyRecomputer()
	c := NewUpdateCoordinator(spy, &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	require.NoError(t, c.Schedule("tenant-1", "dentist-1", 20*time.Millisecond))
	require.NoError(t, c.Schedule("tenant-1", "dentist-2", 20*time.Millisecond))
	require.NoError(t, c.Schedule("tenant-2", "dentist-1", 20*time.Millisecond))
	assert.Equal(t, 3, c.PendingCount())

	// Replacing one key must not disturb the others.
	require.NoError(t, c.Schedule("tenant-1", "dentist-1", 20*time.Millisecond))
	assert.Equal(t, 3, c.PendingCount())

	waitFor(t, time.Second, func() bool { return c.PendingCount() == 0 })

	assert.Equal(t, 1, spy.callCount("tenant-1", "dentist-1"))
	assert.Equal(t, 1, spy.callCount("tenant-1", "dentist-2"))
	assert.Equal(t, 1, spy.callCount("tenant-2", "dentist-1"))
}

func TestSchedule_RejectsEmptyScope(t *testing.T) {
	spy := newSpyRecomputer()
	c := NewUpdateCoordinator(spy, &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	assert.Error(t, c.Schedule("", "dentist-1", time.Millisecond))
	assert.Error(t, c.Schedule("tenant-1", "", time.Millisecond))
	assert.Equal(t, 0, c.PendingCount())
}

func TestSchedule_EntryRemovedOnFailure(t *testing.T) {
	spy := newSpyRecomputer()
	spy.failFor("tenant-1", "dentist-1", errors.New("write failed"))
	c := NewUpdateCoordinator(spy, &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	require.NoError(t, c.Schedule("tenant-1", "dentist-1", 10*time.Millisecond))
	waitFor(t, time.Second, func() bool { return c.PendingCount() == 0 })

	// No retry: the failed task settles and stays settled.
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 1, spy.callCount("tenant-1", "dentist-1"))

	// A later schedule for the same key starts fresh.
	require.NoError(t, c.Schedule("tenant-1", "dentist-1", 10*time.Millisecond))
	waitFor(t, time.Second, func() bool { return spy.callCount("tenant-1", "dentist-1") == 2 })
	waitFor(t, time.Second, func() bool { return c.PendingCount() == 0 })
}

func TestSchedule_CancelledTaskNeverRecomputes(t *testing.T) {
	spy := newSpyRecomputer()
	c := NewUpdateCoordinator(spy, &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)

	require.NoError(t, c.Schedule("tenant-1", "dentist-1", 500*time.Millisecond))
	assert.Equal(t, 1, c.PendingCount())

	c.Shutdown()

	assert.Equal(t, 0, c.PendingCount())
	assert.Equal(t, 0, spy.callCount("tenant-1", "dentist-1"))

	// Schedule after shutdown is a no-op.
	require.NoError(t, c.Schedule("tenant-1", "dentist-1", time.Millisecond))
	assert.Equal(t, 0, c.PendingCount())
}

func TestRecomputeAllForTenant_CoversEveryDentist(t *testing.T) {
	spy := newSpyRecomputer()
	repo := &stubDentistRepo{ids: []string{"dentist-1", "dentist-2", "dentist-3"}}
	c := NewUpdateCoordinator(spy, repo, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	require.NoError(t, c.RecomputeAllForTenant(context.Background(), "tenant-1"))

	assert.Equal(t, []string{"dentist-1", "dentist-2", "dentist-3"}, spy.callOrder())
}

func TestRecomputeAllForTenant_FirstErrorAbortsBatch(t *testing.T) {
	spy := newSpyRecomputer()
	wantErr := fmt.Errorf("count failed")
	spy.failFor("tenant-1", "dentist-2", wantErr)
	repo := &stubDentistRepo{ids: []string{"dentist-1", "dentist-2", "dentist-3"}}
	c := NewUpdateCoordinator(spy, repo, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	err := c.RecomputeAllForTenant(context.Background(), "tenant-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)

	// dentist-1 already committed, dentist-3 never reached.
	assert.Equal(t, 1, spy.callCount("tenant-1", "dentist-1"))
	assert.Equal(t, 0, spy.callCount("tenant-1", "dentist-3"))
}

func TestRecomputeAllForTenant_RequiresTenantScope(t *testing.T) {
	c := NewUpdateCoordinator(newSpyRecomputer(), &stubDentistRepo{}, zap.NewNop(), time.Second, time.Second)
	defer c.Shutdown()

	assert.Error(t, c.RecomputeAllForTenant(context.Background(), ""))
}
