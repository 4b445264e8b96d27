package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// pendingUpdate tracks one scheduled recompute. The generation ties the
// delayed task to the registry entry it created, so a superseded task can
// never remove its successor's entry.
type pendingUpdate struct {
	timer      *time.Timer
	cancel     context.CancelFunc
	generation uint64
	createdAt  time.Time
}

type updateCoordinator struct {
	mu         sync.Mutex
	pending    map[string]*pendingUpdate
	generation uint64
	closed     bool
	wg         sync.WaitGroup

	recomputer       contracts.DentistPatientCountRecomputer
	dentistRepo      contracts.DentistRepository
	defaultDelay     time.Duration
	recomputeTimeout time.Duration
	Log              *zap.Logger
}

// NewUpdateCoordinator builds the debounced update coordinator. defaultDelay
// is used when Schedule receives a non-positive delay; recomputeTimeout
// bounds each recompute so a stuck write cannot hold its entry forever.
func NewUpdateCoordinator(
	recomputer contracts.DentistPatientCountRecomputer,
	dentistRepository contracts.DentistRepository,
	logger *zap.Logger,
	defaultDelay time.Duration,
	recomputeTimeout time.Duration,
) contracts.UpdateCoordinator {
	if defaultDelay <= 0 {
		defaultDelay = time.Second
	}
	if recomputeTimeout <= 0 {
		recomputeTimeout = 10 * time.Second
	}
	return &updateCoordinator{
		pending:          make(map[string]*pendingUpdate),
		recomputer:       recomputer,
		dentistRepo:      dentistRepository,
		defaultDelay:     defaultDelay,
		recomputeTimeout: recomputeTimeout,
		Log:              logger,
	}
}

func pendingKey(tenantID, subjectID string) string {
	return tenantID + "/" + subjectID
}

func (c *updateCoordinator) Schedule(tenantID, subjectID string, delay time.Duration) error {
	if tenantID == "" {
		return exceptions.ErrInvalidTenantScope(fmt.Errorf("schedule called without tenant scope"))
	}
	if subjectID == "" {
		return exceptions.ErrInvalidSubjectScope(fmt.Errorf("schedule called without subject scope"))
	}
	if delay <= 0 {
		delay = c.defaultDelay
	}

	key := pendingKey(tenantID, subjectID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.Log.Debug("updateCoordinator.Schedule dropped, coordinator shut down",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingSubjectIDKey, subjectID),
		)
		return nil
	}

	if existing, ok := c.pending[key]; ok {
		existing.cancel()
		if existing.timer.Stop() {
			// Timer never fired, the delayed task will not run; settle the
			// cancellation here.
			c.wg.Done()
			c.Log.Debug("updateCoordinator.Schedule cancelled pending recompute",
				zap.String(constvars.LoggingTenantIDKey, tenantID),
				zap.String(constvars.LoggingSubjectIDKey, subjectID),
			)
		}
	}

	c.generation++
	generation := c.generation
	ctx, cancel := context.WithCancel(context.Background())

	c.wg.Add(1)
	entry := &pendingUpdate{
		cancel:     cancel,
		generation: generation,
		createdAt:  time.Now(),
	}
	entry.timer = time.AfterFunc(delay, func() {
		c.runRecompute(ctx, key, tenantID, subjectID, generation)
	})
	c.pending[key] = entry

	c.Log.Debug("updateCoordinator.Schedule registered recompute",
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
		zap.Duration(constvars.LoggingDebounceDelayKey, delay),
	)
	return nil
}

// runRecompute is the delayed task body. Whatever the outcome, the entry this
// task created is removed before returning.
func (c *updateCoordinator) runRecompute(ctx context.Context, key, tenantID, subjectID string, generation uint64) {
	defer c.wg.Done()
	defer c.removeEntry(key, generation)

	if ctx.Err() != nil {
		c.Log.Debug("updateCoordinator recompute cancelled before start",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingSubjectIDKey, subjectID),
		)
		return
	}

	recomputeCtx, cancel := context.WithTimeout(ctx, c.recomputeTimeout)
	defer cancel()

	err := c.recomputer.RecomputePatientCount(recomputeCtx, tenantID, subjectID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.Log.Debug("updateCoordinator recompute cancelled mid-flight",
				zap.String(constvars.LoggingTenantIDKey, tenantID),
				zap.String(constvars.LoggingSubjectIDKey, subjectID),
			)
			return
		}
		// Failures settle the entry and stop here; the next write schedules a
		// fresh recompute, there is no retry.
		c.Log.Error("updateCoordinator recompute failed",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
		return
	}

	c.Log.Debug("updateCoordinator recompute completed",
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
	)
}

// removeEntry deletes the registry entry only when it still belongs to the
// settling task's generation.
func (c *updateCoordinator) removeEntry(key string, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.pending[key]; ok && entry.generation == generation {
		delete(c.pending, key)
	}
}

func (c *updateCoordinator) RecomputeAllForTenant(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return exceptions.ErrInvalidTenantScope(fmt.Errorf("recompute all called without tenant scope"))
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("updateCoordinator.RecomputeAllForTenant called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	dentistIDs, err := c.dentistRepo.FindIDsByTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	for _, dentistID := range dentistIDs {
		if err := c.recomputer.RecomputePatientCount(ctx, tenantID, dentistID); err != nil {
			c.Log.Error("updateCoordinator.RecomputeAllForTenant aborted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTenantIDKey, tenantID),
				zap.String(constvars.LoggingDentistIDKey, dentistID),
				zap.Error(err),
			)
			return err
		}
	}

	c.Log.Info("updateCoordinator.RecomputeAllForTenant succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.Int(constvars.LoggingDentistCountKey, len(dentistIDs)),
	)
	return nil
}

func (c *updateCoordinator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Shutdown cancels every pending recompute and waits for in-flight ones to
// settle. Schedule becomes a no-op afterwards.
func (c *updateCoordinator) Shutdown() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for key, entry := range c.pending {
		entry.cancel()
		if entry.timer.Stop() {
			c.wg.Done()
			delete(c.pending, key)
		}
	}
	c.mu.Unlock()

	c.wg.Wait()
	c.Log.Info("updateCoordinator shut down")
}
