package maintenance

import (
	"context"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey ensures a single instance runs the nightly maintenance.
const leaderLockKey = "maintenance:leader"

// Worker runs periodic tenant maintenance: a full counter recompute for
// every tenant and a subscription status refresh from the payment provider.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	tenantUsecase contracts.TenantUsecase
	coordinator   contracts.UpdateCoordinator
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerService contracts.LockerService,
	tenantUsecase contracts.TenantUsecase,
	coordinator contracts.UpdateCoordinator,
) *Worker {
	return &Worker{
		log:           log,
		cfg:           cfg,
		locker:        lockerService,
		tenantUsecase: tenantUsecase,
		coordinator:   coordinator,
	}
}

// Start schedules the maintenance loop using the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.MaintenanceCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("maintenance.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 5 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("maintenance.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("maintenance.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, leaderLockKey, token, ttl); err != nil {
					w.log.Warn("maintenance.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	tenantIDs, err := w.tenantUsecase.FindAllTenantIDs(ctx)
	if err != nil {
		w.log.Warn("maintenance.worker: tenant listing failed", zap.Error(err))
		return
	}

	for _, tenantID := range tenantIDs {
		if ctx.Err() != nil {
			return
		}
		w.maintainTenant(ctx, tenantID)
	}
	w.log.Info("maintenance.worker: run complete", zap.Int(constvars.LoggingResponseCountKey, len(tenantIDs)))
}

// maintainTenant keeps going past per-tenant failures so one broken tenant
// cannot starve the rest of the fleet.
func (w *Worker) maintainTenant(ctx context.Context, tenantID string) {
	if err := w.coordinator.RecomputeAllForTenant(ctx, tenantID); err != nil {
		w.log.Warn("maintenance.worker: counter recompute failed",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
	}

	if _, err := w.tenantUsecase.RefreshSubscriptionStatus(ctx, tenantID); err != nil {
		w.log.Warn("maintenance.worker: subscription refresh failed",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
	}
}
