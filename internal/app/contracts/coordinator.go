package contracts

import (
	"context"
	"time"
)

// UpdateCoordinator collapses bursts of recompute triggers for the same
// (tenant, subject) key into a single delayed recompute.
type UpdateCoordinator interface {
	// Schedule registers a delayed recompute for the subject, replacing any
	// still-pending one for the same key. A delay of 0 uses the configured
	// default. It returns before the recompute runs; recompute failures are
	// logged, never returned.
	Schedule(tenantID, subjectID string, delay time.Duration) error
	// RecomputeAllForTenant synchronously recomputes every subject counter in
	// the tenant, bypassing the debounce window. The first failure aborts the
	// batch; updates already written stay in place.
	RecomputeAllForTenant(ctx context.Context, tenantID string) error
	// PendingCount reports the number of in-flight delayed recomputes.
	PendingCount() int
	// Shutdown cancels all pending recomputes.
	Shutdown()
}
