package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
	"go.uber.org/zap"
)

// StorePinger is the reachability probe the health service runs against the
// record store.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports per-component health. The record store being
// unreachable degrades the service rather than taking it down: the visitor
// directory routes stay serviceable without storage.
type HealthService struct {
	store         StorePinger
	visitors      *VisitorService
	version       string
	log           *zap.SugaredLogger
	storeDegraded atomic.Bool
}

func NewHealthService(store StorePinger, visitors *VisitorService, version string) *HealthService {
	return &HealthService{
		store:    store,
		visitors: visitors,
		version:  version,
		log:      logger.GetLogger(),
	}
}

// SetStoreDegraded records that the best-effort startup step against the
// store (index creation) failed. Readiness reports the store component as
// degraded until a later successful probe clears it.
func (h *HealthService) SetStoreDegraded(degraded bool) {
	h.storeDegraded.Store(degraded)
}

// StoreDegraded reports whether the service booted without a reachable store.
func (h *HealthService) StoreDegraded() bool {
	return h.storeDegraded.Load()
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)

	components["mongodb"] = h.checkStore(ctx)
	components["visitor_directory"] = h.checkVisitors()

	overallStatus := types.HealthStatusUp
	for _, c := range components {
		if c.Status != types.HealthStatusUp {
			overallStatus = types.HealthStatusDegraded
		}
	}
	// Down only when nothing is serviceable.
	if components["mongodb"].Status == types.HealthStatusDown &&
		components["visitor_directory"].Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkStore(ctx context.Context) types.HealthComponent {
	if h.store == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Store not configured",
		}
	}
	if err := h.store.Ping(ctx); err != nil {
		h.log.Errorw("Store health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Store connection failed",
		}
	}
	if h.storeDegraded.Load() {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Startup index creation failed",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (h *HealthService) checkVisitors() types.HealthComponent {
	if h.visitors == nil || h.visitors.Count() == 0 {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Visitor directory empty",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
