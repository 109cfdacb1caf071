package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/performance-dashboard/internal/events"
	"github.com/spec-kit/performance-dashboard/internal/observability"
)

// StartRenderAuditWorker subscribes to render events, logging each one and
// feeding the render counters.
func StartRenderAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventDashboardRendered, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.DashboardRenderedPayload)
		if !ok {
			logger.Warn("unexpected render payload", zap.String("event_id", event.ID))
			return nil
		}
		metrics.RecordRender(string(payload.Format), payload.Rows, payload.CacheHit)
		logger.Debug("DashboardRendered",
			zap.String("event_id", event.ID),
			zap.String("format", string(payload.Format)),
			zap.Strings("selected", payload.Selected),
			zap.Int("rows", payload.Rows),
			zap.Bool("cache_hit", payload.CacheHit),
		)
		return nil
	})
}
