package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/performance-dashboard/internal/events"
	"github.com/spec-kit/performance-dashboard/internal/observability"
)

func TestRenderAuditWorkerRecordsMetrics(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	StartRenderAuditWorker(dispatcher, zap.NewNop(), metrics)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventDashboardRendered,
		Payload: events.DashboardRenderedPayload{
			Format:   events.FormatPNG,
			Selected: []string{"Facultad Inexistente"},
			Rows:     0,
			CacheHit: true,
		},
	})
	require.NoError(t, err)

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Renders["png"])
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(1), snap.EmptyViews)
}

func TestRenderAuditWorkerIgnoresForeignPayload(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	StartRenderAuditWorker(dispatcher, zap.NewNop(), metrics)

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventDashboardRendered, Payload: "nope"}))
	assert.Empty(t, metrics.Snapshot().Renders)
}

func TestStartRenderAuditWorkerNilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() {
		StartRenderAuditWorker(nil, zap.NewNop(), observability.NewMetrics())
	})
}
