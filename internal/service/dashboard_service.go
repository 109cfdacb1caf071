package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/performance-dashboard/internal/chart"
	"github.com/spec-kit/performance-dashboard/internal/dataset"
	"github.com/spec-kit/performance-dashboard/internal/domain"
	"github.com/spec-kit/performance-dashboard/internal/events"
)

// renderNamespace scopes render cache keys.
var renderNamespace = uuid.MustParse("5b0f7c4e-6a51-4c8e-9d0b-2f6a1c3e7d90")

// RenderCache stores rendered chart bytes.
type RenderCache interface {
	GetRender(ctx context.Context, key string) ([]byte, bool, error)
	SetRender(ctx context.Context, key string, data []byte) error
}

// DashboardService runs the dataset → projection → chart pipeline.
type DashboardService struct {
	table      *dataset.Table
	cache      RenderCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	render     chart.RenderOptions
}

// DashboardDependencies bundles collaborators for the dashboard service.
// Cache and Dispatcher are optional.
type DashboardDependencies struct {
	Table         *dataset.Table
	Cache         RenderCache
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
	RenderOptions chart.RenderOptions
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		table:      deps.Table,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		render:     deps.RenderOptions,
	}
}

// Departments returns every record in dataset order.
func (s *DashboardService) Departments() []domain.DepartmentRecord {
	return s.table.Records()
}

// Options returns the department names offered by the filter control.
func (s *DashboardService) Options() []string {
	return s.table.Names()
}

// View returns the records visible for selection.
func (s *DashboardService) View(selection domain.Selection) []domain.DepartmentRecord {
	return Project(s.table.Records(), selection)
}

// Render builds the chart Spec for selection. It has no side effects.
func (s *DashboardService) Render(selection domain.Selection) chart.Spec {
	return chart.Assemble(s.View(selection))
}

// RenderSpec is Render followed by a render event.
func (s *DashboardService) RenderSpec(ctx context.Context, selection domain.Selection) chart.Spec {
	spec := s.Render(selection)
	s.publish(ctx, events.FormatSpec, selection, len(spec.Categories), false)
	return spec
}

// RenderPNG paints the chart for selection, going through the render cache
// when one is configured. Cache failures are logged and otherwise ignored.
func (s *DashboardService) RenderPNG(ctx context.Context, selection domain.Selection) ([]byte, error) {
	spec := s.Render(selection)
	key := s.cacheKey(spec.Categories)

	if s.cache != nil {
		data, ok, err := s.cache.GetRender(ctx, key)
		if err != nil {
			s.logger.Warn("render cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			s.publish(ctx, events.FormatPNG, selection, len(spec.Categories), true)
			return data, nil
		}
	}

	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, spec, s.render); err != nil {
		return nil, fmt.Errorf("render dashboard png: %w", err)
	}
	data := buf.Bytes()

	if s.cache != nil {
		if err := s.cache.SetRender(ctx, key, data); err != nil {
			s.logger.Warn("render cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	s.publish(ctx, events.FormatPNG, selection, len(spec.Categories), false)
	return data, nil
}

// cacheKey identifies a PNG by the rows it shows and the output size, so
// selections that project to the same view share an entry.
func (s *DashboardService) cacheKey(categories []string) string {
	name := fmt.Sprintf("%dx%d\x00%s", s.render.Width, s.render.Height, strings.Join(categories, "\x00"))
	return uuid.NewSHA1(renderNamespace, []byte(name)).String()
}

func (s *DashboardService) publish(ctx context.Context, format events.RenderFormat, selection domain.Selection, rows int, cacheHit bool) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDashboardRendered,
		Timestamp: time.Now().UTC(),
		Payload: events.DashboardRenderedPayload{
			Format:   format,
			Selected: selection.Names(),
			Rows:     rows,
			CacheHit: cacheHit,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("render event handler failed", zap.Error(err))
	}
}
