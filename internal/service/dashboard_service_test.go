package service

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/performance-dashboard/internal/chart"
	"github.com/spec-kit/performance-dashboard/internal/dataset"
	"github.com/spec-kit/performance-dashboard/internal/domain"
	"github.com/spec-kit/performance-dashboard/internal/events"
)

type mockRenderCache struct {
	mock.Mock
}

func (m *mockRenderCache) GetRender(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Bool(1), args.Error(2)
}

func (m *mockRenderCache) SetRender(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func setupDashboardService(t *testing.T, cache RenderCache) (*DashboardService, *[]events.DashboardRenderedPayload) {
	t.Helper()
	table, err := dataset.Default()
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher()
	published := &[]events.DashboardRenderedPayload{}
	dispatcher.Subscribe(events.EventDashboardRendered, func(_ context.Context, e events.Event) error {
		*published = append(*published, e.Payload.(events.DashboardRenderedPayload))
		return nil
	})

	svc := NewDashboardService(DashboardDependencies{
		Table:         table,
		Cache:         cache,
		Dispatcher:    dispatcher,
		RenderOptions: chart.RenderOptions{Width: 640, Height: 360},
	})
	return svc, published
}

func TestDashboardRender(t *testing.T) {
	svc, published := setupDashboardService(t, nil)

	t.Run("Empty selection shows every department", func(t *testing.T) {
		spec := svc.Render(domain.NewSelection())
		assert.Equal(t, svc.Options(), spec.Categories)
		assert.Len(t, spec.Categories, 20)
	})

	t.Run("Single department", func(t *testing.T) {
		spec := svc.Render(domain.NewSelection("Medicina"))
		require.Equal(t, []string{"Medicina"}, spec.Categories)
		enrolled := spec.SeriesOn(chart.AxisCounts)[0]
		assert.Equal(t, []float64{1461}, enrolled.Values)
		pct := spec.SeriesOn(chart.AxisPercent)
		assert.Equal(t, []string{"61.7%"}, pct[0].Labels)
		assert.Equal(t, []string{"38.3%"}, pct[1].Labels)
	})

	t.Run("Unknown department renders an empty chart", func(t *testing.T) {
		spec := svc.Render(domain.NewSelection("Facultad Inexistente"))
		assert.True(t, spec.IsEmpty())
		assert.Len(t, spec.Series, 5)
	})

	assert.Empty(t, *published, "Render must not publish events")
}

func TestDashboardRenderSpecPublishes(t *testing.T) {
	svc, published := setupDashboardService(t, nil)

	svc.RenderSpec(context.Background(), domain.NewSelection("Odontología", "Nope"))

	require.Len(t, *published, 1)
	got := (*published)[0]
	assert.Equal(t, events.FormatSpec, got.Format)
	assert.Equal(t, []string{"Nope", "Odontología"}, got.Selected)
	assert.Equal(t, 1, got.Rows)
	assert.False(t, got.CacheHit)
}

func TestDashboardRenderPNG(t *testing.T) {
	t.Run("Success: cache miss renders and stores", func(t *testing.T) {
		cache := new(mockRenderCache)
		svc, published := setupDashboardService(t, cache)

		cache.On("GetRender", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil).Once()
		cache.On("SetRender", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil).Once()

		data, err := svc.RenderPNG(context.Background(), domain.NewSelection("Medicina", "Psicología"))
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 640, cfg.Width)
		assert.Equal(t, 360, cfg.Height)

		cache.AssertExpectations(t)
		require.Len(t, *published, 1)
		assert.Equal(t, events.FormatPNG, (*published)[0].Format)
		assert.Equal(t, 2, (*published)[0].Rows)
	})

	t.Run("Success: cache hit skips rendering", func(t *testing.T) {
		cache := new(mockRenderCache)
		svc, published := setupDashboardService(t, cache)

		cache.On("GetRender", mock.Anything, mock.AnythingOfType("string")).Return([]byte("cached"), true, nil).Once()

		data, err := svc.RenderPNG(context.Background(), domain.NewSelection("Medicina"))
		require.NoError(t, err)
		assert.Equal(t, []byte("cached"), data)

		cache.AssertExpectations(t)
		cache.AssertNotCalled(t, "SetRender", mock.Anything, mock.Anything, mock.Anything)
		require.Len(t, *published, 1)
		assert.True(t, (*published)[0].CacheHit)
	})

	t.Run("Cache errors do not fail the render", func(t *testing.T) {
		cache := new(mockRenderCache)
		svc, _ := setupDashboardService(t, cache)

		cache.On("GetRender", mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down")).Once()
		cache.On("SetRender", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		data, err := svc.RenderPNG(context.Background(), domain.NewSelection("Facultad Inexistente"))
		require.NoError(t, err)
		_, err = png.DecodeConfig(bytes.NewReader(data))
		assert.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestDashboardCacheKey(t *testing.T) {
	svc, _ := setupDashboardService(t, nil)

	all := svc.cacheKey(svc.Render(domain.NewSelection()).Categories)
	allExplicit := svc.cacheKey(svc.Render(domain.NewSelection(svc.Options()...)).Categories)
	medicina := svc.cacheKey(svc.Render(domain.NewSelection("Medicina", "Nope")).Categories)

	assert.Equal(t, all, allExplicit, "selections with the same view share a key")
	assert.NotEqual(t, all, medicina)
	assert.Equal(t, medicina, svc.cacheKey([]string{"Medicina"}))
}

func TestDashboardDepartments(t *testing.T) {
	svc, _ := setupDashboardService(t, nil)

	records := svc.Departments()
	require.Len(t, records, 20)
	assert.Equal(t, "Ciencias Administrativas", records[0].Name)

	view := svc.View(domain.NewSelection("Medicina"))
	require.Len(t, view, 1)
	assert.Equal(t, 1461, view[0].Enrolled)
}
