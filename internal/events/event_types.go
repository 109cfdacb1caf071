package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDashboardRendered EventType = "dashboard_rendered"
)

// RenderFormat is the output produced by a render.
type RenderFormat string

const (
	FormatSpec RenderFormat = "spec"
	FormatPNG  RenderFormat = "png"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DashboardRenderedPayload describes one pass of the render pipeline.
type DashboardRenderedPayload struct {
	Format   RenderFormat `json:"format"`
	Selected []string     `json:"selected"`
	Rows     int          `json:"rows"`
	CacheHit bool         `json:"cache_hit"`
}
