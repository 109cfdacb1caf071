package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherPublish(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventDashboardRendered, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.ID)
		return errors.New("boom")
	})
	d.Subscribe(EventDashboardRendered, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.ID)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "1", Type: EventDashboardRendered})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"first:1", "second:1"}, calls)
}

func TestDispatcherNoListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventDashboardRendered}))
}
