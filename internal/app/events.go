package app

import (
	"time"

	"github.com/gookit/slog"

	"blogapi/internal/model"
)

// publish emits an entity event after a committed mutation. Fire and
// forget: a failed publish is logged but never fails the request.
func publish(events EventPublisher, entity, action string, id uint) {
	if events == nil {
		return
	}
	event := model.EntityEvent{
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now(),
	}
	if err := events.Publish(event); err != nil {
		slog.Errorf("publish %s.%s event for id=%d failed: %v", entity, action, id, err)
	}
}
