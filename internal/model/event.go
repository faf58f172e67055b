package model

import "time"

const (
	EntityUser = "user"
	EntityPost = "post"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent describes one committed mutation, published to the event queue.
type EntityEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   uint      `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
