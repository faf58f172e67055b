package model

import "time"

type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Entity     string    `gorm:"size:32;not null;index" json:"entity"`
	Action     string    `gorm:"size:16;not null" json:"action"`
	EntityID   uint      `gorm:"not null;index" json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}
