package model

import "time"

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	AuthorID  uint       `gorm:"not null;index" json:"author_id"`
	Metadata  Metadata   `gorm:"type:json" json:"metadata"`
	Published bool       `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	// Nil until the first update; stamped by the service, not by gorm.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
