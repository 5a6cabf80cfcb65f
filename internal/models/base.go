package models

import "time"

// Base is the base model for all entities. IDs are auto-increment integers
// for API compatibility with the original SQLite schema.
type Base struct {
	ID        uint      `json:"id"       gorm:"primaryKey"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}
