package models

import "time"

// HistoryEntry is one append-only audit record: who did something and a
// human-readable description of what.
type HistoryEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
