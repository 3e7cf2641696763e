package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit entry recorded after every successful
// mutating operation. Entries are never updated or deleted.
type ActivityLog struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Metadata  datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}
