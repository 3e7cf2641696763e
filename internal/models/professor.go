package models

import "time"

// Professor represents a faculty member that can be assigned to subjects.
type Professor struct {
	ProfessorID string    `gorm:"primaryKey;size:20" json:"professor_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Department  string    `gorm:"size:100;not null" json:"department"`
	CreatedAt   time.Time `json:"created_at"`
	Subjects    []Subject `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"subjects,omitempty"`
}
