package models

import "time"

// Student represents an enrolled learner. Enrollments are owned by the
// student and are removed together with it.
type Student struct {
	StudentID   string       `gorm:"primaryKey;size:20" json:"student_id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	YearLevel   int          `gorm:"not null" json:"year_level"`
	CreatedAt   time.Time    `json:"created_at"`
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}
