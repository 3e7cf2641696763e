package models

import "time"

// Subject represents a course offering for a given year level. The professor
// reference is optional: a subject may remain unassigned, and removing its
// professor clears the reference without touching the subject itself.
type Subject struct {
	SubjectCode string       `gorm:"primaryKey;size:20" json:"subject_code"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Units       int          `gorm:"not null" json:"units"`
	YearLevel   int          `gorm:"not null" json:"year_level"`
	ProfessorID *string      `gorm:"size:20" json:"professor_id"`
	Professor   *Professor   `gorm:"foreignKey:ProfessorID;references:ProfessorID;constraint:OnDelete:SET NULL" json:"professor,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Enrollments []Enrollment `gorm:"foreignKey:SubjectCode;references:SubjectCode;constraint:OnDelete:CASCADE" json:"-"`
}
