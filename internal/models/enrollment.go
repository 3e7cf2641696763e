package models

import "time"

// Enrollment joins one student to one subject. Grade is nil until the
// subject has been graded; the (student, subject) pair is unique.
type Enrollment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   string    `gorm:"size:20;not null;uniqueIndex:idx_enrollment_student_subject" json:"student_id"`
	SubjectCode string    `gorm:"size:20;not null;uniqueIndex:idx_enrollment_student_subject" json:"subject_code"`
	Grade       *float64  `json:"grade"`
	EnrolledAt  time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	Student     Student   `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
	Subject     Subject   `gorm:"foreignKey:SubjectCode;references:SubjectCode" json:"subject,omitempty"`
}
