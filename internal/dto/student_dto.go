package dto

import (
	"time"

	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/progression"
)

// StudentEnrollRequest describes the payload for enrolling a new student.
// The subject limit is a domain rule enforced by the service so it can be
// reported distinctly from field validation failures.
type StudentEnrollRequest struct {
	StudentID  string   `json:"student_id" validate:"required,max=20"`
	Name       string   `json:"name" validate:"required,max=100"`
	YearLevel  int      `json:"year_level" validate:"required,min=1,max=4"`
	SubjectIDs []string `json:"subject_ids" validate:"omitempty,dive,required"`
}

// ProfessorSummary is the abbreviated professor shape nested in subject and
// student payloads.
type ProfessorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnrolledSubjectResponse describes a subject as seen from a student record.
type EnrolledSubjectResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Units     int               `json:"units"`
	YearLevel int               `json:"year_level"`
	Professor *ProfessorSummary `json:"professor"`
}

// StudentResponse is the serialized student returned by list and enroll
// operations, including enrolled subjects and the grade per subject code.
type StudentResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	YearLevel int                       `json:"year_level"`
	CreatedAt time.Time                 `json:"created_at"`
	Subjects  []EnrolledSubjectResponse `json:"subjects"`
	Grades    map[string]*float64       `json:"grades"`
}

// NewStudentResponse converts a model (with enrollments preloaded) into a DTO.
func NewStudentResponse(student models.Student) StudentResponse {
	subjects := make([]EnrolledSubjectResponse, 0, len(student.Enrollments))
	grades := make(map[string]*float64, len(student.Enrollments))

	for _, enrollment := range student.Enrollments {
		subject := EnrolledSubjectResponse{
			ID:        enrollment.Subject.SubjectCode,
			Name:      enrollment.Subject.Name,
			Units:     enrollment.Subject.Units,
			YearLevel: enrollment.Subject.YearLevel,
		}
		if enrollment.Subject.Professor != nil {
			subject.Professor = &ProfessorSummary{
				ID:   enrollment.Subject.Professor.ProfessorID,
				Name: enrollment.Subject.Professor.Name,
			}
		}
		subjects = append(subjects, subject)
		grades[enrollment.SubjectCode] = enrollment.Grade
	}

	return StudentResponse{
		ID:        student.StudentID,
		Name:      student.Name,
		YearLevel: student.YearLevel,
		CreatedAt: student.CreatedAt,
		Subjects:  subjects,
		Grades:    grades,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}

	return responses
}

// StudentSubjectDetail pairs an enrollment with its derived status for the
// student detail view.
type StudentSubjectDetail struct {
	Subject   SubjectSummary     `json:"subject"`
	Professor *ProfessorSummary  `json:"professor"`
	Grade     *float64           `json:"grade"`
	Status    progression.Status `json:"status"`
}

// SubjectSummary is the abbreviated subject shape nested in detail payloads.
type SubjectSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StudentDetailResponse is the full student profile including GPA, overall
// status and promotion eligibility.
type StudentDetailResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	YearLevel   int                     `json:"year_level"`
	Status      string                  `json:"status"`
	GPA         float64                 `json:"gpa"`
	Subjects    []StudentSubjectDetail  `json:"subjects"`
	Progression progression.Eligibility `json:"progression"`
}

// NewStudentDetailResponse derives the detail view from a student with
// enrollments and subjects preloaded.
func NewStudentDetailResponse(student models.Student) StudentDetailResponse {
	subjects := make([]StudentSubjectDetail, 0, len(student.Enrollments))
	for _, enrollment := range student.Enrollments {
		detail := StudentSubjectDetail{
			Subject: SubjectSummary{
				ID:   enrollment.Subject.SubjectCode,
				Name: enrollment.Subject.Name,
			},
			Grade:  enrollment.Grade,
			Status: progression.EnrollmentStatus(enrollment),
		}
		if enrollment.Subject.Professor != nil {
			detail.Professor = &ProfessorSummary{
				ID:   enrollment.Subject.Professor.ProfessorID,
				Name: enrollment.Subject.Professor.Name,
			}
		}
		subjects = append(subjects, detail)
	}

	return StudentDetailResponse{
		ID:          student.StudentID,
		Name:        student.Name,
		YearLevel:   student.YearLevel,
		Status:      progression.OverallStatus(student.Enrollments),
		GPA:         progression.GPA(student.Enrollments),
		Subjects:    subjects,
		Progression: progression.CanProceedToNextYear(student.YearLevel, student.Enrollments),
	}
}

// StudentPromotionResponse reports the year level reached by a promotion.
type StudentPromotionResponse struct {
	ID        string `json:"id"`
	YearLevel int    `json:"year_level"`
	Message   string `json:"message"`
}
