package dto

import (
	"time"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// ProfessorAddRequest describes the payload for adding a professor. Listed
// subject IDs are claimed only when the subject is currently unassigned.
type ProfessorAddRequest struct {
	ProfessorID string   `json:"professor_id" validate:"required,max=20"`
	Name        string   `json:"name" validate:"required,max=100"`
	Department  string   `json:"department" validate:"required,max=100"`
	SubjectIDs  []string `json:"subject_ids" validate:"omitempty,dive,required"`
}

// ProfessorResponse is the serialized professor with its owned subjects.
type ProfessorResponse struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Department string                    `json:"department"`
	CreatedAt  time.Time                 `json:"created_at"`
	Subjects   []EnrolledSubjectResponse `json:"subjects"`
}

// NewProfessorResponse converts a model (with subjects preloaded) into a DTO.
func NewProfessorResponse(professor models.Professor) ProfessorResponse {
	subjects := make([]EnrolledSubjectResponse, 0, len(professor.Subjects))
	for _, subject := range professor.Subjects {
		subjects = append(subjects, EnrolledSubjectResponse{
			ID:        subject.SubjectCode,
			Name:      subject.Name,
			Units:     subject.Units,
			YearLevel: subject.YearLevel,
		})
	}

	return ProfessorResponse{
		ID:         professor.ProfessorID,
		Name:       professor.Name,
		Department: professor.Department,
		CreatedAt:  professor.CreatedAt,
		Subjects:   subjects,
	}
}

// NewProfessorResponseSlice converts a slice of models into DTOs.
func NewProfessorResponseSlice(professors []models.Professor) []ProfessorResponse {
	responses := make([]ProfessorResponse, 0, len(professors))
	for _, professor := range professors {
		responses = append(responses, NewProfessorResponse(professor))
	}

	return responses
}
