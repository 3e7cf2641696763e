package dto

import (
	"time"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// SubjectAddRequest describes the payload for adding a subject. The
// professor reference is optional; an unknown professor ID is dropped.
type SubjectAddRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	Units       int    `json:"units" validate:"required,min=1"`
	YearLevel   int    `json:"year_level" validate:"required,min=1,max=4"`
	ProfessorID string `json:"professor_id" validate:"omitempty,max=20"`
}

// AssignProfessorRequest assigns or clears a subject's professor. A null
// professor_id clears the assignment.
type AssignProfessorRequest struct {
	ProfessorID *string `json:"professor_id" validate:"omitempty,max=20"`
}

// SubjectResponse is the serialized subject with its professor summary.
type SubjectResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Units     int               `json:"units"`
	YearLevel int               `json:"year_level"`
	Professor *ProfessorSummary `json:"professor"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewSubjectResponse converts a model into a DTO.
func NewSubjectResponse(subject models.Subject) SubjectResponse {
	response := SubjectResponse{
		ID:        subject.SubjectCode,
		Name:      subject.Name,
		Units:     subject.Units,
		YearLevel: subject.YearLevel,
		CreatedAt: subject.CreatedAt,
	}
	if subject.Professor != nil {
		response.Professor = &ProfessorSummary{
			ID:   subject.Professor.ProfessorID,
			Name: subject.Professor.Name,
		}
	}

	return response
}

// NewSubjectResponseSlice converts a slice of models into DTOs.
func NewSubjectResponseSlice(subjects []models.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, NewSubjectResponse(subject))
	}

	return responses
}
