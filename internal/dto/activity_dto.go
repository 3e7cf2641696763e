package dto

import (
	"time"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// ActivityResponse is a single audit feed entry.
type ActivityResponse struct {
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Time     time.Time              `json:"time"`
}

// NewActivityResponse converts a model into a DTO.
func NewActivityResponse(entry models.ActivityLog) ActivityResponse {
	return ActivityResponse{
		Message:  entry.Message,
		Metadata: entry.Metadata,
		Time:     entry.CreatedAt,
	}
}

// NewActivityResponseSlice converts a slice of models into DTOs.
func NewActivityResponseSlice(entries []models.ActivityLog) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewActivityResponse(entry))
	}

	return responses
}
