package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

// ActivityRecorder defines behaviour for recording audit entries. Recording
// is a side effect of a committed mutation: failures are logged and must
// never propagate back into the operation that triggered them.
type ActivityRecorder interface {
	Record(ctx context.Context, message string, metadata map[string]interface{})
}

// ActivityService exposes methods to record and query the activity feed.
type ActivityService interface {
	ActivityRecorder
	List(ctx context.Context, limit int) ([]dto.ActivityResponse, error)
}

type activityService struct {
	repo   repository.ActivityLogRepository
	logger zerolog.Logger
}

// NewActivityService constructs the activity feed service.
func NewActivityService(repo repository.ActivityLogRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Record(ctx context.Context, message string, metadata map[string]interface{}) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	entry := models.ActivityLog{
		Message:  message,
		Metadata: toJSONMap(metadata),
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Warn().Err(err).Str("message", message).Msg("failed to persist activity entry")
	}
}

func (s *activityService) List(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	return dto.NewActivityResponseSlice(entries), nil
}

func toJSONMap(metadata map[string]interface{}) datatypes.JSONMap {
	if metadata == nil {
		return datatypes.JSONMap{}
	}

	converted := datatypes.JSONMap{}
	for key, value := range metadata {
		converted[key] = value
	}
	return converted
}
