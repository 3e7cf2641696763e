package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// ActivityLogRepository persists and reads the append-only activity feed.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository instantiates a GORM-backed repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.ActivityLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
