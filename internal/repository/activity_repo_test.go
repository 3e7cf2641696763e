package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusgrid/enrollment-api/internal/models"
)

func TestActivityLogRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityLogRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, message := range []string{"first", "second", "third"} {
		entry := models.ActivityLog{Message: message, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.Create(&entry).Error)
	}

	entries, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "third", entries[0].Message)
	require.Equal(t, "second", entries[1].Message)
}
