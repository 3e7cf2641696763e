package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

func newDashboardService(t *testing.T, cache *redis.Client) (DashboardService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewDashboardService(
		repository.NewStudentRepository(db),
		repository.NewProfessorRepository(db),
		repository.NewSubjectRepository(db),
		cache,
		time.Minute,
		zerolog.Nop(),
	)
	return svc, db
}

func seedDashboardEntities(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Student{StudentID: "S001", Name: "Alice", YearLevel: 1}).Error)
	require.NoError(t, db.Create(&models.Student{StudentID: "S002", Name: "Bob", YearLevel: 2}).Error)
	require.NoError(t, db.Create(&models.Professor{ProfessorID: "P001", Name: "Dr. Smith", Department: "Mathematics"}).Error)
	seedSubject(t, db, "MATH101", "Calculus", 1)
}

func TestDashboardServiceStatsWithoutCache(t *testing.T) {
	svc, db := newDashboardService(t, nil)
	seedDashboardEntities(t, db)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Students)
	require.Equal(t, int64(1), stats.Professors)
	require.Equal(t, int64(1), stats.Subjects)
}

func TestDashboardServiceStatsServesCachedCounts(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	svc, db := newDashboardService(t, cache)
	seedDashboardEntities(t, db)

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), first.Students)
	require.True(t, mr.Exists("dashboard:stats"))

	require.NoError(t, db.Create(&models.Student{StudentID: "S003", Name: "Cara", YearLevel: 1}).Error)

	cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), cached.Students, "within the TTL the cached counts are served")

	mr.FastForward(2 * time.Minute)

	fresh, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), fresh.Students)
}
