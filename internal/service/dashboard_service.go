package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

const statsCacheKey = "dashboard:stats"

// DashboardService produces aggregated entity counts for the dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	students   repository.StudentRepository
	professors repository.ProfessorRepository
	subjects   repository.SubjectRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator. The cache client may
// be nil, in which case counts are computed on every call.
func NewDashboardService(students repository.StudentRepository, professors repository.ProfessorRepository, subjects repository.SubjectRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		students:   students,
		professors: professors,
		subjects:   subjects,
		cache:      cache,
		cacheTTL:   ttl,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) Stats(ctx context.Context) (dto.DashboardStatsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var response dto.DashboardStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard stats cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read stats cache")
		}
	}

	students, err := s.students.Count(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	professors, err := s.professors.Count(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	subjects, err := s.subjects.Count(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	response := dto.DashboardStatsResponse{
		Students:   students,
		Professors: professors,
		Subjects:   subjects,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store stats cache")
			}
		}
	}

	return response, nil
}
