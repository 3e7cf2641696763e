package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

// ErrProfessorNotFound indicates the requested professor does not exist.
var ErrProfessorNotFound = errors.New("professor not found")

// ErrProfessorExists indicates the professor ID is already taken.
var ErrProfessorExists = errors.New("a professor with this ID already exists")

// ProfessorService exposes professor domain use cases.
type ProfessorService interface {
	Add(ctx context.Context, payload dto.ProfessorAddRequest) (dto.ProfessorResponse, error)
	List(ctx context.Context) ([]dto.ProfessorResponse, error)
	Delete(ctx context.Context, professorID string) error
}

type professorService struct {
	repo      repository.ProfessorRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewProfessorService builds a new professor service.
func NewProfessorService(repo repository.ProfessorRepository, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) ProfessorService {
	return &professorService{
		repo:      repo,
		validator: validate,
		activity:  activity,
		logger:    logger.With().Str("component", "professor_service").Logger(),
	}
}

func (s *professorService) Add(ctx context.Context, payload dto.ProfessorAddRequest) (dto.ProfessorResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProfessorResponse{}, err
	}

	professor := models.Professor{
		ProfessorID: payload.ProfessorID,
		Name:        payload.Name,
		Department:  payload.Department,
	}

	if err := s.repo.CreateWithSubjects(ctx, &professor, payload.SubjectIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProfessorResponse{}, ErrProfessorExists
		}
		return dto.ProfessorResponse{}, err
	}

	created, err := s.repo.GetByID(ctx, professor.ProfessorID)
	if err != nil {
		return dto.ProfessorResponse{}, err
	}

	s.logger.Info().Str("professor_id", created.ProfessorID).Int("subjects", len(created.Subjects)).Msg("professor added")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Professor %s added to department %s", created.Name, created.Department), map[string]interface{}{
			"professor_id": created.ProfessorID,
			"department":   created.Department,
		})
	}

	return dto.NewProfessorResponse(created), nil
}

func (s *professorService) List(ctx context.Context) ([]dto.ProfessorResponse, error) {
	professors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewProfessorResponseSlice(professors), nil
}

func (s *professorService) Delete(ctx context.Context, professorID string) error {
	professor, err := s.repo.GetByID(ctx, professorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessorNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, professorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessorNotFound
		}
		return err
	}

	s.logger.Info().Str("professor_id", professorID).Msg("professor deleted")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Professor %s deleted", professor.Name), map[string]interface{}{
			"professor_id": professorID,
		})
	}

	return nil
}
