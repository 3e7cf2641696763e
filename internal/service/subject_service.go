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

// ErrSubjectNotFound indicates the requested subject does not exist.
var ErrSubjectNotFound = errors.New("subject not found")

// ErrSubjectExists indicates the subject code is already taken.
var ErrSubjectExists = errors.New("a subject with this code already exists")

// SubjectService exposes subject domain use cases.
type SubjectService interface {
	Add(ctx context.Context, payload dto.SubjectAddRequest) (dto.SubjectResponse, error)
	List(ctx context.Context) ([]dto.SubjectResponse, error)
	ListAvailable(ctx context.Context, yearLevel int) ([]dto.SubjectResponse, error)
	ListUnassigned(ctx context.Context) ([]dto.SubjectResponse, error)
	AssignProfessor(ctx context.Context, subjectCode string, professorID *string) error
	Delete(ctx context.Context, subjectCode string) error
}

type subjectService struct {
	repo       repository.SubjectRepository
	professors repository.ProfessorRepository
	validator  *validator.Validate
	activity   ActivityRecorder
	logger     zerolog.Logger
}

// NewSubjectService builds a new subject service.
func NewSubjectService(repo repository.SubjectRepository, professors repository.ProfessorRepository, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) SubjectService {
	return &subjectService{
		repo:       repo,
		professors: professors,
		validator:  validate,
		activity:   activity,
		logger:     logger.With().Str("component", "subject_service").Logger(),
	}
}

func (s *subjectService) Add(ctx context.Context, payload dto.SubjectAddRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject := models.Subject{
		SubjectCode: payload.SubjectCode,
		Name:        payload.Name,
		Units:       payload.Units,
		YearLevel:   payload.YearLevel,
	}
	if payload.ProfessorID != "" {
		professorID := payload.ProfessorID
		subject.ProfessorID = &professorID
	}

	if err := s.repo.Create(ctx, &subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.SubjectResponse{}, ErrSubjectExists
		}
		return dto.SubjectResponse{}, err
	}

	created, err := s.repo.GetByCode(ctx, subject.SubjectCode)
	if err != nil {
		return dto.SubjectResponse{}, err
	}

	s.logger.Info().Str("subject_code", created.SubjectCode).Int("year_level", created.YearLevel).Msg("subject added")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Subject %s added for Year %d", created.Name, created.YearLevel), map[string]interface{}{
			"subject_code": created.SubjectCode,
			"year_level":   created.YearLevel,
		})
	}

	return dto.NewSubjectResponse(created), nil
}

func (s *subjectService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *subjectService) ListAvailable(ctx context.Context, yearLevel int) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.ListByYearLevel(ctx, yearLevel)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *subjectService) ListUnassigned(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *subjectService) AssignProfessor(ctx context.Context, subjectCode string, professorID *string) error {
	subject, err := s.repo.GetByCode(ctx, subjectCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	if professorID != nil {
		professor, err := s.professors.GetByID(ctx, *professorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfessorNotFound
			}
			return err
		}

		if err := s.repo.AssignProfessor(ctx, subjectCode, professorID); err != nil {
			return err
		}

		s.logger.Info().Str("subject_code", subjectCode).Str("professor_id", professor.ProfessorID).Msg("professor assigned")

		if s.activity != nil {
			s.activity.Record(ctx, fmt.Sprintf("%s assigned to %s", professor.Name, subject.Name), map[string]interface{}{
				"subject_code": subjectCode,
				"professor_id": professor.ProfessorID,
			})
		}

		return nil
	}

	if err := s.repo.AssignProfessor(ctx, subjectCode, nil); err != nil {
		return err
	}

	s.logger.Info().Str("subject_code", subjectCode).Msg("professor assignment cleared")

	if subject.ProfessorID != nil && s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Professor removed from %s", subject.Name), map[string]interface{}{
			"subject_code": subjectCode,
		})
	}

	return nil
}

func (s *subjectService) Delete(ctx context.Context, subjectCode string) error {
	subject, err := s.repo.GetByCode(ctx, subjectCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, subjectCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	s.logger.Info().Str("subject_code", subjectCode).Msg("subject deleted")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Subject %s deleted", subject.Name), map[string]interface{}{
			"subject_code": subjectCode,
		})
	}

	return nil
}
