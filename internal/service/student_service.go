package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/progression"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrStudentExists indicates the student ID is already taken.
var ErrStudentExists = errors.New("a student with this ID already exists")

// ErrSubjectLimitExceeded indicates an enroll request listed too many subjects.
var ErrSubjectLimitExceeded = errors.New("maximum 3 subjects allowed per student")

// maxSubjectsPerEnrollment caps how many subject IDs one enroll request may
// carry. The cap is checked before unknown codes are filtered out, so a
// request with four IDs fails even if some of them do not exist.
const maxSubjectsPerEnrollment = 3

// PromotionBlockedError reports why a student cannot be promoted, carrying
// the progression engine's message verbatim.
type PromotionBlockedError struct {
	Reason string
}

func (e *PromotionBlockedError) Error() string {
	return e.Reason
}

// StudentService exposes student domain use cases.
type StudentService interface {
	Enroll(ctx context.Context, payload dto.StudentEnrollRequest) (dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, studentID string) (dto.StudentDetailResponse, error)
	Promote(ctx context.Context, studentID string) (dto.StudentPromotionResponse, error)
	Delete(ctx context.Context, studentID string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewStudentService builds a new student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		activity:  activity,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) Enroll(ctx context.Context, payload dto.StudentEnrollRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	if len(payload.SubjectIDs) > maxSubjectsPerEnrollment {
		return dto.StudentResponse{}, ErrSubjectLimitExceeded
	}

	student := models.Student{
		StudentID: payload.StudentID,
		Name:      payload.Name,
		YearLevel: payload.YearLevel,
	}

	if err := s.repo.CreateWithEnrollments(ctx, &student, payload.SubjectIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.StudentResponse{}, ErrStudentExists
		}
		return dto.StudentResponse{}, err
	}

	created, err := s.repo.GetByID(ctx, student.StudentID)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Str("student_id", created.StudentID).Int("subjects", len(created.Enrollments)).Msg("student enrolled")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Student %s enrolled in Year %d", created.Name, created.YearLevel), map[string]interface{}{
			"student_id": created.StudentID,
			"year_level": created.YearLevel,
		})
	}

	return dto.NewStudentResponse(created), nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, studentID string) (dto.StudentDetailResponse, error) {
	student, err := s.repo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentDetailResponse{}, ErrStudentNotFound
		}
		return dto.StudentDetailResponse{}, err
	}

	return dto.NewStudentDetailResponse(student), nil
}

func (s *studentService) Promote(ctx context.Context, studentID string) (dto.StudentPromotionResponse, error) {
	tracer := otel.Tracer("github.com/campusgrid/enrollment-api/internal/service/student")
	ctx, span := tracer.Start(ctx, "student.promote")
	span.SetAttributes(attribute.String("student.id", studentID))
	defer span.End()

	student, err := s.repo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "student_not_found")
			return dto.StudentPromotionResponse{}, ErrStudentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "student_lookup_failed")
		return dto.StudentPromotionResponse{}, err
	}

	eligibility := progression.CanProceedToNextYear(student.YearLevel, student.Enrollments)
	if !eligibility.CanProceed {
		err := &PromotionBlockedError{Reason: eligibility.Message}
		span.RecordError(err)
		span.SetStatus(codes.Error, "promotion_blocked")
		return dto.StudentPromotionResponse{}, err
	}

	newYearLevel := student.YearLevel + 1
	if err := s.repo.UpdateYearLevel(ctx, student.StudentID, newYearLevel); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "year_level_update_failed")
		return dto.StudentPromotionResponse{}, err
	}

	s.logger.Info().Str("student_id", student.StudentID).Int("year_level", newYearLevel).Msg("student promoted")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("%s promoted to Year %d", student.Name, newYearLevel), map[string]interface{}{
			"student_id": student.StudentID,
			"year_level": newYearLevel,
		})
	}

	span.SetAttributes(attribute.Int("student.year_level", newYearLevel))

	return dto.StudentPromotionResponse{
		ID:        student.StudentID,
		YearLevel: newYearLevel,
		Message:   fmt.Sprintf("Student promoted to Year %d", newYearLevel),
	}, nil
}

func (s *studentService) Delete(ctx context.Context, studentID string) error {
	student, err := s.repo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Str("student_id", studentID).Msg("student deleted")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Student %s deleted", student.Name), map[string]interface{}{
			"student_id": studentID,
		})
	}

	return nil
}
