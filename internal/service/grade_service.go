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
	"github.com/campusgrid/enrollment-api/internal/repository"
)

// ErrEnrollmentNotFound indicates no enrollment links the student and subject.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// ErrGradeOutOfRange indicates a grade outside the [0, 100] range.
var ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")

// GradeService records grades against existing enrollments. Re-grading
// overwrites the previous value; no history is kept.
type GradeService interface {
	Enter(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeEntryResponse, error)
}

type gradeService struct {
	repo      repository.EnrollmentRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewGradeService builds a new grade entry service.
func NewGradeService(repo repository.EnrollmentRepository, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) GradeService {
	return &gradeService{
		repo:      repo,
		validator: validate,
		activity:  activity,
		logger:    logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) Enter(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeEntryResponse, error) {
	tracer := otel.Tracer("github.com/campusgrid/enrollment-api/internal/service/grade")
	ctx, span := tracer.Start(ctx, "grade.enter")
	span.SetAttributes(
		attribute.String("grade.student_id", payload.StudentID),
		attribute.String("grade.subject_code", payload.SubjectCode),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.GradeEntryResponse{}, err
	}

	if payload.Grade < 0 || payload.Grade > 100 {
		span.RecordError(ErrGradeOutOfRange)
		span.SetStatus(codes.Error, "grade_out_of_range")
		return dto.GradeEntryResponse{}, ErrGradeOutOfRange
	}

	enrollment, err := s.repo.GetByStudentAndSubject(ctx, payload.StudentID, payload.SubjectCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "enrollment_not_found")
			return dto.GradeEntryResponse{}, ErrEnrollmentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "enrollment_lookup_failed")
		return dto.GradeEntryResponse{}, err
	}

	if err := s.repo.UpdateGrade(ctx, enrollment.ID, payload.Grade); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "grade_update_failed")
		return dto.GradeEntryResponse{}, err
	}

	s.logger.Info().
		Str("student_id", payload.StudentID).
		Str("subject_code", payload.SubjectCode).
		Float64("grade", payload.Grade).
		Msg("grade recorded")

	if s.activity != nil {
		s.activity.Record(ctx, fmt.Sprintf("Grade for %s in %s set to %v", enrollment.Student.Name, enrollment.Subject.Name, payload.Grade), map[string]interface{}{
			"student_id":   payload.StudentID,
			"subject_code": payload.SubjectCode,
			"grade":        payload.Grade,
		})
	}

	span.SetAttributes(attribute.Float64("grade.value", payload.Grade))

	return dto.GradeEntryResponse{
		StudentID:   payload.StudentID,
		SubjectCode: payload.SubjectCode,
		Grade:       payload.Grade,
	}, nil
}
