package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	GetByStudentAndSubject(ctx context.Context, studentID, subjectCode string) (models.Enrollment, error)
	UpdateGrade(ctx context.Context, id uint, grade float64) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) GetByStudentAndSubject(ctx context.Context, studentID, subjectCode string) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Subject").
		First(&enrollment, "student_id = ? AND subject_code = ?", studentID, subjectCode).Error
	if err != nil {
		return models.Enrollment{}, err
	}

	return enrollment, nil
}

func (r *enrollmentRepository) UpdateGrade(ctx context.Context, id uint, grade float64) error {
	result := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("id = ?", id).
		Update("grade", grade)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
