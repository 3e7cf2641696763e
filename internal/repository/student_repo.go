package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// StudentRepository defines persistence operations for students and the
// enrollments they own.
type StudentRepository interface {
	// CreateWithEnrollments persists the student and one enrollment per
	// known subject code in a single transaction. Unknown subject codes
	// are skipped and repeated codes are enrolled once. Returns
	// gorm.ErrDuplicatedKey when the student ID is already taken.
	CreateWithEnrollments(ctx context.Context, student *models.Student, subjectCodes []string) error
	GetByID(ctx context.Context, studentID string) (models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	UpdateYearLevel(ctx context.Context, studentID string, yearLevel int) error
	// Delete removes the student and all of its enrollments atomically.
	Delete(ctx context.Context, studentID string) error
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository instantiates a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateWithEnrollments(ctx context.Context, student *models.Student, subjectCodes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Student{}).Where("student_id = ?", student.StudentID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(student).Error; err != nil {
			return err
		}

		// A repeated code would violate the (student, subject) unique
		// index mid-transaction, so each code is enrolled once.
		seen := make(map[string]struct{}, len(subjectCodes))
		for _, code := range subjectCodes {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}

			var subject models.Subject
			if err := tx.First(&subject, "subject_code = ?", code).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			enrollment := models.Enrollment{
				StudentID:   student.StudentID,
				SubjectCode: subject.SubjectCode,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *studentRepository) GetByID(ctx context.Context, studentID string) (models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments.Subject.Professor").
		First(&student, "student_id = ?", studentID).Error
	if err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments.Subject.Professor").
		Order("student_id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) UpdateYearLevel(ctx context.Context, studentID string, yearLevel int) error {
	result := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("student_id = ?", studentID).
		Update("year_level", yearLevel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, studentID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", studentID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Student{}, "student_id = ?", studentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
