package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// SubjectRepository defines persistence operations for subjects.
type SubjectRepository interface {
	// Create persists the subject. A professor reference pointing at an
	// unknown professor is dropped rather than failing the create.
	// Returns gorm.ErrDuplicatedKey when the subject code is taken.
	Create(ctx context.Context, subject *models.Subject) error
	GetByCode(ctx context.Context, subjectCode string) (models.Subject, error)
	List(ctx context.Context) ([]models.Subject, error)
	ListByYearLevel(ctx context.Context, yearLevel int) ([]models.Subject, error)
	ListUnassigned(ctx context.Context) ([]models.Subject, error)
	// AssignProfessor overwrites or clears the subject's professor
	// reference. Passing nil clears it.
	AssignProfessor(ctx context.Context, subjectCode string, professorID *string) error
	// Delete removes the subject and all enrollments referencing it
	// atomically.
	Delete(ctx context.Context, subjectCode string) error
	Count(ctx context.Context) (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository instantiates a GORM-backed repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subject{}).Where("subject_code = ?", subject.SubjectCode).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if subject.ProfessorID != nil {
			var professor models.Professor
			err := tx.First(&professor, "professor_id = ?", *subject.ProfessorID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				subject.ProfessorID = nil
			} else if err != nil {
				return err
			}
		}

		return tx.Create(subject).Error
	})
}

func (r *subjectRepository) GetByCode(ctx context.Context, subjectCode string) (models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).
		Preload("Professor").
		First(&subject, "subject_code = ?", subjectCode).Error
	if err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Order("subject_code ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) ListByYearLevel(ctx context.Context, yearLevel int) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Where("year_level = ?", yearLevel).
		Order("subject_code ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) ListUnassigned(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Where("professor_id IS NULL").
		Order("subject_code ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) AssignProfessor(ctx context.Context, subjectCode string, professorID *string) error {
	result := r.db.WithContext(ctx).Model(&models.Subject{}).
		Where("subject_code = ?", subjectCode).
		Update("professor_id", professorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *subjectRepository) Delete(ctx context.Context, subjectCode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_code = ?", subjectCode).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Subject{}, "subject_code = ?", subjectCode)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *subjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Subject{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
