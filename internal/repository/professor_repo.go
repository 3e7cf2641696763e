package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// ProfessorRepository defines persistence operations for professors.
type ProfessorRepository interface {
	// CreateWithSubjects persists the professor and claims the listed
	// subjects in a single transaction. Only subjects that exist and are
	// currently unassigned are claimed; the rest are skipped. Returns
	// gorm.ErrDuplicatedKey when the professor ID is already taken.
	CreateWithSubjects(ctx context.Context, professor *models.Professor, subjectCodes []string) error
	GetByID(ctx context.Context, professorID string) (models.Professor, error)
	List(ctx context.Context) ([]models.Professor, error)
	// Delete clears the professor reference on all owned subjects before
	// removing the professor record, atomically.
	Delete(ctx context.Context, professorID string) error
	Count(ctx context.Context) (int64, error)
}

type professorRepository struct {
	db *gorm.DB
}

// NewProfessorRepository instantiates a GORM-backed repository.
func NewProfessorRepository(db *gorm.DB) ProfessorRepository {
	return &professorRepository{db: db}
}

func (r *professorRepository) CreateWithSubjects(ctx context.Context, professor *models.Professor, subjectCodes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Professor{}).Where("professor_id = ?", professor.ProfessorID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(professor).Error; err != nil {
			return err
		}

		for _, code := range subjectCodes {
			err := tx.Model(&models.Subject{}).
				Where("subject_code = ? AND professor_id IS NULL", code).
				Update("professor_id", professor.ProfessorID).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *professorRepository) GetByID(ctx context.Context, professorID string) (models.Professor, error) {
	var professor models.Professor
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		First(&professor, "professor_id = ?", professorID).Error
	if err != nil {
		return models.Professor{}, err
	}

	return professor, nil
}

func (r *professorRepository) List(ctx context.Context) ([]models.Professor, error) {
	var professors []models.Professor
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		Order("professor_id ASC").
		Find(&professors).Error
	if err != nil {
		return nil, err
	}

	return professors, nil
}

func (r *professorRepository) Delete(ctx context.Context, professorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Subject{}).
			Where("professor_id = ?", professorID).
			Update("professor_id", nil).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Professor{}, "professor_id = ?", professorID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *professorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Professor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
