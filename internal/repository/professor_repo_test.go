package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

func TestProfessorRepositoryCreateWithSubjectsClaimsOnlyUnassigned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfessorRepository(db)

	other := models.Professor{ProfessorID: "P000", Name: "Dr. Prior", Department: "Physics"}
	require.NoError(t, db.Create(&other).Error)

	seedSubject(t, db, "MATH101")
	taken := seedSubject(t, db, "PHYS101")
	require.NoError(t, db.Model(&taken).Update("professor_id", "P000").Error)

	professor := models.Professor{ProfessorID: "P001", Name: "Dr. Smith", Department: "Mathematics"}
	err := repo.CreateWithSubjects(context.Background(), &professor, []string{"MATH101", "PHYS101", "NOPE999"})
	require.NoError(t, err)

	created, err := repo.GetByID(context.Background(), "P001")
	require.NoError(t, err)
	require.Len(t, created.Subjects, 1)
	require.Equal(t, "MATH101", created.Subjects[0].SubjectCode)

	var stored models.Subject
	require.NoError(t, db.First(&stored, "subject_code = ?", "PHYS101").Error)
	require.NotNil(t, stored.ProfessorID)
	require.Equal(t, "P000", *stored.ProfessorID, "assigned subjects must not be claimed")
}

func TestProfessorRepositoryCreateDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfessorRepository(db)

	existing := models.Professor{ProfessorID: "P001", Name: "Dr. Smith", Department: "Mathematics"}
	require.NoError(t, db.Create(&existing).Error)

	duplicate := models.Professor{ProfessorID: "P001", Name: "Impostor", Department: "Physics"}
	err := repo.CreateWithSubjects(context.Background(), &duplicate, nil)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProfessorRepositoryDeleteClearsSubjectReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfessorRepository(db)

	professor := models.Professor{ProfessorID: "P001", Name: "Dr. Smith", Department: "Mathematics"}
	require.NoError(t, db.Create(&professor).Error)

	for _, code := range []string{"MATH101", "MATH201"} {
		subject := seedSubject(t, db, code)
		require.NoError(t, db.Model(&subject).Update("professor_id", "P001").Error)
	}

	require.NoError(t, repo.Delete(context.Background(), "P001"))

	var subjects []models.Subject
	require.NoError(t, db.Find(&subjects, "subject_code IN ?", []string{"MATH101", "MATH201"}).Error)
	require.Len(t, subjects, 2, "subjects must survive professor deletion")
	for _, subject := range subjects {
		require.Nil(t, subject.ProfessorID)
	}

	err := repo.Delete(context.Background(), "P001")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
