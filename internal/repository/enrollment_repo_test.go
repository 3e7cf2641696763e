package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
)

func TestEnrollmentRepositoryGetByStudentAndSubject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnrollmentRepository(db)

	seedSubject(t, db, "MATH101")
	require.NoError(t, db.Create(&models.Student{StudentID: "S001", Name: "Alice", YearLevel: 1}).Error)
	require.NoError(t, db.Create(&models.Enrollment{StudentID: "S001", SubjectCode: "MATH101"}).Error)

	enrollment, err := repo.GetByStudentAndSubject(context.Background(), "S001", "MATH101")
	require.NoError(t, err)
	require.Equal(t, "Alice", enrollment.Student.Name)
	require.Equal(t, "MATH101", enrollment.Subject.SubjectCode)
	require.Nil(t, enrollment.Grade)

	_, err = repo.GetByStudentAndSubject(context.Background(), "S001", "NOPE999")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEnrollmentRepositoryUpdateGradeOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnrollmentRepository(db)

	seedSubject(t, db, "MATH101")
	require.NoError(t, db.Create(&models.Student{StudentID: "S001", Name: "Alice", YearLevel: 1}).Error)
	require.NoError(t, db.Create(&models.Enrollment{StudentID: "S001", SubjectCode: "MATH101"}).Error)

	enrollment, err := repo.GetByStudentAndSubject(context.Background(), "S001", "MATH101")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateGrade(context.Background(), enrollment.ID, 60))
	require.NoError(t, repo.UpdateGrade(context.Background(), enrollment.ID, 88.5))

	updated, err := repo.GetByStudentAndSubject(context.Background(), "S001", "MATH101")
	require.NoError(t, err)
	require.NotNil(t, updated.Grade)
	require.Equal(t, 88.5, *updated.Grade)

	err = repo.UpdateGrade(context.Background(), enrollment.ID+1000, 50)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
