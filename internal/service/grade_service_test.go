package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

func newGradeService(t *testing.T) (GradeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewGradeService(repository.NewEnrollmentRepository(db), newValidator(), newActivityService(db), zerolog.Nop())
	return svc, db
}

func seedEnrollment(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedSubject(t, db, "MATH101", "Calculus", 1)
	require.NoError(t, db.Create(&models.Student{StudentID: "S001", Name: "Alice", YearLevel: 1}).Error)
	require.NoError(t, db.Create(&models.Enrollment{StudentID: "S001", SubjectCode: "MATH101"}).Error)
}

func TestGradeServiceEnter(t *testing.T) {
	svc, db := newGradeService(t)
	seedEnrollment(t, db)

	response, err := svc.Enter(context.Background(), dto.GradeEntryRequest{
		StudentID:   "S001",
		SubjectCode: "MATH101",
		Grade:       88.5,
	})
	require.NoError(t, err)
	require.Equal(t, 88.5, response.Grade)

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "student_id = ? AND subject_code = ?", "S001", "MATH101").Error)
	require.NotNil(t, enrollment.Grade)
	require.Equal(t, 88.5, *enrollment.Grade)

	require.Equal(t, "Grade for Alice in Calculus set to 88.5", latestActivityMessage(t, db))
}

func TestGradeServiceEnterAcceptsBoundaryValues(t *testing.T) {
	svc, db := newGradeService(t)
	seedEnrollment(t, db)

	for _, grade := range []float64{0, 100} {
		_, err := svc.Enter(context.Background(), dto.GradeEntryRequest{
			StudentID:   "S001",
			SubjectCode: "MATH101",
			Grade:       grade,
		})
		require.NoError(t, err)
	}

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "student_id = ? AND subject_code = ?", "S001", "MATH101").Error)
	require.NotNil(t, enrollment.Grade)
	require.Equal(t, float64(100), *enrollment.Grade, "re-grading overwrites the previous value")
}

func TestGradeServiceEnterOutOfRange(t *testing.T) {
	svc, db := newGradeService(t)
	seedEnrollment(t, db)

	for _, grade := range []float64{-0.1, 150} {
		_, err := svc.Enter(context.Background(), dto.GradeEntryRequest{
			StudentID:   "S001",
			SubjectCode: "MATH101",
			Grade:       grade,
		})
		require.ErrorIs(t, err, ErrGradeOutOfRange)
	}

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "student_id = ? AND subject_code = ?", "S001", "MATH101").Error)
	require.Nil(t, enrollment.Grade, "a rejected grade must not be stored")
}

func TestGradeServiceEnterUnknownEnrollment(t *testing.T) {
	svc, db := newGradeService(t)
	seedEnrollment(t, db)

	_, err := svc.Enter(context.Background(), dto.GradeEntryRequest{
		StudentID:   "S001",
		SubjectCode: "NOPE999",
		Grade:       80,
	})
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}
