package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusgrid/enrollment-api/internal/models"
	"github.com/campusgrid/enrollment-api/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Professor{}, &models.Subject{}, &models.Student{}, &models.Enrollment{}, &models.ActivityLog{}))
	return db
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func newActivityService(db *gorm.DB) ActivityService {
	return NewActivityService(repository.NewActivityLogRepository(db), zerolog.Nop())
}

func seedSubject(t *testing.T, db *gorm.DB, code, name string, yearLevel int) models.Subject {
	t.Helper()
	subject := models.Subject{SubjectCode: code, Name: name, Units: 3, YearLevel: yearLevel}
	require.NoError(t, db.Create(&subject).Error)
	return subject
}

func setGrade(t *testing.T, db *gorm.DB, studentID, subjectCode string, grade float64) {
	t.Helper()
	result := db.Model(&models.Enrollment{}).
		Where("student_id = ? AND subject_code = ?", studentID, subjectCode).
		Update("grade", grade)
	require.NoError(t, result.Error)
	require.EqualValues(t, 1, result.RowsAffected)
}

func latestActivityMessage(t *testing.T, db *gorm.DB) string {
	t.Helper()
	var entry models.ActivityLog
	require.NoError(t, db.Order("created_at DESC, id DESC").First(&entry).Error)
	return entry.Message
}
