package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/service"
)

type stubGradeService struct {
	enter func(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeEntryResponse, error)
}

func (s *stubGradeService) Enter(ctx context.Context, payload dto.GradeEntryRequest) (dto.GradeEntryResponse, error) {
	return s.enter(ctx, payload)
}

func newGradeApp(stub *stubGradeService) *fiber.App {
	app := fiber.New()
	NewGradeHandler(stub, zerolog.Nop()).Register(app.Group("/api/v1/grades"))
	return app
}

func TestGradeHandlerEnter(t *testing.T) {
	stub := &stubGradeService{
		enter: func(_ context.Context, payload dto.GradeEntryRequest) (dto.GradeEntryResponse, error) {
			return dto.GradeEntryResponse{StudentID: payload.StudentID, SubjectCode: payload.SubjectCode, Grade: payload.Grade}, nil
		},
	}
	app := newGradeApp(stub)

	resp, body := performRequest(t, app, fiber.MethodPost, "/api/v1/grades", dto.GradeEntryRequest{
		StudentID:   "S001",
		SubjectCode: "MATH101",
		Grade:       88.5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.GradeEntryResponse
	require.NoError(t, json.Unmarshal(body.Data, &result))
	require.Equal(t, 88.5, result.Grade)
}

func TestGradeHandlerEnterOutOfRange(t *testing.T) {
	stub := &stubGradeService{
		enter: func(context.Context, dto.GradeEntryRequest) (dto.GradeEntryResponse, error) {
			return dto.GradeEntryResponse{}, service.ErrGradeOutOfRange
		},
	}
	app := newGradeApp(stub)

	resp, body := performRequest(t, app, fiber.MethodPost, "/api/v1/grades", dto.GradeEntryRequest{StudentID: "S001", SubjectCode: "MATH101", Grade: 150})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "grade must be between 0 and 100", body.Message)
}

func TestGradeHandlerEnterUnknownEnrollment(t *testing.T) {
	stub := &stubGradeService{
		enter: func(context.Context, dto.GradeEntryRequest) (dto.GradeEntryResponse, error) {
			return dto.GradeEntryResponse{}, service.ErrEnrollmentNotFound
		},
	}
	app := newGradeApp(stub)

	resp, body := performRequest(t, app, fiber.MethodPost, "/api/v1/grades", dto.GradeEntryRequest{StudentID: "S001", SubjectCode: "NOPE999", Grade: 80})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.False(t, body.Success)
}
