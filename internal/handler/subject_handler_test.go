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

type stubSubjectService struct {
	add             func(ctx context.Context, payload dto.SubjectAddRequest) (dto.SubjectResponse, error)
	list            func(ctx context.Context) ([]dto.SubjectResponse, error)
	listAvailable   func(ctx context.Context, yearLevel int) ([]dto.SubjectResponse, error)
	listUnassigned  func(ctx context.Context) ([]dto.SubjectResponse, error)
	assignProfessor func(ctx context.Context, subjectCode string, professorID *string) error
	delete          func(ctx context.Context, subjectCode string) error
}

func (s *stubSubjectService) Add(ctx context.Context, payload dto.SubjectAddRequest) (dto.SubjectResponse, error) {
	return s.add(ctx, payload)
}

func (s *stubSubjectService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	return s.list(ctx)
}

func (s *stubSubjectService) ListAvailable(ctx context.Context, yearLevel int) ([]dto.SubjectResponse, error) {
	return s.listAvailable(ctx, yearLevel)
}

func (s *stubSubjectService) ListUnassigned(ctx context.Context) ([]dto.SubjectResponse, error) {
	return s.listUnassigned(ctx)
}

func (s *stubSubjectService) AssignProfessor(ctx context.Context, subjectCode string, professorID *string) error {
	return s.assignProfessor(ctx, subjectCode, professorID)
}

func (s *stubSubjectService) Delete(ctx context.Context, subjectCode string) error {
	return s.delete(ctx, subjectCode)
}

func newSubjectApp(stub *stubSubjectService) *fiber.App {
	app := fiber.New()
	NewSubjectHandler(stub, zerolog.Nop()).Register(app.Group("/api/v1/subjects"))
	return app
}

func TestSubjectHandlerListAvailable(t *testing.T) {
	stub := &stubSubjectService{
		listAvailable: func(_ context.Context, yearLevel int) ([]dto.SubjectResponse, error) {
			require.Equal(t, 2, yearLevel)
			return []dto.SubjectResponse{{ID: "MATH201", Name: "Linear Algebra", YearLevel: 2}}, nil
		},
	}
	app := newSubjectApp(stub)

	resp, body := performRequest(t, app, fiber.MethodGet, "/api/v1/subjects/available?year_level=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var subjects []dto.SubjectResponse
	require.NoError(t, json.Unmarshal(body.Data, &subjects))
	require.Len(t, subjects, 1)
	require.Equal(t, "MATH201", subjects[0].ID)
}

func TestSubjectHandlerListAvailableMissingYearLevel(t *testing.T) {
	app := newSubjectApp(&stubSubjectService{})

	resp, body := performRequest(t, app, fiber.MethodGet, "/api/v1/subjects/available", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "year_level is required", body.Message)
}

func TestSubjectHandlerAssignProfessor(t *testing.T) {
	var gotCode string
	var gotProfessor *string
	stub := &stubSubjectService{
		assignProfessor: func(_ context.Context, subjectCode string, professorID *string) error {
			gotCode = subjectCode
			gotProfessor = professorID
			return nil
		},
	}
	app := newSubjectApp(stub)

	professorID := "P001"
	resp, body := performRequest(t, app, fiber.MethodPut, "/api/v1/subjects/MATH101/professor", dto.AssignProfessorRequest{ProfessorID: &professorID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
	require.Equal(t, "MATH101", gotCode)
	require.NotNil(t, gotProfessor)
	require.Equal(t, "P001", *gotProfessor)
}

func TestSubjectHandlerAssignProfessorUnknownProfessor(t *testing.T) {
	stub := &stubSubjectService{
		assignProfessor: func(context.Context, string, *string) error {
			return service.ErrProfessorNotFound
		},
	}
	app := newSubjectApp(stub)

	ghost := "GHOST"
	resp, body := performRequest(t, app, fiber.MethodPut, "/api/v1/subjects/MATH101/professor", dto.AssignProfessorRequest{ProfessorID: &ghost})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "professor not found", body.Message)
}

func TestSubjectHandlerAddDuplicate(t *testing.T) {
	stub := &stubSubjectService{
		add: func(context.Context, dto.SubjectAddRequest) (dto.SubjectResponse, error) {
			return dto.SubjectResponse{}, service.ErrSubjectExists
		},
	}
	app := newSubjectApp(stub)

	resp, body := performRequest(t, app, fiber.MethodPost, "/api/v1/subjects", dto.SubjectAddRequest{SubjectCode: "MATH101", Name: "Calculus", Units: 3, YearLevel: 1})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.False(t, body.Success)
}

func TestSubjectHandlerDeleteNotFound(t *testing.T) {
	stub := &stubSubjectService{
		delete: func(context.Context, string) error {
			return service.ErrSubjectNotFound
		},
	}
	app := newSubjectApp(stub)

	resp, body := performRequest(t, app, fiber.MethodDelete, "/api/v1/subjects/NOPE999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "subject not found", body.Message)
}
