package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/service"
	"github.com/campusgrid/enrollment-api/internal/utils"
)

// SubjectHandler wires subject HTTP routes.
type SubjectHandler struct {
	service service.SubjectService
	logger  zerolog.Logger
}

// NewSubjectHandler constructs the handler.
func NewSubjectHandler(service service.SubjectService, logger zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{
		service: service,
		logger:  logger.With().Str("component", "subject_handler").Logger(),
	}
}

// Register attaches subject endpoints to the router group. Static segments
// are registered before the parameterised ones so /available and
// /unassigned are not captured as subject codes.
func (h *SubjectHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.add)
	router.Get("/available", h.listAvailable)
	router.Get("/unassigned", h.listUnassigned)
	router.Delete("/:code", h.delete)
	router.Put("/:code/professor", h.assignProfessor)
}

func (h *SubjectHandler) list(c *fiber.Ctx) error {
	subjects, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "subjects retrieved", subjects)
}

func (h *SubjectHandler) listAvailable(c *fiber.Ctx) error {
	yearLevel, err := parseQueryInt(c, "year_level")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	subjects, err := h.service.ListAvailable(c.Context(), yearLevel)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "available subjects retrieved", subjects)
}

func (h *SubjectHandler) listUnassigned(c *fiber.Ctx) error {
	subjects, err := h.service.ListUnassigned(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "unassigned subjects retrieved", subjects)
}

func (h *SubjectHandler) add(c *fiber.Ctx) error {
	var payload dto.SubjectAddRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.Add(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectExists):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "subject added", subject)
}

func (h *SubjectHandler) delete(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.service.Delete(c.Context(), code); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "subject not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "subject deleted", fiber.Map{"code": code})
}

func (h *SubjectHandler) assignProfessor(c *fiber.Ctx) error {
	var payload dto.AssignProfessorRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	code := c.Params("code")
	if err := h.service.AssignProfessor(c.Context(), code, payload.ProfessorID); err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "subject not found")
		case errors.Is(err, service.ErrProfessorNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "professor not found")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "professor assignment updated", fiber.Map{"code": code})
}

func (h *SubjectHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
