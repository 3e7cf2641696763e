package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusgrid/enrollment-api/internal/dto"
	"github.com/campusgrid/enrollment-api/internal/service"
	"github.com/campusgrid/enrollment-api/internal/utils"
)

// ProfessorHandler wires professor HTTP routes.
type ProfessorHandler struct {
	service service.ProfessorService
	logger  zerolog.Logger
}

// NewProfessorHandler constructs the handler.
func NewProfessorHandler(service service.ProfessorService, logger zerolog.Logger) *ProfessorHandler {
	return &ProfessorHandler{
		service: service,
		logger:  logger.With().Str("component", "professor_handler").Logger(),
	}
}

// Register attaches professor endpoints to the router group.
func (h *ProfessorHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.add)
	router.Delete("/:id", h.delete)
}

func (h *ProfessorHandler) list(c *fiber.Ctx) error {
	professors, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "professors retrieved", professors)
}

func (h *ProfessorHandler) add(c *fiber.Ctx) error {
	var payload dto.ProfessorAddRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	professor, err := h.service.Add(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfessorExists):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "professor added", professor)
}

func (h *ProfessorHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrProfessorNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "professor not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "professor deleted", fiber.Map{"id": id})
}

func (h *ProfessorHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
