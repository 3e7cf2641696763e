package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusgrid/enrollment-api/internal/service"
	"github.com/campusgrid/enrollment-api/internal/utils"
)

// ActivityHandler exposes the read side of the activity feed.
type ActivityHandler struct {
	service service.ActivityService
	limit   int
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler. limit caps how many entries the
// feed returns.
func NewActivityHandler(service service.ActivityService, limit int, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		limit:   limit,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register attaches the activity feed endpoint to the router group.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context(), h.limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "activity retrieved", entries)
}
