package api

import (
	"log/slog"
	"time"

	"github.com/nerkartran297/english-center-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetWeeklySchedule serves GET /api/schedule. The optional week parameter is
// an RFC 3339 timestamp anywhere inside the wanted week; it defaults to now.
// The frontend pages by sending the same timestamp shifted ±7 days.
func (h *ScheduleHandler) GetWeeklySchedule(c *fiber.Ctx) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	ref := time.Now()
	if raw := c.Query("week"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week parameter, want RFC 3339"})
		}
		ref = parsed
	}

	view, err := h.scheduleService.WeeklySchedule(c.Context(), ident.UserID, ref)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error building weekly schedule", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build schedule"})
	}
	return c.Status(fiber.StatusOK).JSON(view)
}
