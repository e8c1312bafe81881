package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/services"
)

type ProcessHandler struct {
	screener services.ScreenerService
}

func NewProcessHandler(screener services.ScreenerService) *ProcessHandler {
	return &ProcessHandler{
		screener: screener,
	}
}

// HandleProcess handles POST /candidates/:id/process: parse the stored
// resume with the AI service and score it against the supplied job
// description.
func (h *ProcessHandler) HandleProcess(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid candidate ID",
		})
	}

	var req models.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	result, err := h.screener.ProcessCandidate(c.Context(), uint(id), jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
