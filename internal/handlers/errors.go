package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/repositories"
	"resume-screener/internal/services"
)

// respondError maps every internal error kind to a caller-visible status and
// a message that distinguishes "bad file" from "AI unreachable" from "model
// returned garbage".
func respondError(c *fiber.Ctx, err error) error {
	var aiErr *services.AIServiceError
	var parseErr *services.UnparseableResponseError
	var extractErr *services.ExtractionError

	switch {
	case errors.Is(err, repositories.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "candidate not found",
		})

	case errors.Is(err, services.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported file type, please upload a PDF or DOCX resume",
		})

	case errors.As(err, &extractErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "the file appears to be corrupt or unreadable: " + extractErr.Error(),
		})

	case errors.As(err, &aiErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": aiErr.Message(),
		})

	case errors.As(err, &parseErr):
		log.Printf("⚠️  Unparseable model response: %.500s", parseErr.Raw)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "the AI service returned a response with no usable JSON",
		})

	case errors.Is(err, services.ErrInvalidScore):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "the AI service returned an invalid match score",
		})

	default:
		log.Printf("❌ Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
