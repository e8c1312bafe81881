package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
}

func NewCandidateHandler(candidateRepo repositories.CandidateRepository) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
	}
}

// HandleList handles GET /candidates, returning summaries in insertion order.
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}

	summaries := make([]models.CandidateSummary, 0, len(candidates))
	for _, candidate := range candidates {
		summary := models.CandidateSummary{
			ID:       candidate.ID,
			Filename: candidate.Filename,
			Name:     models.FieldUnknown,
			Email:    models.FieldUnknown,
			Score:    candidate.Score,
		}

		if profile := candidate.Profile(); profile != nil {
			summary.Name = profile.Name
			summary.Email = profile.Email
		}

		summaries = append(summaries, summary)
	}

	return c.JSON(summaries)
}

// HandleDetail handles GET /candidates/:id.
func (h *CandidateHandler) HandleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid candidate ID",
		})
	}

	candidate, err := h.candidateRepo.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CandidateDetail{
		ID:              candidate.ID,
		Filename:        candidate.Filename,
		TextContent:     candidate.TextContent,
		ParsedData:      candidate.Profile(),
		Score:           candidate.Score,
		JobMatchSummary: candidate.JobMatchSummary,
	})
}
