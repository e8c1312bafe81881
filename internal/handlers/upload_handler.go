package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
	"resume-screener/internal/services"
)

type UploadHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
	extractor      services.TextExtractor
	maxFileSize    int64
}

func NewUploadHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
	extractor services.TextExtractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload: stage the file, extract its text, and
// create the candidate record. Any failure leaves no record and no staged
// file behind.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	format, err := services.DetectFormat(fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}

	stagedName, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	text, err := h.extractor.ExtractText(filePath, format)
	if err != nil {
		h.storageService.DeleteFile(stagedName)
		return respondError(c, err)
	}

	if strings.TrimSpace(text) == "" {
		h.storageService.DeleteFile(stagedName)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "could not extract readable text from the resume, please check the file content",
		})
	}

	candidate := models.Candidate{
		Filename:    fileHeader.Filename,
		TextContent: text,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.candidateRepo.Create(&candidate); err != nil {
		// Cleanup staged file if the database insert fails
		h.storageService.DeleteFile(stagedName)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save candidate record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded and text extracted successfully",
		"candidate": models.UploadResponse{
			ID:       candidate.ID,
			Filename: candidate.Filename,
		},
	})
}
