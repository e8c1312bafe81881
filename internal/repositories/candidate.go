package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resume-screener/internal/models"
)

// ErrCandidateNotFound is returned whenever an operation references an id
// that does not exist in the store.
var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uint) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	UpdateEvaluation(id uint, data *EvaluationUpdate) error
}

// EvaluationUpdate is a partial merge: nil fields are left untouched on the
// stored row. Filename and TextContent are never part of an update.
type EvaluationUpdate struct {
	ParsedData      *string
	Score           *int
	JobMatchSummary *string
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// FindAll returns every candidate in insertion order (ascending id), with the
// fields a summary list needs. TextContent is omitted to keep the list cheap.
func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Select("id", "filename", "parsed_data", "score", "created_at", "updated_at").
		Order("id ASC").
		Find(&candidates).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// UpdateEvaluation implements CandidateRepository. The merge runs as a single
// UPDATE statement, so a concurrent reader never observes a half-written row.
func (r *candidateRepository) UpdateEvaluation(id uint, data *EvaluationUpdate) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if data.ParsedData != nil {
		updates["parsed_data"] = *data.ParsedData
	}
	if data.Score != nil {
		updates["score"] = *data.Score
	}
	if data.JobMatchSummary != nil {
		updates["job_match_summary"] = *data.JobMatchSummary
	}

	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}
