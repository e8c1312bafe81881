package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"resume-screener/internal/models"
	"resume-screener/internal/repositories"
)

// ScreenerService runs the parse-and-score flow for a stored candidate. The
// candidate row is only written after every step has succeeded, so any
// failure leaves the record in its pre-call state.
type ScreenerService interface {
	ProcessCandidate(ctx context.Context, id uint, jobDescription string) (*models.ProcessResponse, error)
}

type screenerService struct {
	candidateRepo repositories.CandidateRepository
	ai            TextGenerator
	parser        ResponseParser
	promptBuilder *PromptBuilder
}

func NewScreenerService(
	candidateRepo repositories.CandidateRepository,
	ai TextGenerator,
	parser ResponseParser,
) ScreenerService {
	return &screenerService{
		candidateRepo: candidateRepo,
		ai:            ai,
		parser:        parser,
		promptBuilder: NewPromptBuilder(),
	}
}

// ProcessCandidate implements ScreenerService.
func (s *screenerService) ProcessCandidate(ctx context.Context, id uint, jobDescription string) (*models.ProcessResponse, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Step 1: structured parse of the resume text
	log.Printf("🤖 Parsing resume for candidate %d...", id)
	parseRaw, err := s.ai.GenerateText(ctx, s.promptBuilder.BuildParsePrompt(candidate.TextContent))
	if err != nil {
		return nil, err
	}

	profile, err := s.parser.ParseProfile(parseRaw)
	if err != nil {
		return nil, err
	}

	// Step 2: score against the job description
	log.Printf("🤖 Scoring candidate %d against the job description...", id)
	matchRaw, err := s.ai.GenerateText(ctx, s.promptBuilder.BuildMatchPrompt(candidate.TextContent, jobDescription))
	if err != nil {
		return nil, err
	}

	score, summary, err := s.parser.ParseMatch(matchRaw)
	if err != nil {
		return nil, err
	}

	// Step 3: persist everything in one atomic update
	parsedJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize parsed profile: %w", err)
	}

	parsedData := string(parsedJSON)
	update := &repositories.EvaluationUpdate{
		ParsedData:      &parsedData,
		Score:           &score,
		JobMatchSummary: &summary,
	}

	if err := s.candidateRepo.UpdateEvaluation(id, update); err != nil {
		return nil, err
	}

	log.Printf("✅ Candidate %d processed, score %d", id, score)

	return &models.ProcessResponse{
		ID:              id,
		ParsedData:      profile,
		Score:           score,
		JobMatchSummary: summary,
	}, nil
}
