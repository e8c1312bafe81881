package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"resume-screener/internal/models"
)

// ErrInvalidScore is returned when a match response carries a score that is
// missing, non-numeric, or outside [0,100]. Out-of-range scores are rejected,
// never clamped.
var ErrInvalidScore = errors.New("score missing, non-numeric, or outside the 0-100 range")

// UnparseableResponseError carries the raw model output so it can be logged
// for diagnostics when no JSON object could be located or decoded.
type UnparseableResponseError struct {
	Raw string
	Err error
}

func (e *UnparseableResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unparseable model response: %v", e.Err)
	}
	return "unparseable model response: no JSON object found"
}

func (e *UnparseableResponseError) Unwrap() error {
	return e.Err
}

type ResponseParser interface {
	ParseProfile(raw string) (*models.CandidateProfile, error)
	ParseMatch(raw string) (int, string, error)
}

type responseParser struct{}

func NewResponseParser() ResponseParser {
	return &responseParser{}
}

// ParseProfile decodes the parse prompt's response into a profile. Missing
// fields get the "N/A" sentinel rather than failing the parse.
func (p *responseParser) ParseProfile(raw string) (*models.CandidateProfile, error) {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return nil, &UnparseableResponseError{Raw: raw}
	}

	var profile models.CandidateProfile
	if err := json.Unmarshal([]byte(jsonStr), &profile); err != nil {
		return nil, &UnparseableResponseError{Raw: raw, Err: err}
	}

	applyProfileDefaults(&profile)
	return &profile, nil
}

type matchResponse struct {
	Score           json.RawMessage `json:"score"`
	JobMatchSummary string          `json:"job_match_summary"`
}

// ParseMatch decodes the match prompt's response into a validated score and a
// summary.
func (p *responseParser) ParseMatch(raw string) (int, string, error) {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return 0, "", &UnparseableResponseError{Raw: raw}
	}

	var match matchResponse
	if err := json.Unmarshal([]byte(jsonStr), &match); err != nil {
		return 0, "", &UnparseableResponseError{Raw: raw, Err: err}
	}

	value, err := coerceScore(match.Score)
	if err != nil {
		return 0, "", err
	}

	if value < 0 || value > 100 {
		return 0, "", fmt.Errorf("%w: got %v", ErrInvalidScore, value)
	}

	summary := strings.TrimSpace(match.JobMatchSummary)
	if summary == "" {
		summary = models.FieldUnknown
	}

	return int(math.Round(value)), summary, nil
}

// coerceScore turns the raw score value into a float. The model sometimes
// quotes the number; anything else non-numeric fails with ErrInvalidScore.
func coerceScore(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, ErrInvalidScore
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		if math.IsNaN(value) {
			return 0, ErrInvalidScore
		}
		return value, nil
	}

	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(quoted), 64)
		if err != nil {
			return 0, ErrInvalidScore
		}
		return value, nil
	}

	return 0, ErrInvalidScore
}

// extractJSON locates a JSON object or array inside text that may wrap it in
// markdown fences or prose. Returns false when no candidate JSON exists.
func extractJSON(text string) (string, bool) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1], true
	}

	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1], true
	}

	return "", false
}

func applyProfileDefaults(profile *models.CandidateProfile) {
	for _, field := range []*string{
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.LinkedIn,
		&profile.Summary,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = models.FieldUnknown
		}
	}

	if profile.Education == nil {
		profile.Education = []models.Education{}
	}
	if profile.Experience == nil {
		profile.Experience = []models.Experience{}
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
}
