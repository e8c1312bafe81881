package models

import (
	"encoding/json"
	"time"
)

// FieldUnknown is the sentinel value used for profile fields the model could
// not find in the resume text.
const FieldUnknown = "N/A"

// Candidate is one uploaded resume and everything derived from it. The row is
// created at upload time with only Filename and TextContent set; ParsedData,
// Score and JobMatchSummary are filled in when a process request completes.
type Candidate struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename        string    `gorm:"type:text;not null" json:"filename"`
	TextContent     string    `gorm:"type:text;not null" json:"text_content"`
	ParsedData      *string   `gorm:"type:text" json:"parsed_data,omitempty"`
	Score           *int      `gorm:"type:integer" json:"score,omitempty"`
	JobMatchSummary *string   `gorm:"type:text" json:"job_match_summary,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Profile decodes ParsedData. Returns nil if the candidate has not been
// processed yet or the stored JSON is unreadable.
func (c *Candidate) Profile() *CandidateProfile {
	if c.ParsedData == nil || *c.ParsedData == "" {
		return nil
	}

	var profile CandidateProfile
	if err := json.Unmarshal([]byte(*c.ParsedData), &profile); err != nil {
		return nil
	}

	return &profile
}

// CandidateProfile is the structured view of a resume as returned by the
// model's parse prompt.
type CandidateProfile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	LinkedIn   string       `json:"linkedin"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`
	Summary    string       `json:"summary"`
}

type Education struct {
	Degree     string `json:"degree"`
	Major      string `json:"major"`
	University string `json:"university"`
	Years      string `json:"years"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Years       string `json:"years"`
	Description string `json:"description"`
}
