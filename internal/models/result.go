package models

type UploadResponse struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
}

type ProcessRequest struct {
	JobDescription string `json:"job_description"`
}

type ProcessResponse struct {
	ID              uint              `json:"id"`
	ParsedData      *CandidateProfile `json:"parsed_data"`
	Score           int               `json:"score"`
	JobMatchSummary string            `json:"job_match_summary"`
}

type CandidateSummary struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Score    *int   `json:"score,omitempty"`
}

type CandidateDetail struct {
	ID              uint              `json:"id"`
	Filename        string            `json:"filename"`
	TextContent     string            `json:"text_content"`
	ParsedData      *CandidateProfile `json:"parsed_data,omitempty"`
	Score           *int              `json:"score,omitempty"`
	JobMatchSummary *string           `json:"job_match_summary,omitempty"`
}
