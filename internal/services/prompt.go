package services

import (
	"fmt"
)

// profileSchema is the JSON shape the parse prompt demands from the model.
// The parser's defaults mirror it, so changing the expected schema only
// requires touching this file.
const profileSchema = `{
  "name": "string",
  "email": "string",
  "phone": "string",
  "linkedin": "string",
  "education": [
    {"degree": "string", "major": "string", "university": "string", "years": "string"}
  ],
  "experience": [
    {"title": "string", "company": "string", "years": "string", "description": "string"}
  ],
  "skills": ["skill1", "skill2"],
  "summary": "string"
}`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildParsePrompt creates the prompt asking the model to turn raw resume
// text into the structured profile schema.
func (pb *PromptBuilder) BuildParsePrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser.

Analyze the following resume text and extract the information below as a single JSON object.
If a field is not found, use "N/A" for strings and an empty array for lists.
Return ONLY valid JSON matching the expected format, with no markdown, prose, or text before or after it.

RESUME TEXT:
%s

Expected JSON format:
%s`, resumeText, profileSchema)
}

// BuildMatchPrompt creates the prompt asking the model to score a resume
// against a job description.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert HR recruiter evaluating how well a candidate's resume matches a job description.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Evaluate the candidate against the job description. In your evaluation cover:
1. Why this candidate is or is not a good fit.
2. Key strengths directly relevant to the job.
3. Key gaps where the candidate might not fully meet the requirements.

Return your response in the following JSON format:
{
  "score": <integer 0-100, overall match score>,
  "job_match_summary": "<3-5 sentence qualitative evaluation>"
}

Base all reasoning only on the provided text. Do not assume experience not explicitly mentioned.
Return ONLY valid JSON, with no markdown, prose, or text before or after it.`,
		jobDescription, resumeText)
}
