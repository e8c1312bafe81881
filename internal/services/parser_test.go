package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener/internal/models"
)

func TestParseProfileExtractsJSONFromWrappedText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "bare json",
			raw:  `{"name":"Jane Doe","email":"jane@x.com","skills":["Go"]}`,
		},
		{
			name: "markdown fences",
			raw:  "```json\n{\"name\":\"Jane Doe\",\"email\":\"jane@x.com\",\"skills\":[\"Go\"]}\n```",
		},
		{
			name: "surrounding prose",
			raw:  "Here is the extracted data:\n{\"name\":\"Jane Doe\",\"email\":\"jane@x.com\",\"skills\":[\"Go\"]}\nLet me know if you need anything else!",
		},
	}

	parser := NewResponseParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := parser.ParseProfile(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, "Jane Doe", profile.Name)
			assert.Equal(t, "jane@x.com", profile.Email)
			assert.Equal(t, []string{"Go"}, profile.Skills)
		})
	}
}

func TestParseProfileDefaultsMissingFields(t *testing.T) {
	parser := NewResponseParser()

	profile, err := parser.ParseProfile(`{"name":"Jane Doe"}`)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, models.FieldUnknown, profile.Email)
	assert.Equal(t, models.FieldUnknown, profile.Phone)
	assert.Equal(t, models.FieldUnknown, profile.LinkedIn)
	assert.Equal(t, models.FieldUnknown, profile.Summary)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
}

func TestParseProfileNoJSON(t *testing.T) {
	parser := NewResponseParser()

	_, err := parser.ParseProfile("I'm sorry, I cannot process this resume.")
	require.Error(t, err)

	var parseErr *UnparseableResponseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Raw, "cannot process")
}

func TestParseProfileMalformedJSON(t *testing.T) {
	parser := NewResponseParser()

	_, err := parser.ParseProfile(`{"name": "Jane Doe", "email": `)
	var parseErr *UnparseableResponseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseMatch(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantScore   int
		wantSummary string
		wantErr     error
		unparseable bool
	}{
		{
			name:        "valid",
			raw:         `{"score": 82, "job_match_summary": "Strong fit"}`,
			wantScore:   82,
			wantSummary: "Strong fit",
		},
		{
			name:        "fenced",
			raw:         "```json\n{\"score\": 100, \"job_match_summary\": \"Perfect match\"}\n```",
			wantScore:   100,
			wantSummary: "Perfect match",
		},
		{
			name:        "zero score is valid",
			raw:         `{"score": 0, "job_match_summary": "No overlap"}`,
			wantScore:   0,
			wantSummary: "No overlap",
		},
		{
			name:        "fractional score coerced",
			raw:         `{"score": 74.6, "job_match_summary": "Decent fit"}`,
			wantScore:   75,
			wantSummary: "Decent fit",
		},
		{
			name:        "missing summary gets sentinel",
			raw:         `{"score": 50}`,
			wantScore:   50,
			wantSummary: models.FieldUnknown,
		},
		{
			name:    "score above range",
			raw:     `{"score": 150, "job_match_summary": "x"}`,
			wantErr: ErrInvalidScore,
		},
		{
			name:    "negative score",
			raw:     `{"score": -3, "job_match_summary": "x"}`,
			wantErr: ErrInvalidScore,
		},
		{
			name:    "missing score",
			raw:     `{"job_match_summary": "x"}`,
			wantErr: ErrInvalidScore,
		},
		{
			name:    "non-numeric score",
			raw:     `{"score": "eighty", "job_match_summary": "x"}`,
			wantErr: ErrInvalidScore,
		},
		{
			name:    "null score",
			raw:     `{"score": null, "job_match_summary": "x"}`,
			wantErr: ErrInvalidScore,
		},
		{
			name:        "quoted numeric score coerced",
			raw:         `{"score": "82", "job_match_summary": "Strong fit"}`,
			wantScore:   82,
			wantSummary: "Strong fit",
		},
		{
			name:        "no json at all",
			raw:         "Score: 85/100. Looks like a decent candidate overall.",
			unparseable: true,
		},
	}

	parser := NewResponseParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, summary, err := parser.ParseMatch(tt.raw)

			if tt.unparseable {
				var parseErr *UnparseableResponseError
				require.ErrorAs(t, err, &parseErr)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"object", `{"a":1}`, `{"a":1}`, true},
		{"object in prose", `before {"a":1} after`, `{"a":1}`, true},
		{"array", `[1,2,3]`, `[1,2,3]`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"nothing", "plain text only", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
