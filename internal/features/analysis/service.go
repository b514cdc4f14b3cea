package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/ModesteNGOMA/geofuite/internal/features/reports"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
)

// Service wraps the Gemini text-generation endpoint. It is the only
// network-dependent component; everything else works fully offline.
type Service struct {
	client *genai.Client
	model  string
}

// NewService creates the advisory bridge. An empty API key yields a
// disabled service whose Analyze always returns the no-result sentinel
// without attempting a network call.
func NewService(ctx context.Context, apiKey, model string) (*Service, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, AI analysis disabled")
		return &Service{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Service{client: client, model: model}, nil
}

// Enabled reports whether a credential is configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// responseSchema constrains the model output to the advisory shape.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"severity": {
			Type: genai.TypeString,
			Enum: AllSeverities,
		},
		"summary": {
			Type: genai.TypeString,
		},
		"recommendedStatus": {
			Type: genai.TypeString,
			Enum: []string{
				string(reports.StatusNew),
				string(reports.StatusInProgress),
				string(reports.StatusResolved),
				string(reports.StatusUrgent),
			},
		},
	},
	Required: []string{"severity", "summary", "recommendedStatus"},
}

// Analyze sends the description to the model and parses the constrained
// JSON response. Every failure path (disabled service, transport error,
// empty response, parse failure, out-of-enum values) returns nil — the
// no-result sentinel — and never an error past this boundary.
func (s *Service) Analyze(ctx context.Context, comments, address string) *Result {
	if s.client == nil {
		return nil
	}

	prompt := fmt.Sprintf(`Analyse ce rapport de fuite d'eau/gaz.
Adresse: %s
Description: %s

Détermine la sévérité (Low, Medium, High, Critical), génère un résumé technique court, et suggère un statut (NEW, IN_PROGRESS, RESOLVED, URGENT).`, address, comments)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		logger.Warn("gemini analysis failed: %v", err)
		return nil
	}

	text := resp.Text()
	if text == "" {
		logger.Warn("gemini analysis returned an empty response")
		return nil
	}

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		logger.Warn("gemini analysis returned unparseable payload: %v", err)
		return nil
	}

	if !result.Valid() {
		logger.Warn("gemini analysis returned out-of-enum values: severity=%q status=%q",
			result.Severity, result.RecommendedStatus)
		return nil
	}

	return &result
}
