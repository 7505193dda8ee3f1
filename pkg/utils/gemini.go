package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

// NewGeminiPlannerClient builds the Gemini-backed planner, used when
// LLM_PROVIDER=gemini.
func NewGeminiPlannerClient(apiKey, model string) (*GeminiPlannerClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiPlannerClient) Complete(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.4)
	m.SetTopP(0.8)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
