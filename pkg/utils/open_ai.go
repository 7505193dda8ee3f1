package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIPlannerClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIPlannerClient builds the OpenAI-backed planner. The API key
// is a startup requirement for the generation endpoint, so its absence
// is fatal here rather than on the first request.
func NewOpenAIPlannerClient() *OpenAIPlannerClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return &OpenAIPlannerClient{
		client:      openai.NewClient(apiKey),
		model:       openai.GPT4oMini,
		temperature: 0.4,
		maxTokens:   6000,
	}
}

func (o *OpenAIPlannerClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel-planning assistant. Always answer with a single JSON document and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
