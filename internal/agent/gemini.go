package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiModel calls Google's Gemini API through the genai client.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a Gemini client with defaults.
func NewGeminiModel(ctx context.Context, apiKey string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModel{
		client: client,
		model:  "gemini-2.0-flash",
	}, nil
}

func (m *GeminiModel) Complete(ctx context.Context, system, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx,
		m.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini request failed: %w", err)
	}

	return result.Text(), nil
}

func (m *GeminiModel) Name() string {
	return "gemini:" + m.model
}
