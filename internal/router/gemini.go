package router

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ayra-my/ayra/internal/models"
)

// GeminiBackend is the default conversational backend, speaking the Ayra
// persona through the Google GenAI API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

func (b *GeminiBackend) Generate(ctx context.Context, req Request) (string, error) {
	contents := make([]*genai.Content, 0, historyWindow+1)
	for _, msg := range trimHistory(req.History) {
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ayraSystemPrompt+profileBlock(req.Profile), genai.RoleUser),
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
