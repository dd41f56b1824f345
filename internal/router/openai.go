package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ayra-my/ayra/internal/models"
)

// OpenAIBackend serves any provider speaking the OpenAI chat-completions
// dialect; DeepSeek and the Claude gateway both do.
type OpenAIBackend struct {
	client       *openai.Client
	model        string
	systemPrompt string
	maxTokens    int
	temperature  float32
}

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// NewDeepSeekBackend builds the coding/math backend ("Jiji").
func NewDeepSeekBackend(apiKey, baseURL, model string, maxTokens int, temperature float64) (*OpenAIBackend, error) {
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}
	if model == "" {
		model = "deepseek-chat"
	}
	return newOpenAIBackend(apiKey, baseURL, model, deepseekSystemPrompt, maxTokens, temperature)
}

// NewClaudeBackend builds the ethics/professional-writing backend
// ("Fikri") against an OpenAI-compatible Claude endpoint.
func NewClaudeBackend(apiKey, baseURL, model string, maxTokens int, temperature float64) (*OpenAIBackend, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("claude base URL is required")
	}
	if model == "" {
		model = "claude-3-5-sonnet"
	}
	return newOpenAIBackend(apiKey, baseURL, model, claudeSystemPrompt, maxTokens, temperature)
}

func newOpenAIBackend(apiKey, baseURL, model, systemPrompt string, maxTokens int, temperature float64) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenAIBackend{
		client:       openai.NewClientWithConfig(config),
		model:        model,
		systemPrompt: systemPrompt,
		maxTokens:    maxTokens,
		temperature:  float32(temperature),
	}, nil
}

func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, historyWindow+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: b.systemPrompt + profileBlock(req.Profile),
	})

	for _, msg := range trimHistory(req.History) {
		role := openai.ChatMessageRoleUser
		if msg.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    messages,
		MaxTokens:   b.maxTokens,
		Temperature: b.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty completion returned")
	}
	return text, nil
}
