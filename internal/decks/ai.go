package decks

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"quizdeck/internal/quiz"
)

// maxGenerateAttempts bounds retries when the model returns a deck that
// fails validation.
const maxGenerateAttempts = 3

const systemPrompt = `You are a quiz author. Generate multiple-choice trivia questions.
Respond with a JSON object of the form:
{"questions": [{"id": 1, "category": "...", "difficulty": "easy|medium|hard",
"prompt": "...", "options": [{"id": "A", "text": "..."}, ... exactly five options
with ids A, B, C, D, E in order], "correct_option_id": "A",
"explanation": "one-sentence rationale"}]}
Exactly one option is correct. Keep prompts under 120 characters.`

// AISource generates a deck through an OpenAI-compatible chat API.
type AISource struct {
	api      *openai.Client
	model    string
	category string
	count    int
}

// NewAISource creates a generator client. baseURL may be empty for the
// default OpenAI endpoint; any compatible server works.
func NewAISource(baseURL, apiKey, model, category string, count int) *AISource {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AISource{
		api:      openai.NewClientWithConfig(cfg),
		model:    model,
		category: category,
		count:    count,
	}
}

// Load asks the model for a deck, retrying on responses that fail the
// question invariants.
func (s *AISource) Load(ctx context.Context) ([]quiz.Question, error) {
	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		questions, err := s.generate(ctx)
		if err == nil {
			return questions, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("generate deck after %d attempts: %w", maxGenerateAttempts, lastErr)
}

func (s *AISource) generate(ctx context.Context) ([]quiz.Question, error) {
	userPrompt := fmt.Sprintf("Generate %d questions.", s.count)
	if s.category != "" {
		userPrompt = fmt.Sprintf("Generate %d questions about %s.", s.count, s.category)
	}

	resp, err := s.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("deck generation API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deck generation returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	var payload struct {
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse generated deck: %w", err)
	}
	if err := quiz.ValidateDeck(payload.Questions); err != nil {
		return nil, fmt.Errorf("generated deck: %w", err)
	}
	return payload.Questions, nil
}
