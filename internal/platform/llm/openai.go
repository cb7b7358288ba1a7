// Package llm wraps the external language-model service used for symptom
// classification. The rest of the system depends only on the Generator
// interface and treats the model as an untrusted text producer.
package llm

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Generator produces free text for a prompt. Implementations must honor the
// context deadline; callers convert any error into the triage fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the model call succeeds but yields no
// choices.
var ErrEmptyResponse = errors.New("llm: empty response")

// defaultModel is spelled out because the pinned SDK release predates a
// constant for it.
const defaultModel = "gpt-4o-mini"

const defaultTimeout = 30 * time.Second

// OpenAIClient is a Generator backed by the OpenAI chat-completion API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient constructs an OpenAI-backed generator. An empty model
// defaults to gpt-4o-mini, a zero timeout to 30 seconds.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Generate sends a single-turn prompt and returns the raw assistant text.
// One attempt only; retries are the caller's decision.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
