package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI is the secondary provider in the chain.
type OpenAI struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
}

func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{apiKey: apiKey, model: model, timeout: timeout}
}

func (o *OpenAI) Name() string  { return "openai" }
func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Configured() bool {
	return credentialConfigured(o.apiKey)
}

func (o *OpenAI) Timeout() time.Duration { return o.timeout }

func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	if o.client == nil {
		o.client = openai.NewClient(o.apiKey)
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxCompletionTokens: 2000,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty response from OpenAI")
	}
	return text, nil
}
