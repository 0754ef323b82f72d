package responder

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a warm Vedic astrologer chatting with a client.
Answer in one or two short sentences. Mention planets, houses or dashas where it fits.
Never ask for payment details.`

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type GPTResponder struct {
	client      completionClient
	model       string
	maxTokens   int
	temperature float64
	fallback    Responder
	logger      *zap.Logger
}

func NewGPTResponder(apiKey string, model string, maxTokens int, temperature float64, fallback Responder, logger *zap.Logger) *GPTResponder {
	return newGPTResponder(openai.NewClient(apiKey), model, maxTokens, temperature, fallback, logger)
}

func newGPTResponder(client completionClient, model string, maxTokens int, temperature float64, fallback Responder, logger *zap.Logger) *GPTResponder {
	if fallback == nil {
		fallback = NewCannedResponder()
	}
	return &GPTResponder{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    fallback,
		logger:      logger,
	}
}

func (g *GPTResponder) Reply(ctx context.Context, prompt string) string {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get GPT reply", zap.Error(err))
		return g.fallback.Reply(ctx, prompt)
	}

	text, err := firstChoice(resp)
	if err != nil {
		g.logger.Error("Unusable GPT reply", zap.Error(err))
		return g.fallback.Reply(ctx, prompt)
	}
	return text
}

func firstChoice(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response %q", resp.ID)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty content in response %q", resp.ID)
	}
	return text, nil
}
