package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const summarizeSystemPrompt = `You are a financial news editor. You will receive recent news headlines and summaries about a single company.

Write one neutral paragraph of under 100 words summarizing the news.

Rules:
1. Keep all facts: numbers, names, dates, percentages
2. No urgency words, no ALL CAPS, no emotional language
3. Add uncertainty to predictions (will -> may, could, might)
4. Do not speculate beyond the provided text

Output plain text only, no markdown, no preamble.`

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, symbol string, text string) (string, error) {
	userPrompt := fmt.Sprintf("Company: %s\n\nNews:\n%s", symbol, text)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarizeSystemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return cleanResponse(resp.Choices[0].Message.Content), nil
}
