package speech

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const defaultChatModel = "gpt-4o-2024-08-06"

type OpenAIClient struct {
	api       *openai.Client
	chatModel string
}

func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &OpenAIClient{
		api:       openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		chatModel: model,
	}
}

// Transcribe runs Whisper over the audio file. The hint primes the
// model with the current menu names and domain keywords so item names
// come back in canonical form.
func (c *OpenAIClient) Transcribe(ctx context.Context, audioPath, hint string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:       openai.Whisper1,
		FilePath:    audioPath,
		Language:    "en",
		Prompt:      hint,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Extract asks the chat model for the strict-JSON order payload.
// Response format is pinned to a JSON object so the output never
// carries markdown fences or prose.
func (c *OpenAIClient) Extract(ctx context.Context, systemPrompt, transcript string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
