// Package google provides a ChatModel adapter for Google's Gemini API.
package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ChatModel implements model.ChatModel for Google Gemini.
//
// The genai client holds a network connection, so callers should Close
// the ChatModel when done with it.
type ChatModel struct {
	client    *genai.Client
	modelName string
}

// New creates a Google ChatModel. The context is used for client
// construction only. An empty modelName selects DefaultModel. Returns a
// *model.ConfigError when apiKey is empty.
func New(ctx context.Context, apiKey, modelName string) (*ChatModel, error) {
	if apiKey == "" {
		return nil, &model.ConfigError{Provider: "google", Message: "GOOGLE_API_KEY is required"}
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &model.ConfigError{
			Provider: "google",
			Message:  fmt.Sprintf("failed to create Gemini client: %v", err),
		}
	}

	return &ChatModel{client: client, modelName: modelName}, nil
}

// Chat implements the model.ChatModel interface.
//
// Gemini has no separate system role in this API surface; all message
// content is passed as ordered text parts of a single generation call.
func (m *ChatModel) Chat(ctx context.Context, messages []model.Message) (model.ChatOut, error) {
	if err := ctx.Err(); err != nil {
		return model.ChatOut{}, err
	}

	var parts []genai.Part
	for _, msg := range messages {
		if msg.Content != "" {
			parts = append(parts, genai.Text(msg.Content))
		}
	}

	genModel := m.client.GenerativeModel(m.modelName)
	resp, err := genModel.GenerateContent(ctx, parts...)
	if err != nil {
		return model.ChatOut{}, model.WrapProviderError("google", err)
	}

	var text string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
	}
	if text == "" {
		return model.ChatOut{}, model.WrapProviderError("google", errors.New("empty completion response"))
	}

	out := model.ChatOut{Text: text}
	if resp.UsageMetadata != nil {
		out.Tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return out, nil
}

// Close releases the underlying genai client connection.
func (m *ChatModel) Close() error {
	return m.client.Close()
}
