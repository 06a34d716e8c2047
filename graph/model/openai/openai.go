// Package openai provides a ChatModel adapter for OpenAI's API.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

// DefaultModel is the OpenAI model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// ChatModel implements model.ChatModel for OpenAI.
//
// The underlying SDK client is safe for concurrent use, so one
// ChatModel may be shared across runs.
type ChatModel struct {
	client    *openai.Client
	modelName string
}

// New creates an OpenAI ChatModel. An empty modelName selects
// DefaultModel. Returns a *model.ConfigError when apiKey is empty.
func New(apiKey, modelName string) (*ChatModel, error) {
	if apiKey == "" {
		return nil, &model.ConfigError{Provider: "openai", Message: "OPENAI_API_KEY is required"}
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &ChatModel{client: &client, modelName: modelName}, nil
}

// Chat implements the model.ChatModel interface.
func (m *ChatModel) Chat(ctx context.Context, messages []model.Message) (model.ChatOut, error) {
	if err := ctx.Err(); err != nil {
		return model.ChatOut{}, err
	}

	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(m.modelName),
		Messages: convertMessages(messages),
	})
	if err != nil {
		return model.ChatOut{}, model.WrapProviderError("openai", err)
	}
	if len(completion.Choices) == 0 {
		return model.ChatOut{}, model.WrapProviderError("openai", errors.New("empty completion response"))
	}

	return model.ChatOut{
		Text:   completion.Choices[0].Message.Content,
		Tokens: int(completion.Usage.TotalTokens),
	}, nil
}

func convertMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			converted = append(converted, openai.SystemMessage(msg.Content))
		case model.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(msg.Content))
		default:
			converted = append(converted, openai.UserMessage(msg.Content))
		}
	}
	return converted
}
