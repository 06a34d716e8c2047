// Package anthropic provides a ChatModel adapter for Anthropic's Claude API.
package anthropic

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

// DefaultModel is the Claude model used when none is configured.
const DefaultModel = "claude-3-5-haiku-latest"

const maxTokens = 4096

// ChatModel implements model.ChatModel for Anthropic.
//
// Anthropic takes the system prompt as a separate request parameter, so
// system messages are extracted from the conversation before the call.
type ChatModel struct {
	client    *anthropic.Client
	modelName string
}

// New creates an Anthropic ChatModel. An empty modelName selects
// DefaultModel. Returns a *model.ConfigError when apiKey is empty.
func New(apiKey, modelName string) (*ChatModel, error) {
	if apiKey == "" {
		return nil, &model.ConfigError{Provider: "anthropic", Message: "ANTHROPIC_API_KEY is required"}
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &ChatModel{client: &client, modelName: modelName}, nil
}

// Chat implements the model.ChatModel interface.
func (m *ChatModel) Chat(ctx context.Context, messages []model.Message) (model.ChatOut, error) {
	if err := ctx.Err(); err != nil {
		return model.ChatOut{}, err
	}

	systemPrompt, conversation := extractSystemPrompt(messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.modelName),
		MaxTokens: maxTokens,
		Messages:  convertMessages(conversation),
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	message, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return model.ChatOut{}, model.WrapProviderError("anthropic", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return model.ChatOut{}, model.WrapProviderError("anthropic", errors.New("empty completion response"))
	}

	return model.ChatOut{
		Text:   text,
		Tokens: int(message.Usage.InputTokens + message.Usage.OutputTokens),
	}, nil
}

// extractSystemPrompt separates system messages from the conversation.
// Multiple system messages are concatenated.
func extractSystemPrompt(messages []model.Message) (string, []model.Message) {
	var systemPrompt string
	var conversation []model.Message
	for _, msg := range messages {
		if msg.Role == model.RoleSystem {
			if systemPrompt != "" {
				systemPrompt += "\n\n"
			}
			systemPrompt += msg.Content
		} else {
			conversation = append(conversation, msg)
		}
	}
	return systemPrompt, conversation
}

func convertMessages(messages []model.Message) []anthropic.MessageParam {
	// Anthropic requires at least one user message; a conversation that
	// was only a system prompt becomes a single empty-content turn the
	// prompt fully drives.
	if len(messages) == 0 {
		return []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("Proceed.")),
		}
	}

	converted := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == model.RoleAssistant {
			converted = append(converted, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		} else {
			converted = append(converted, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return converted
}
