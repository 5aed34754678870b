package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/config"
	"github.com/soulconnect/backend/internal/model/chat"
)

// contextTurns is how many prior turns accompany the current message.
const contextTurns = 4

const systemPrompt = "You are Soul Connect - a compassionate mental health AI assistant. " +
	"Be empathetic, supportive, and conversational like a caring friend. " +
	"Keep responses warm, human-like, and focused on mental health support."

// Service wraps the generative-text model behind a compiled prompt chain.
// It is a best-effort oracle: callers treat any error as "no answer" and
// move on to the next response strategy.
type Service struct {
	chain  compose.Runnable[map[string]any, *schema.Message]
	logger *zap.Logger
}

// NewService compiles the support-chat chain on top of the configured model.
func NewService(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chain: runnable, logger: logger}, nil
}

// Reply generates a supportive response given the recent conversation. The
// last contextTurns turns are replayed as alternating user/assistant
// messages ahead of the current query.
func (s *Service) Reply(ctx context.Context, history []chat.Turn, userMessage string) (string, error) {
	input := map[string]any{
		"system":  systemPrompt,
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run support chain: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("support chain returned no message")
	}

	text := strings.TrimSpace(response.Content)
	s.logger.Debug("generated response", zap.Int("length", len(text)))
	return text, nil
}

func buildHistoryMessages(history []chat.Turn) []*schema.Message {
	if len(history) > contextTurns {
		history = history[len(history)-contextTurns:]
	}

	messages := make([]*schema.Message, 0, len(history)*2)
	for _, turn := range history {
		if turn.UserMessage != "" {
			messages = append(messages, schema.UserMessage(turn.UserMessage))
		}
		if turn.BotResponse != "" {
			messages = append(messages, schema.AssistantMessage(turn.BotResponse, nil))
		}
	}
	return messages
}
