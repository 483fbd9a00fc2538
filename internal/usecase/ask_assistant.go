package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// AskAssistantInput contains the user's message.
type AskAssistantInput struct {
	Message string
}

// AskAssistantOutput contains the assistant's reply.
type AskAssistantOutput struct {
	Reply string
}

// AskAssistant relays a message to the assistant endpoint.
type AskAssistant struct {
	api  domain.ChatAPI
	sess Session
}

// NewAskAssistant creates a new AskAssistant use case.
func NewAskAssistant(api domain.ChatAPI, sess Session) *AskAssistant {
	return &AskAssistant{api: api, sess: sess}
}

// Execute sends the message and returns the reply.
func (uc *AskAssistant) Execute(ctx context.Context, in AskAssistantInput) (*AskAssistantOutput, error) {
	if in.Message == "" {
		return nil, errors.New("message cannot be empty")
	}
	reply, err := uc.api.Ask(ctx, in.Message)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		return nil, fmt.Errorf("ask assistant: %w", err)
	}
	return &AskAssistantOutput{Reply: reply}, nil
}
