package api

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure ChatClient implements domain.ChatAPI.
var _ domain.ChatAPI = (*ChatClient)(nil)

// ChatClient implements domain.ChatAPI over the /chat resource.
type ChatClient struct {
	client *Client
}

// NewChatClient creates a ChatClient sharing the given base client.
func NewChatClient(client *Client) *ChatClient {
	return &ChatClient{client: client}
}

// Ask relays a message to the assistant and returns its reply.
func (cc *ChatClient) Ask(ctx context.Context, message string) (string, error) {
	body := struct {
		Message string `json:"message"`
	}{Message: message}

	var wire struct {
		Response string `json:"response"`
	}
	if err := cc.client.doJSON(ctx, "POST", "/chat/ask", body, &wire); err != nil {
		return "", err
	}
	return wire.Response, nil
}
