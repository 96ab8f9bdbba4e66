package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type MessageGateway struct {
	c *Client
}

func (g *MessageGateway) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/messages/conversations", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Conversation](raw, "conversations")
}

func (g *MessageGateway) CreateConversation(ctx context.Context, participantID int64) (*domain.Conversation, error) {
	body := map[string]int64{"participant_id": participantID}
	raw, err := g.c.request(ctx, http.MethodPost, "/messages/conversations", nil, body)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Conversation *domain.Conversation `json:"conversation"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Conversation, nil
}

func (g *MessageGateway) Messages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/messages/conversations/%d/messages", conversationID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Message](raw, "messages")
}

func (g *MessageGateway) SendMessage(ctx context.Context, conversationID int64, content string) (*domain.Message, error) {
	body := map[string]string{"content": content}
	raw, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/messages/conversations/%d/messages", conversationID), nil, body)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Message *domain.Message `json:"message"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Message, nil
}

func (g *MessageGateway) MarkRead(ctx context.Context, conversationID int64) error {
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/messages/conversations/%d/read", conversationID), nil, nil)
	return err
}
