package service

import (
	"context"
	"fmt"
	"strings"

	"marketplace-api/internal/model"
)

type ContactStore interface {
	Create(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error)
}

type ContactService struct {
	messages ContactStore
}

func NewContactService(messages ContactStore) *ContactService {
	return &ContactService{messages: messages}
}

func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (model.ContactMessage, error) {
	msg := model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return model.ContactMessage{}, fmt.Errorf("submit contact: %w", model.ErrInvalidInput)
	}

	saved, err := s.messages.Create(ctx, msg)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("submit contact: %w", err)
	}
	return saved, nil
}
