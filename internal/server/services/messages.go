package services

import (
	"context"

	"github.com/intramail/intramail/internal/common"
	"github.com/intramail/intramail/internal/server/auth"
	"github.com/intramail/intramail/internal/server/models"
	"github.com/intramail/intramail/internal/server/repositories/messages"
)

// DefaultListLimit caps mailbox listings. There is no pagination cursor.
const DefaultListLimit = 100

type MessageService struct {
	repo messages.Repository
}

func NewMessageService(repo messages.Repository) *MessageService {
	return &MessageService{repo: repo}
}

// Send inserts a message from the authenticated identity. The sender address
// always comes from the identity, never from the request body. Recipient and
// subject are required; the body is optional.
func (s *MessageService) Send(ctx context.Context, identity *auth.Identity, to, subject, body string) (*models.Message, error) {

	if identity == nil {
		return nil, common.ErrorUnauthorized
	}
	if to == "" || subject == "" {
		return nil, common.ErrorValidation
	}

	msg, err := s.repo.Insert(ctx, &models.Message{
		FromEmail: identity.Email,
		ToEmail:   to,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return msg, nil
}

// ListFor returns the identity's mailbox: messages it sent or received,
// newest first, capped at DefaultListLimit.
func (s *MessageService) ListFor(ctx context.Context, identity *auth.Identity) ([]*models.Message, error) {

	if identity == nil {
		return nil, common.ErrorUnauthorized
	}

	msgs, err := s.repo.ListForEmail(ctx, identity.Email, DefaultListLimit)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return msgs, nil
}
