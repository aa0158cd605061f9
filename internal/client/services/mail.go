package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/intramail/intramail/internal/client/api"
	"github.com/intramail/intramail/internal/client/models"
	"github.com/intramail/intramail/internal/client/repositories/drafts"
)

// MailService covers the inbox and compose operations, plus the local
// drafts store.
type MailService interface {
	Inbox(ctx context.Context) ([]*api.Message, error)
	Send(ctx context.Context, to, subject, body string) (*api.Message, error)

	SaveDraft(ctx context.Context, draft *models.Draft) (*models.Draft, error)
	ListDrafts(ctx context.Context) ([]*models.Draft, error)
	GetDraft(ctx context.Context, id string) (*models.Draft, error)
	DeleteDraft(ctx context.Context, id string) error
	SendDraft(ctx context.Context, id string) (*api.Message, error)
}

type mailService struct {
	client api.Client
	drafts drafts.Repository
}

func NewMailService(client api.Client, dr drafts.Repository) MailService {
	return &mailService{client: client, drafts: dr}
}

func (m *mailService) Inbox(ctx context.Context) ([]*api.Message, error) {
	return m.client.ListMessages(ctx)
}

func (m *mailService) Send(ctx context.Context, to, subject, body string) (*api.Message, error) {
	return m.client.SendMessage(ctx, to, subject, body)
}

// SaveDraft stores the draft locally, assigning an id on first save.
func (m *mailService) SaveDraft(ctx context.Context, draft *models.Draft) (*models.Draft, error) {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if err := m.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (m *mailService) ListDrafts(ctx context.Context) ([]*models.Draft, error) {
	return m.drafts.List(ctx)
}

func (m *mailService) GetDraft(ctx context.Context, id string) (*models.Draft, error) {
	return m.drafts.Get(ctx, id)
}

func (m *mailService) DeleteDraft(ctx context.Context, id string) error {
	return m.drafts.Delete(ctx, id)
}

// SendDraft sends the stored draft and removes it on success.
func (m *mailService) SendDraft(ctx context.Context, id string) (*api.Message, error) {
	draft, err := m.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	msg, err := m.client.SendMessage(ctx, draft.To, draft.Subject, draft.Body)
	if err != nil {
		return nil, err
	}

	if err := m.drafts.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("sent but failed to delete draft[%s]: %w", id, err)
	}

	return msg, nil
}
