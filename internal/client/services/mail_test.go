package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intramail/intramail/internal/client/api"
	"github.com/intramail/intramail/internal/client/models"
	"github.com/intramail/intramail/internal/common"
)

type fakeAPI struct {
	sendFn func(ctx context.Context, to, subject, body string) (*api.Message, error)
	listFn func(ctx context.Context) ([]*api.Message, error)
}

func (f *fakeAPI) Register(ctx context.Context, email, name, password string) (*api.User, error) {
	return nil, nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	return nil, nil
}

func (f *fakeAPI) ListMessages(ctx context.Context) ([]*api.Message, error) {
	return f.listFn(ctx)
}

func (f *fakeAPI) SendMessage(ctx context.Context, to, subject, body string) (*api.Message, error) {
	return f.sendFn(ctx, to, subject, body)
}

func (f *fakeAPI) Ping(ctx context.Context) error  { return nil }
func (f *fakeAPI) SetTokenSource(fn func() string) {}
func (f *fakeAPI) OnUnauthorized(fn func())        {}

type fakeDrafts struct {
	store map[string]*models.Draft
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{store: map[string]*models.Draft{}}
}

func (f *fakeDrafts) Save(ctx context.Context, d *models.Draft) error {
	f.store[d.ID] = d
	return nil
}

func (f *fakeDrafts) Get(ctx context.Context, id string) (*models.Draft, error) {
	d, ok := f.store[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return d, nil
}

func (f *fakeDrafts) List(ctx context.Context) ([]*models.Draft, error) {
	var out []*models.Draft
	for _, d := range f.store {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDrafts) Delete(ctx context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func TestSaveDraft_AssignsID(t *testing.T) {
	s := NewMailService(&fakeAPI{}, newFakeDrafts())

	d, err := s.SaveDraft(context.Background(), &models.Draft{To: "bob@x", Subject: "s"})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
}

func TestSaveDraft_KeepsExistingID(t *testing.T) {
	s := NewMailService(&fakeAPI{}, newFakeDrafts())

	d, err := s.SaveDraft(context.Background(), &models.Draft{ID: "d1", To: "bob@x"})
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
}

func TestSendDraft_SendsAndDeletes(t *testing.T) {
	fd := newFakeDrafts()
	fd.store["d1"] = &models.Draft{ID: "d1", To: "bob@x", Subject: "hello", Body: "hi"}

	fc := &fakeAPI{sendFn: func(ctx context.Context, to, subject, body string) (*api.Message, error) {
		assert.Equal(t, "bob@x", to)
		assert.Equal(t, "hello", subject)
		return &api.Message{ID: "m1", To: to, Subject: subject, Body: body}, nil
	}}

	s := NewMailService(fc, fd)

	msg, err := s.SendDraft(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)

	_, err = s.GetDraft(context.Background(), "d1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSendDraft_SendFailureKeepsDraft(t *testing.T) {
	fd := newFakeDrafts()
	fd.store["d1"] = &models.Draft{ID: "d1", To: "bob@x", Subject: "hello"}

	fc := &fakeAPI{sendFn: func(ctx context.Context, to, subject, body string) (*api.Message, error) {
		return nil, errors.New("network down")
	}}

	s := NewMailService(fc, fd)

	_, err := s.SendDraft(context.Background(), "d1")
	require.Error(t, err)

	_, err = s.GetDraft(context.Background(), "d1")
	assert.NoError(t, err)
}

func TestSendDraft_MissingDraft(t *testing.T) {
	s := NewMailService(&fakeAPI{}, newFakeDrafts())

	_, err := s.SendDraft(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
