// Package session owns the client-side session state: the in-memory token,
// its persisted copy in the local store, and the teardown triggered by 401
// responses.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/intramail/intramail/internal/client/api"
	"github.com/intramail/intramail/internal/client/repositories/metadata"
)

const (
	tokenKey = "token"
	emailKey = "email"
)

// ErrLoginInProgress is returned when a login overlaps with another one.
var ErrLoginInProgress = errors.New("login already in progress")

// Manager is the single serialization point for session state. Login,
// Restore and Logout are serialized against each other; Token and the 401
// teardown may be called concurrently from in-flight requests.
type Manager struct {
	client api.Client
	meta   metadata.Repository

	mu        sync.Mutex
	token     string
	email     string
	loggingIn bool
}

// NewManager wires the manager into the API client as its token source and
// 401 handler.
func NewManager(client api.Client, meta metadata.Repository) *Manager {
	m := &Manager{client: client, meta: meta}

	client.SetTokenSource(m.Token)
	client.OnUnauthorized(m.handleUnauthorized)

	return m
}

// Token returns the current in-memory token, empty when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Email returns the email of the logged-in user, empty when unknown.
func (m *Manager) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email
}

func (m *Manager) IsLoggedIn() bool {
	return m.Token() != ""
}

// Login authenticates against the server and, on success, installs the
// returned token as the default credential and persists it. Overlapping
// login attempts are rejected with ErrLoginInProgress. On failure the
// stored state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {

	m.mu.Lock()
	if m.loggingIn {
		m.mu.Unlock()
		return nil, ErrLoginInProgress
	}
	m.loggingIn = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loggingIn = false
		m.mu.Unlock()
	}()

	result, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.meta.Set(ctx, tokenKey, []byte(result.Token)); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.meta.Set(ctx, emailKey, []byte(result.User.Email)); err != nil {
		return nil, fmt.Errorf("failed to persist email: %w", err)
	}

	m.mu.Lock()
	m.token = result.Token
	m.email = result.User.Email
	m.mu.Unlock()

	return &result.User, nil
}

// Restore reads a previously persisted token and installs it without
// validating against the server. A stale token is discovered lazily on the
// first authenticated call, through the regular 401 teardown. Returns true
// when a token was found.
func (m *Manager) Restore(ctx context.Context) (bool, error) {
	token, err := m.meta.Get(ctx, tokenKey)
	if err != nil {
		return false, fmt.Errorf("failed to read persisted token: %w", err)
	}
	if len(token) == 0 {
		return false, nil
	}

	email, err := m.meta.Get(ctx, emailKey)
	if err != nil {
		return false, fmt.Errorf("failed to read persisted email: %w", err)
	}

	m.mu.Lock()
	m.token = string(token)
	m.email = string(email)
	m.mu.Unlock()

	return true, nil
}

// Logout clears the in-memory credential and removes the persisted copy.
// Calling it while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	wasLoggedIn := m.token != ""
	m.token = ""
	m.email = ""
	m.mu.Unlock()

	if !wasLoggedIn {
		return nil
	}

	if err := m.meta.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to delete persisted token: %w", err)
	}
	if err := m.meta.Delete(ctx, emailKey); err != nil {
		return fmt.Errorf("failed to delete persisted email: %w", err)
	}
	return nil
}

// handleUnauthorized tears the session down after any 401 response.
// It may fire concurrently from multiple in-flight requests; the logout
// path makes repeated invocations a no-op.
func (m *Manager) handleUnauthorized() {
	_ = m.Logout(context.Background())
}
