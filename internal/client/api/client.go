// Package api is the REST client for the mail backend. It attaches the
// session token to outgoing requests through a wrapping RoundTripper and
// notifies a registered handler whenever any response comes back 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/intramail/intramail/internal/client/config"
	"github.com/intramail/intramail/internal/common"
)

// Client talks to the backend REST API.
type Client interface {
	Register(ctx context.Context, email, name, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ListMessages(ctx context.Context) ([]*Message, error)
	SendMessage(ctx context.Context, to, subject, body string) (*Message, error)
	Ping(ctx context.Context) error

	SetTokenSource(fn func() string)
	OnUnauthorized(fn func())
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// restClient is the concrete Client over net/http.
type restClient struct {
	baseURL string
	http    *http.Client
	auth    *authTransport
}

// authTransport injects the bearer token into every request and fires the
// unauthorized handler on any 401 response, regardless of which call
// produced it. The handler may be invoked concurrently from in-flight
// requests and is expected to be idempotent.
type authTransport struct {
	base http.RoundTripper

	mu      sync.RWMutex
	tokenFn func() string
	on401   func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.RLock()
	tokenFn, on401 := t.tokenFn, t.on401
	t.mu.RUnlock()

	if tokenFn != nil {
		if token := tokenFn(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && on401 != nil {
		on401()
	}

	return resp, nil
}

func NewClient(cfg *config.Config) Client {
	auth := &authTransport{base: http.DefaultTransport}
	return &restClient{
		baseURL: strings.TrimRight(cfg.ServerBaseURL, "/"),
		http: &http.Client{
			Transport: auth,
			Timeout:   cfg.RequestTimeout,
		},
		auth: auth,
	}
}

// SetTokenSource installs the function the transport calls to obtain the
// current token. An empty result means the request goes out anonymous.
func (c *restClient) SetTokenSource(fn func() string) {
	c.auth.mu.Lock()
	defer c.auth.mu.Unlock()
	c.auth.tokenFn = fn
}

// OnUnauthorized registers the global 401 handler.
func (c *restClient) OnUnauthorized(fn func()) {
	c.auth.mu.Lock()
	defer c.auth.mu.Unlock()
	c.auth.on401 = fn
}

type errorResponse struct {
	Error string `json:"error"`
}

// mapStatus converts an error response into the shared error taxonomy so
// callers can match with errors.Is.
func mapStatus(status int, code string) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusConflict:
		sentinel = common.ErrorConflict
	default:
		sentinel = common.ErrorInternal
	}
	if code == "" {
		code = http.StatusText(status)
	}
	return fmt.Errorf("%s: %w", code, sentinel)
}

// do issues one JSON request and decodes the response body into out
// when the status matches wantStatus. Any other status is mapped into
// the shared error taxonomy.
func (c *restClient) do(ctx context.Context, method, path string, in any, wantStatus int, out any) error {

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return mapStatus(resp.StatusCode, er.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *restClient) Register(ctx context.Context, email, name, password string) (*User, error) {
	in := map[string]string{"email": email, "name": name, "password": password}

	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *restClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := map[string]string{"email": email, "password": password}

	out := &LoginResult{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, http.StatusOK, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) ListMessages(ctx context.Context) ([]*Message, error) {
	var out []*Message
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) SendMessage(ctx context.Context, to, subject, body string) (*Message, error) {
	in := map[string]string{"to": to, "subject": subject, "body": body}

	out := &Message{}
	if err := c.do(ctx, http.MethodPost, "/api/messages", in, http.StatusCreated, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks server liveness through the health route.
func (c *restClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var out struct {
		OK bool `json:"ok"`
	}
	return c.do(ctx, http.MethodGet, "/", nil, http.StatusOK, &out)
}
