package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intramail/intramail/internal/client/config"
	"github.com/intramail/intramail/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerBaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	return NewClient(cfg)
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]string{"id": "u1", "email": "alice@example.com", "name": "Alice"},
		})
	}))

	res, err := c.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.Token)
	assert.Equal(t, "u1", res.User.ID)
}

func TestRegister_ConflictMapsToConflictError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "User already exists"})
	}))

	_, err := c.Register(context.Background(), "alice@example.com", "Alice", "secret")
	assert.ErrorIs(t, err, common.ErrorConflict)
	assert.Contains(t, err.Error(), "User already exists")
}

func TestTokenSource_AttachesBearer(t *testing.T) {
	var seen string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]*Message{})
	}))

	c.SetTokenSource(func() string { return "tok-abc" })

	_, err := c.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", seen)
}

func TestEmptyToken_RequestGoesAnonymous(t *testing.T) {
	var seen string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))

	c.SetTokenSource(func() string { return "" })

	require.NoError(t, c.Ping(context.Background()))
	assert.Empty(t, seen)
}

func TestUnauthorized_FiresHandlerAndMapsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	}))

	var fired atomic.Int32
	c.OnUnauthorized(func() { fired.Add(1) })

	_, err := c.ListMessages(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, int32(1), fired.Load())

	// Repeated 401s keep firing; idempotency lives in the handler.
	_, err = c.ListMessages(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, int32(2), fired.Load())
}

func TestSendMessage_ValidationError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "to and subject required"})
	}))

	_, err := c.SendMessage(context.Background(), "", "", "body")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestServerError_MapsToInternal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListMessages(context.Background())
	assert.ErrorIs(t, err, common.ErrorInternal)
}
