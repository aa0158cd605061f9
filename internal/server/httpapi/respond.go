package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/intramail/intramail/internal/server/models"
)

// Wire representations. Field names match the public API contract, which
// the mobile client and its tests depend on.

type userJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type messageJSON struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func toMessageJSON(m *models.Message) messageJSON {
	return messageJSON{
		ID:        m.ID,
		From:      m.FromEmail,
		To:        m.ToEmail,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error(context.Background(), "failed to encode JSON response", "error", err)
	}
}

// writeError emits the uniform error body. The code string is the public
// contract; internal error details are logged, never sent.
func (s *Server) writeError(w http.ResponseWriter, status int, code string) {
	s.writeJSON(w, status, map[string]string{"error": code})
}
