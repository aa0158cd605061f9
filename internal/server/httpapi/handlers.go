package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intramail/intramail/internal/common"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sendMessageRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.writeError(w, http.StatusBadRequest, "email and password required")
		case errors.Is(err, common.ErrorConflict):
			s.writeError(w, http.StatusConflict, "User already exists")
		default:
			s.logger.Error(r.Context(), "register failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	s.writeJSON(w, http.StatusOK, map[string]any{"user": toUserJSON(user)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.writeError(w, http.StatusBadRequest, "email and password required")
		case errors.Is(err, common.ErrorUnauthorized):
			s.writeError(w, http.StatusUnauthorized, "invalid_credentials")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user": map[string]string{
			"id":    result.User.ID,
			"email": result.User.Email,
			"name":  result.User.Name,
		},
	})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {

	msgs, err := s.messages.ListFor(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			s.logger.Error(r.Context(), "list messages failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	out := make([]messageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageJSON(m))
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {

	identity := IdentityFromContext(r.Context())
	if identity == nil {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "to and subject required")
		return
	}

	msg, err := s.messages.Send(r.Context(), identity, req.To, req.Subject, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.writeError(w, http.StatusBadRequest, "to and subject required")
		case errors.Is(err, common.ErrorUnauthorized):
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			s.logger.Error(r.Context(), "send message failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, toMessageJSON(msg))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "version": Version})
}
