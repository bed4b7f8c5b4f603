package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mafia/internal/app"
	"mafia/internal/domain"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SessionResponse describes a session for the API
type SessionResponse struct {
	ChatID      string `json:"chatId"`
	Status      string `json:"status"`
	Phase       string `json:"phase"`
	PlayerCount int    `json:"playerCount"`
	NightCount  int    `json:"nightCount"`
	CanJoin     bool   `json:"canJoin"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveSessions int `json:"activeSessions"`
	TotalPlayers   int `json:"totalPlayers"`
}

// handleCreateSession handles POST /api/chats/{chatId}/session
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	chatID := r.PathValue("chatId")
	if chatID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_CHAT_ID", "Chat id is required")
		return
	}

	session := s.hub.CreateSession(chatID)

	s.sendSuccess(w, sessionResponse(session))
}

// handleGetSession handles GET /api/chats/{chatId}/session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	chatID := r.PathValue("chatId")
	if chatID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_CHAT_ID", "Chat id is required")
		return
	}

	session, err := s.hub.GetSession(chatID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.sendError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, sessionResponse(session))
}

// handleDeleteSession handles DELETE /api/chats/{chatId}/session (forced abort)
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	chatID := r.PathValue("chatId")
	if chatID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_CHAT_ID", "Chat id is required")
		return
	}

	s.hub.DeleteSession(chatID)

	s.sendSuccess(w, nil)
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveSessions: s.hub.GetSessionCount(),
		TotalPlayers:   s.hub.GetTotalPlayerCount(),
	})
}

func sessionResponse(session *app.GameSession) *SessionResponse {
	return &SessionResponse{
		ChatID:      session.GetChatID(),
		Status:      string(session.GetStatus()),
		Phase:       string(session.GetPhase()),
		PlayerCount: session.GetPlayerCount(),
		NightCount:  session.GetNightCount(),
		CanJoin:     session.CanJoin(),
	}
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
