package app

import (
	"log/slog"
	"sync"
	"time"

	"mafia/internal/domain"
	"mafia/internal/store"
)

// StaleSessionTimeout is how long before an empty lobby is cleaned up
const StaleSessionTimeout = 2 * time.Hour

// GameHub owns the set of concurrent game sessions, at most one per chat,
// and routes external events into the right session.
type GameHub struct {
	sessions  map[string]*GameSession // chatID -> session
	players   *store.PlayerStore
	registry  domain.Registry
	scheduler Scheduler
	settings  domain.Settings
	mu        sync.RWMutex
	logger    *slog.Logger
	done      chan struct{}
}

// NewGameHub creates a hub with the process-wide role registry and real timers
func NewGameHub(settings domain.Settings, logger *slog.Logger) *GameHub {
	return NewGameHubWith(settings, domain.DefaultRegistry, NewTimerScheduler(), logger)
}

// NewGameHubWith creates a hub with an explicit registry and scheduler
func NewGameHubWith(settings domain.Settings, registry domain.Registry, scheduler Scheduler, logger *slog.Logger) *GameHub {
	hub := &GameHub{
		sessions:  make(map[string]*GameSession),
		players:   store.NewPlayerStore(),
		registry:  registry,
		scheduler: scheduler,
		settings:  settings,
		logger:    logger,
		done:      make(chan struct{}),
	}

	go hub.cleanupLoop()

	return hub
}

// CreateSession creates a new waiting session for the chat. An existing
// session for the same chat is discarded and replaced.
func (h *GameHub) CreateSession(chatID string) *GameSession {
	h.mu.Lock()
	old := h.sessions[chatID]

	game := domain.NewGame(chatID, h.settings)
	var session *GameSession
	session = NewGameSession(game, h.registry, h.scheduler, h.logger, func() {
		h.removeSession(chatID, session)
	})
	h.sessions[chatID] = session
	h.mu.Unlock()

	if old != nil {
		h.logger.Info("replacing existing session", "chatId", chatID)
		old.Close()
	}

	h.logger.Info("session created", "chatId", chatID)

	return session
}

// GetSession returns the session for a chat
func (h *GameHub) GetSession(chatID string) (*GameSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[chatID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

// JoinSession routes a join into the chat's session
func (h *GameHub) JoinSession(chatID, identity, name string) (*domain.Player, error) {
	session, err := h.GetSession(chatID)
	if err != nil {
		return nil, err
	}
	return session.Join(h.players, identity, name)
}

// SubmitNightAction routes a night action into the chat's session
func (h *GameHub) SubmitNightAction(chatID, actorID, targetID string, kind domain.ActionKind) error {
	session, err := h.GetSession(chatID)
	if err != nil {
		return err
	}
	return session.SubmitNightAction(actorID, targetID, kind)
}

// SubmitVote routes a vote into the chat's session
func (h *GameHub) SubmitVote(chatID, voterID, targetID string) error {
	session, err := h.GetSession(chatID)
	if err != nil {
		return err
	}
	return session.SubmitVote(voterID, targetID)
}

// DeleteSession forcibly tears down the session for a chat, cancelling any
// pending phase timer.
func (h *GameHub) DeleteSession(chatID string) {
	h.mu.Lock()
	session, ok := h.sessions[chatID]
	if ok {
		delete(h.sessions, chatID)
	}
	h.mu.Unlock()

	if ok {
		session.Close()
		h.logger.Info("session deleted", "chatId", chatID)
	}
}

// removeSession drops a finished session, but only if it is still the one
// registered for the chat (it may have been replaced already).
func (h *GameHub) removeSession(chatID string, session *GameSession) {
	h.mu.Lock()
	current, ok := h.sessions[chatID]
	if ok && current == session {
		delete(h.sessions, chatID)
	} else {
		ok = false
	}
	h.mu.Unlock()

	if ok {
		session.Close()
		h.logger.Info("finished session removed", "chatId", chatID)
	}
}

// GetSessionCount returns the number of active sessions
func (h *GameHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetTotalPlayerCount returns the total number of players across all sessions
func (h *GameHub) GetTotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.GetPlayerCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *GameHub) Close() {
	close(h.done)

	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*GameSession)
	h.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

// cleanupLoop periodically cleans up stale sessions
func (h *GameHub) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.cleanupStaleSessions()
		}
	}
}

// cleanupStaleSessions removes lobbies nobody ever joined
func (h *GameHub) cleanupStaleSessions() {
	h.mu.Lock()
	now := time.Now()
	stale := make([]*GameSession, 0)

	for chatID, session := range h.sessions {
		if session.GetPlayerCount() == 0 && now.Sub(session.GetCreatedAt()) > StaleSessionTimeout {
			delete(h.sessions, chatID)
			stale = append(stale, session)
		}
	}
	h.mu.Unlock()

	for _, session := range stale {
		session.Close()
		h.logger.Info("stale session cleaned up", "chatId", session.GetChatID())
	}
}
