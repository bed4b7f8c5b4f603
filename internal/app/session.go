package app

import (
	"log/slog"
	"sync"
	"time"

	"mafia/internal/domain"
	"mafia/internal/store"
)

// ClientConnection represents a connected client. Send failures are logged
// and never propagated into the game state machine.
type ClientConnection interface {
	Send(message interface{}) error
	GetPlayerID() string
	Close() error
}

// GameSession wraps one game with concurrency control, phase timers and
// client management. Every state transition runs under a single mutex, so a
// late action submitted concurrently with a phase timeout cannot race.
type GameSession struct {
	game      *domain.Game
	registry  domain.Registry
	scheduler Scheduler
	mu        sync.Mutex
	clients   map[string]ClientConnection // playerID -> client
	clientsMu sync.RWMutex
	logger    *slog.Logger

	// Phase timer. phaseSeq invalidates callbacks scheduled for a phase the
	// session has already moved past.
	cancelTimer CancelFunc
	phaseSeq    int

	// Event channel for broadcasting
	events chan *domain.GameEvent
	done   chan struct{}
	closed bool

	// Called once the game reaches a terminal state
	onFinished func()
}

// NewGameSession creates a new game session. onFinished may be nil.
func NewGameSession(game *domain.Game, registry domain.Registry, scheduler Scheduler, logger *slog.Logger, onFinished func()) *GameSession {
	session := &GameSession{
		game:       game,
		registry:   registry,
		scheduler:  scheduler,
		clients:    make(map[string]ClientConnection),
		logger:     logger,
		events:     make(chan *domain.GameEvent, 100),
		done:       make(chan struct{}),
		onFinished: onFinished,
	}

	go session.eventLoop()

	return session
}

// GetChatID returns the chat id this session is bound to
func (s *GameSession) GetChatID() string {
	return s.game.ChatID
}

// GetCreatedAt returns when the game was created
func (s *GameSession) GetCreatedAt() time.Time {
	return s.game.CreatedAt
}

// GetPlayerCount returns the number of players
func (s *GameSession) GetPlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.game.Players)
}

// GetStatus returns the current session status
func (s *GameSession) GetStatus() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status
}

// GetPhase returns the current game phase
func (s *GameSession) GetPhase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Phase
}

// GetNightCount returns how many nights have begun
func (s *GameSession) GetNightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.NightCount
}

// CanJoin checks if a new player can join the game
func (s *GameSession) CanJoin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status == domain.StatusWaiting && len(s.game.Players) < s.game.Settings.MaxPlayers
}

// RegisterClient registers a client connection for a player
func (s *GameSession) RegisterClient(playerID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[playerID] = client
}

// UnregisterClient removes a client connection
func (s *GameSession) UnregisterClient(playerID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, playerID)
}

// Join attaches the identity to this session's lobby with its own player
// instance. Reaching the configured minimum starts the game: roles are
// assigned, revealed privately, and night one begins.
func (s *GameSession) Join(players *store.PlayerStore, identity, name string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status != domain.StatusWaiting {
		return nil, domain.ErrGameAlreadyStarted
	}

	// Joining twice is a no-op apart from a name refresh
	if p, err := s.game.GetPlayer(identity); err == nil {
		p.Name = name
		return p, nil
	}

	if len(s.game.Players) >= s.game.Settings.MaxPlayers {
		return nil, domain.ErrGameFull
	}

	player := players.Attach(identity, name)
	if err := s.game.AddPlayer(player); err != nil {
		return nil, err
	}

	s.queueEvent(domain.NewEvent(domain.EventPlayerJoined, s.game.ChatID, s.game.GetLobbyState()))

	if s.game.CanStart() {
		s.startGame()
	}

	return player, nil
}

// startGame assigns roles and enters the first night (caller must hold lock)
func (s *GameSession) startGame() {
	s.game.Status = domain.StatusActive
	s.game.AssignRoles()

	for _, p := range s.game.Players {
		s.queueEvent(domain.NewPlayerEvent(domain.EventRoleAssigned, s.game.ChatID, p.ID, &domain.RoleAssignedPayload{
			Role: p.Role,
		}))
	}

	members := s.game.FactionChatMembers()
	roster := make([]domain.PlayerInfo, 0, len(members))
	for _, m := range members {
		roster = append(roster, m.ToInfo())
	}
	for _, m := range members {
		s.queueEvent(domain.NewPlayerEvent(domain.EventFactionRoster, s.game.ChatID, m.ID, &domain.FactionRosterPayload{
			Members: roster,
		}))
	}

	s.queueEvent(domain.NewEvent(domain.EventGameStarted, s.game.ChatID, s.game.GetLobbyState()))

	s.logger.Info("game started", "chatId", s.game.ChatID, "players", len(s.game.Players))

	s.beginNight()
}

// beginNight enters the night phase (caller must hold lock)
func (s *GameSession) beginNight() {
	if !s.game.Phase.CanTransitionTo(domain.PhaseNight) {
		s.abandon("invalid transition to night", s.game.Phase)
		return
	}

	s.game.Phase = domain.PhaseNight
	s.game.NightCount++

	s.queueEvent(domain.NewEvent(domain.EventNightStarted, s.game.ChatID, &domain.NightStartedPayload{
		Night:   s.game.NightCount,
		Seconds: int(s.game.Settings.NightDuration.Seconds()),
	}))

	for _, p := range s.game.AlivePlayers() {
		handler, ok := s.registry[p.Role]
		if !ok {
			continue
		}
		kind, capable := handler.NightAction()
		if !capable {
			continue
		}

		targets := s.game.Targets(p.ID)
		infos := make([]domain.PlayerInfo, 0, len(targets))
		for _, t := range targets {
			infos = append(infos, t.ToInfo())
		}
		s.queueEvent(domain.NewPlayerEvent(domain.EventNightPrompt, s.game.ChatID, p.ID, &domain.NightPromptPayload{
			Kind:    kind,
			Targets: infos,
		}))
	}

	s.schedulePhase(s.game.Settings.NightDuration, s.endNight)
}

// endNight resolves the night's actions (caller must hold lock)
func (s *GameSession) endNight() {
	deaths := s.game.ResolveNight()

	s.queueEvent(domain.NewEvent(domain.EventNightResults, s.game.ChatID, &domain.NightResultsPayload{
		Night:  s.game.NightCount,
		Deaths: deaths,
	}))

	if winner, decided := s.game.Winner(); decided {
		s.finish(winner)
		return
	}

	s.beginDay()
}

// beginDay enters the day phase (caller must hold lock)
func (s *GameSession) beginDay() {
	if !s.game.Phase.CanTransitionTo(domain.PhaseDay) {
		s.abandon("invalid transition to day", s.game.Phase)
		return
	}

	s.game.Phase = domain.PhaseDay

	s.queueEvent(domain.NewEvent(domain.EventDayStarted, s.game.ChatID, &domain.DayStartedPayload{
		Seconds: int(s.game.Settings.DayDuration.Seconds()),
	}))

	s.schedulePhase(s.game.Settings.DayDuration, s.beginVoting)
}

// beginVoting enters the voting phase (caller must hold lock)
func (s *GameSession) beginVoting() {
	if !s.game.Phase.CanTransitionTo(domain.PhaseVoting) {
		s.abandon("invalid transition to voting", s.game.Phase)
		return
	}

	s.game.Phase = domain.PhaseVoting
	s.game.Votes.Reset()

	alive := s.game.AlivePlayers()
	candidates := make([]domain.PlayerInfo, 0, len(alive))
	for _, p := range alive {
		candidates = append(candidates, p.ToInfo())
	}

	s.queueEvent(domain.NewEvent(domain.EventVotingStarted, s.game.ChatID, &domain.VotingStartedPayload{
		Candidates: candidates,
		Seconds:    int(s.game.Settings.VotingDuration.Seconds()),
	}))

	s.schedulePhase(s.game.Settings.VotingDuration, s.endVoting)
}

// endVoting tallies the votes (caller must hold lock)
func (s *GameSession) endVoting() {
	eliminated := s.game.TallyVotes()

	s.queueEvent(domain.NewEvent(domain.EventVotingResults, s.game.ChatID, &domain.VotingResultsPayload{
		Eliminated: eliminated,
	}))

	if winner, decided := s.game.Winner(); decided {
		s.finish(winner)
		return
	}

	s.beginNight()
}

// SubmitNightAction validates and records a night action for the current
// night. The role handler resolves the action at submission time; a failed
// resolution rejects the submission and records nothing.
func (s *GameSession) SubmitNightAction(actorID, targetID string, kind domain.ActionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status != domain.StatusActive || s.game.Phase != domain.PhaseNight {
		return domain.ErrInvalidPhase
	}

	actor, err := s.game.GetPlayer(actorID)
	if err != nil {
		return err
	}
	target, err := s.game.GetPlayer(targetID)
	if err != nil {
		return err
	}

	if !actor.IsAlive {
		return domain.ErrActorDead
	}
	if !target.IsAlive {
		return domain.ErrTargetDead
	}
	if actorID == targetID {
		return domain.ErrSelfTarget
	}

	handler, ok := s.registry[actor.Role]
	if !ok {
		return domain.ErrNoNightAction
	}
	roleKind, capable := handler.NightAction()
	if !capable {
		return domain.ErrNoNightAction
	}
	if kind != roleKind {
		return domain.ErrWrongActionKind
	}

	outcome := handler.Resolve(actor, target, s.game)
	if !outcome {
		return domain.ErrActionFailed
	}

	s.game.RecordAction(&domain.Action{
		ActorID:  actorID,
		TargetID: targetID,
		Kind:     kind,
		Night:    s.game.NightCount,
		Outcome:  outcome,
	})

	if kind == domain.ActionCheck {
		s.queueEvent(domain.NewPlayerEvent(domain.EventCheckResult, s.game.ChatID, actorID, &domain.CheckResultPayload{
			TargetID:   target.ID,
			TargetName: target.Name,
			Outcome:    outcome,
		}))
	}

	return nil
}

// SubmitVote validates and records a vote. The last vote per voter counts.
func (s *GameSession) SubmitVote(voterID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status != domain.StatusActive || s.game.Phase != domain.PhaseVoting {
		return domain.ErrInvalidPhase
	}

	voter, err := s.game.GetPlayer(voterID)
	if err != nil {
		return err
	}
	if !voter.IsAlive {
		return domain.ErrActorDead
	}

	s.game.Votes.Cast(voterID, targetID)

	s.queueEvent(domain.NewEvent(domain.EventVoteCast, s.game.ChatID, &domain.VoteProgressPayload{
		VotedCount: s.game.Votes.Len(),
		AliveCount: len(s.game.AlivePlayers()),
	}))

	return nil
}

// schedulePhase arms the phase timer (caller must hold lock). Advancing the
// sequence makes any previously scheduled callback a no-op.
func (s *GameSession) schedulePhase(d time.Duration, fn func()) {
	s.phaseSeq++
	seq := s.phaseSeq

	if s.cancelTimer != nil {
		s.cancelTimer()
	}

	s.cancelTimer = s.scheduler.Schedule(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || seq != s.phaseSeq || s.game.Status != domain.StatusActive {
			return
		}
		fn()
	})
}

// finish moves the session to its terminal state (caller must hold lock)
func (s *GameSession) finish(winner domain.Faction) {
	s.game.Status = domain.StatusFinished
	s.game.Phase = domain.PhaseNone
	s.phaseSeq++

	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}

	s.queueEvent(domain.NewEvent(domain.EventGameEnded, s.game.ChatID, &domain.GameEndedPayload{
		Winner: winner,
	}))

	s.logger.Info("game finished", "chatId", s.game.ChatID, "winner", winner, "nights", s.game.NightCount)

	if s.onFinished != nil {
		go s.onFinished()
	}
}

// abandon tears the session down after an invariant violation so it cannot
// keep firing timers in an inconsistent state (caller must hold lock)
func (s *GameSession) abandon(reason string, phase domain.Phase) {
	s.logger.Error("abandoning session", "chatId", s.game.ChatID, "reason", reason, "phase", phase)

	s.game.Status = domain.StatusFinished
	s.game.Phase = domain.PhaseNone
	s.phaseSeq++

	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}

	s.queueEvent(domain.NewEvent(domain.EventError, s.game.ChatID, &domain.ErrorPayload{
		Code:    "INTERNAL_ERROR",
		Message: "game aborted",
	}))

	if s.onFinished != nil {
		go s.onFinished()
	}
}

// queueEvent adds an event to the broadcast queue
func (s *GameSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients. On shutdown it
// drains whatever is already queued so terminal announcements still go out.
func (s *GameSession) eventLoop() {
	for {
		select {
		case <-s.done:
			for {
				select {
				case event := <-s.events:
					s.broadcastEvent(event)
				default:
					return
				}
			}
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to the appropriate clients
func (s *GameSession) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	// If player-specific, send only to that player
	if event.PlayerID != "" {
		if client, ok := s.clients[event.PlayerID]; ok {
			if err := client.Send(event); err != nil {
				s.logger.Debug("failed to send to client", "playerId", event.PlayerID, "error", err)
			}
		}
		return
	}

	for playerID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "playerId", playerID, "error", err)
		}
	}
}

// Close shuts down the session and cancels any pending phase timer
func (s *GameSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.phaseSeq++
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
	s.mu.Unlock()

	close(s.done)

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()
}
