package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventPlayerJoined  EventType = "PLAYER_JOINED"
	EventGameStarted   EventType = "GAME_STARTED"
	EventRoleAssigned  EventType = "ROLE_ASSIGNED"
	EventFactionRoster EventType = "FACTION_ROSTER"
	EventNightStarted  EventType = "NIGHT_STARTED"
	EventNightPrompt   EventType = "NIGHT_PROMPT"
	EventCheckResult   EventType = "CHECK_RESULT"
	EventNightResults  EventType = "NIGHT_RESULTS"
	EventDayStarted    EventType = "DAY_STARTED"
	EventVotingStarted EventType = "VOTING_STARTED"
	EventVoteCast      EventType = "VOTE_CAST"
	EventVotingResults EventType = "VOTING_RESULTS"
	EventGameEnded     EventType = "GAME_ENDED"
	EventError         EventType = "ERROR"
)

// GameEvent represents an event that occurred in a game session
type GameEvent struct {
	Type      EventType   `json:"type"`
	ChatID    string      `json:"chatId"`
	PlayerID  string      `json:"playerId,omitempty"` // If event is player-specific
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, chatID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		ChatID:    chatID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewPlayerEvent creates a new player-specific game event
func NewPlayerEvent(eventType EventType, chatID, playerID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		ChatID:    chatID,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for different events

// LobbyUpdatePayload is sent when lobby state changes
type LobbyUpdatePayload struct {
	Players    []PlayerInfo `json:"players"`
	MinPlayers int          `json:"minPlayers"`
	CanStart   bool         `json:"canStart"`
}

// RoleAssignedPayload is sent privately to each player with their role
type RoleAssignedPayload struct {
	Role Role `json:"role"`
}

// FactionRosterPayload is sent privately to each mafia-aligned player
type FactionRosterPayload struct {
	Members []PlayerInfo `json:"members"`
}

// NightStartedPayload is broadcast when a night begins
type NightStartedPayload struct {
	Night   int `json:"night"`
	Seconds int `json:"seconds"`
}

// NightPromptPayload is sent privately to each night-capable living player
type NightPromptPayload struct {
	Kind    ActionKind   `json:"kind"`
	Targets []PlayerInfo `json:"targets"`
}

// CheckResultPayload is sent privately to an investigator after a check
type CheckResultPayload struct {
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	Outcome    bool   `json:"outcome"`
}

// NightResultsPayload is broadcast after night resolution
type NightResultsPayload struct {
	Night  int     `json:"night"`
	Deaths []Death `json:"deaths"`
}

// DayStartedPayload is broadcast when the day phase begins
type DayStartedPayload struct {
	Seconds int `json:"seconds"`
}

// VotingStartedPayload is broadcast when the voting phase begins
type VotingStartedPayload struct {
	Candidates []PlayerInfo `json:"candidates"`
	Seconds    int          `json:"seconds"`
}

// VoteProgressPayload is broadcast when a vote is cast (without revealing it)
type VoteProgressPayload struct {
	VotedCount int `json:"votedCount"`
	AliveCount int `json:"aliveCount"`
}

// VotingResultsPayload is broadcast after the vote tally
type VotingResultsPayload struct {
	Eliminated *Death `json:"eliminated,omitempty"`
}

// GameEndedPayload is broadcast once a faction has won
type GameEndedPayload struct {
	Winner Faction `json:"winner"`
}

// ErrorPayload is sent when an error occurs
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
