package ws

import "time"

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgJoin        MessageType = "join"
	MsgNightAction MessageType = "night_action"
	MsgVote        MessageType = "vote"
	MsgPing        MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected MessageType = "connected"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// JoinPayload is the payload for a join message
type JoinPayload struct {
	Name string `json:"name"`
}

// NightActionPayload is the payload for a night_action message
type NightActionPayload struct {
	TargetPlayerID string `json:"targetPlayerId"`
	Kind           string `json:"kind"`
}

// VotePayload is the payload for a vote message
type VotePayload struct {
	TargetPlayerID string `json:"targetPlayerId"`
}

// Server message payloads

// ConnectedPayload is the payload for a connected message
type ConnectedPayload struct {
	PlayerID string `json:"playerId"`
	ChatID   string `json:"chatId"`
}

// ErrorPayload is the payload for an error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage  = "INVALID_MESSAGE"
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodePlayerNotFound  = "PLAYER_NOT_FOUND"
	ErrCodeInvalidAction   = "INVALID_ACTION"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)
