package domain

import "time"

// Player represents a player known by a stable external identity. Each
// session holds its own instance; two sessions never share one.
type Player struct {
	ID         string    `json:"id"` // Stable external identity (chat-platform user id)
	Name       string    `json:"name"`
	Role       Role      `json:"role,omitempty"`
	IsAlive    bool      `json:"isAlive"`
	IsRevealed bool      `json:"isRevealed"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// NewPlayer creates a new player with the given identity and display name
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Role:     "",
		IsAlive:  true,
		JoinedAt: time.Now(),
	}
}

// PlayerInfo is a safe view of player data (hides role from other players)
type PlayerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAlive bool   `json:"isAlive"`
}

// ToInfo converts a Player to PlayerInfo (without role)
func (p *Player) ToInfo() PlayerInfo {
	return PlayerInfo{
		ID:      p.ID,
		Name:    p.Name,
		IsAlive: p.IsAlive,
	}
}
