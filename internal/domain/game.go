package domain

import "time"

// Settings holds configurable game parameters
type Settings struct {
	MinPlayers                  int           `json:"minPlayers"`
	MaxPlayers                  int           `json:"maxPlayers"`
	NightDuration               time.Duration `json:"nightDuration"`
	DayDuration                 time.Duration `json:"dayDuration"`
	VotingDuration              time.Duration `json:"votingDuration"`
	MafiaRatio                  int           `json:"mafiaRatio"` // 1 mafia per MafiaRatio players
	DonThreshold                int           `json:"donThreshold"`
	LawyerThreshold             int           `json:"lawyerThreshold"`
	SecondDoctorThreshold       int           `json:"secondDoctorThreshold"`
	SecondCommissionerThreshold int           `json:"secondCommissionerThreshold"`
}

// DefaultSettings returns the default game settings
func DefaultSettings() Settings {
	return Settings{
		MinPlayers:                  4,
		MaxPlayers:                  15,
		NightDuration:               120 * time.Second,
		DayDuration:                 180 * time.Second,
		VotingDuration:              60 * time.Second,
		MafiaRatio:                  3,
		DonThreshold:                6,
		LawyerThreshold:             8,
		SecondDoctorThreshold:       10,
		SecondCommissionerThreshold: 12,
	}
}

// Game represents one game session bound to a chat
type Game struct {
	ChatID      string          `json:"chatId"`
	Status      Status          `json:"status"`
	Phase       Phase           `json:"phase"`
	NightCount  int             `json:"nightCount"`
	Players     []*Player       `json:"players"` // Join order
	FactionChat map[string]bool `json:"-"`       // Mafia-aligned player ids
	Actions     []*Action       `json:"-"`
	Votes       *VoteLog        `json:"-"`
	Settings    Settings        `json:"settings"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewGame creates a new waiting game for the given chat
func NewGame(chatID string, settings Settings) *Game {
	return &Game{
		ChatID:      chatID,
		Status:      StatusWaiting,
		Phase:       PhaseNone,
		NightCount:  0,
		Players:     make([]*Player, 0),
		FactionChat: make(map[string]bool),
		Actions:     make([]*Action, 0),
		Votes:       NewVoteLog(),
		Settings:    settings,
		CreatedAt:   time.Now(),
	}
}

// AddPlayer adds a player to the lobby
func (g *Game) AddPlayer(player *Player) error {
	if g.Status != StatusWaiting {
		return ErrGameAlreadyStarted
	}

	if len(g.Players) >= g.Settings.MaxPlayers {
		return ErrGameFull
	}

	g.Players = append(g.Players, player)
	return nil
}

// GetPlayer returns a player of this game by identity
func (g *Game) GetPlayer(playerID string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// AlivePlayers returns the living players in join order
func (g *Game) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// Targets returns the living players an actor may target (everyone but self)
func (g *Game) Targets(actorID string) []*Player {
	targets := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.IsAlive && p.ID != actorID {
			targets = append(targets, p)
		}
	}
	return targets
}

// CanStart checks if the lobby has enough players to begin
func (g *Game) CanStart() bool {
	return g.Status == StatusWaiting && len(g.Players) >= g.Settings.MinPlayers
}

// RecordAction records a resolved night action
func (g *Game) RecordAction(a *Action) {
	g.Actions = append(g.Actions, a)
}

// ActionsForNight returns the actions recorded for the given night
func (g *Game) ActionsForNight(night int) []*Action {
	actions := make([]*Action, 0)
	for _, a := range g.Actions {
		if a.Night == night {
			actions = append(actions, a)
		}
	}
	return actions
}

// Winner reports the winning faction once one side has prevailed.
// Mafia reaching parity with town is a mafia win, not a stalemate.
func (g *Game) Winner() (Faction, bool) {
	var mafia, town int
	for _, p := range g.Players {
		if !p.IsAlive {
			continue
		}
		if p.Role.IsMafiaAligned() {
			mafia++
		} else {
			town++
		}
	}

	if mafia == 0 {
		return FactionTown, true
	}
	if mafia >= town {
		return FactionMafia, true
	}
	return "", false
}

// GetPlayerInfoList returns a list of all players as PlayerInfo
func (g *Game) GetPlayerInfoList() []PlayerInfo {
	players := make([]PlayerInfo, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, p.ToInfo())
	}
	return players
}

// GetLobbyState returns the current lobby state for broadcasting
func (g *Game) GetLobbyState() *LobbyUpdatePayload {
	return &LobbyUpdatePayload{
		Players:    g.GetPlayerInfoList(),
		MinPlayers: g.Settings.MinPlayers,
		CanStart:   g.CanStart(),
	}
}
