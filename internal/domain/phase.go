package domain

// Status represents the lifecycle state of a game session
type Status string

const (
	StatusWaiting  Status = "WAITING"  // Lobby, collecting players
	StatusActive   Status = "ACTIVE"   // Roles assigned, phases cycling
	StatusFinished Status = "FINISHED" // Terminal
)

// Phase represents the current phase of an active game
type Phase string

const (
	PhaseNone   Phase = "NONE"   // No phase (waiting or finished)
	PhaseNight  Phase = "NIGHT"  // Night-capable roles pick targets
	PhaseDay    Phase = "DAY"    // Open discussion
	PhaseVoting Phase = "VOTING" // Everyone votes on an elimination
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseNone:   {PhaseNight},
		PhaseNight:  {PhaseDay},
		PhaseDay:    {PhaseVoting},
		PhaseVoting: {PhaseNight}, // Next night, unless the game ends first
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
