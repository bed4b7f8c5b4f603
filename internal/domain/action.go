package domain

// ActionKind represents the type of a night action
type ActionKind string

const (
	ActionKill    ActionKind = "KILL"    // Mafia
	ActionHeal    ActionKind = "HEAL"    // Doctor
	ActionCheck   ActionKind = "CHECK"   // Commissioner and Don
	ActionProtect ActionKind = "PROTECT" // Lawyer
)

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	return string(k)
}

// Action is one recorded night action. Actions are scoped to a single
// night and immutable once recorded.
type Action struct {
	ActorID  string     `json:"actorId"`
	TargetID string     `json:"targetId"`
	Kind     ActionKind `json:"kind"`
	Night    int        `json:"night"`
	Outcome  bool       `json:"outcome"`
}
