package domain

// Role represents a player's secret role
type Role string

const (
	RoleCivilian     Role = "CIVILIAN"
	RoleMafia        Role = "MAFIA"
	RoleDon          Role = "DON"
	RoleDoctor       Role = "DOCTOR"
	RoleCommissioner Role = "COMMISSIONER"
	RoleLawyer       Role = "LAWYER"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsMafiaAligned returns true for the roles that share the faction chat.
// Every other role counts as town when checking the win condition.
func (r Role) IsMafiaAligned() bool {
	return r == RoleMafia || r == RoleDon
}

// Faction represents a winning side
type Faction string

const (
	FactionMafia Faction = "MAFIA"
	FactionTown  Faction = "TOWN"
)
