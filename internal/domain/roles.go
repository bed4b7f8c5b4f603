package domain

// RoleHandler describes a role's night capability and its resolution rule.
// Handlers that carry state (doctor's last target, commissioner's counter)
// share that state between every player holding the role and every session
// using the same Registry.
type RoleHandler interface {
	Role() Role
	// NightAction returns the action kind the role performs at night.
	// ok is false for roles that only vote.
	NightAction() (ActionKind, bool)
	// Resolve computes the immediate outcome of actor targeting target.
	Resolve(actor, target *Player, g *Game) bool
}

// MafiaHandler kills. The kill itself always succeeds; whether the target
// actually dies is decided against protections during night resolution.
type MafiaHandler struct{}

func (MafiaHandler) Role() Role                      { return RoleMafia }
func (MafiaHandler) NightAction() (ActionKind, bool) { return ActionKill, true }
func (MafiaHandler) Resolve(actor, target *Player, g *Game) bool {
	return true
}

// DonHandler checks a target for being the commissioner. A successful check
// exposes the investigator to the mafia faction.
type DonHandler struct{}

func (DonHandler) Role() Role                      { return RoleDon }
func (DonHandler) NightAction() (ActionKind, bool) { return ActionCheck, true }
func (DonHandler) Resolve(actor, target *Player, g *Game) bool {
	if target.Role != RoleCommissioner {
		return false
	}
	target.IsRevealed = true
	return true
}

// DoctorHandler heals, but never the same target on two consecutive heals.
type DoctorHandler struct {
	lastTargetID string
}

func (*DoctorHandler) Role() Role                      { return RoleDoctor }
func (*DoctorHandler) NightAction() (ActionKind, bool) { return ActionHeal, true }
func (h *DoctorHandler) Resolve(actor, target *Player, g *Game) bool {
	if h.lastTargetID == target.ID {
		return false
	}
	h.lastTargetID = target.ID
	return true
}

// CommissionerHandler checks whether the target is mafia-aligned and counts
// its own investigations.
type CommissionerHandler struct {
	checks int
}

func (*CommissionerHandler) Role() Role                      { return RoleCommissioner }
func (*CommissionerHandler) NightAction() (ActionKind, bool) { return ActionCheck, true }
func (h *CommissionerHandler) Resolve(actor, target *Player, g *Game) bool {
	h.checks++
	return true
}

// CanEliminate reports whether the commissioner has investigated enough to
// unlock the suspect-elimination ability. Not driven by the phase machine.
func (h *CommissionerHandler) CanEliminate() bool {
	return h.checks >= 3
}

// LawyerHandler shields a mafia-aligned player it has identified.
type LawyerHandler struct {
	protectedID string
}

func (*LawyerHandler) Role() Role                      { return RoleLawyer }
func (*LawyerHandler) NightAction() (ActionKind, bool) { return ActionProtect, true }
func (h *LawyerHandler) Resolve(actor, target *Player, g *Game) bool {
	if !target.Role.IsMafiaAligned() {
		return false
	}
	h.protectedID = target.ID
	return true
}

// CivilianHandler votes only.
type CivilianHandler struct{}

func (CivilianHandler) Role() Role                      { return RoleCivilian }
func (CivilianHandler) NightAction() (ActionKind, bool) { return "", false }
func (CivilianHandler) Resolve(actor, target *Player, g *Game) bool {
	return false
}

// Registry maps each role to its handler
type Registry map[Role]RoleHandler

// NewRegistry builds a fresh handler table with no accumulated state
func NewRegistry() Registry {
	return Registry{
		RoleCivilian:     CivilianHandler{},
		RoleMafia:        MafiaHandler{},
		RoleDon:          DonHandler{},
		RoleDoctor:       &DoctorHandler{},
		RoleCommissioner: &CommissionerHandler{},
		RoleLawyer:       &LawyerHandler{},
	}
}

// DefaultRegistry is built once at process start and shared by all sessions,
// so stateful handlers carry their state across games.
var DefaultRegistry = NewRegistry()
