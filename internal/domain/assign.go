package domain

import "math/rand"

// RoleList builds the deterministic role multiset for n players.
// Mafia-aligned count is max(1, n/ratio); at the don threshold the don takes
// one of those slots instead of adding to them. One doctor and one
// commissioner are always present; the lawyer and second doctor/commissioner
// are appended at their player thresholds while slots remain. Civilians fill
// the rest.
func RoleList(n int, s Settings) []Role {
	mafia := n / s.MafiaRatio
	if mafia < 1 {
		mafia = 1
	}

	roles := make([]Role, 0, n)
	if n >= s.DonThreshold {
		roles = append(roles, RoleDon)
		mafia--
	}
	for i := 0; i < mafia && len(roles) < n; i++ {
		roles = append(roles, RoleMafia)
	}

	for _, r := range []Role{RoleDoctor, RoleCommissioner} {
		if len(roles) < n {
			roles = append(roles, r)
		}
	}

	extras := []struct {
		role      Role
		threshold int
	}{
		{RoleLawyer, s.LawyerThreshold},
		{RoleDoctor, s.SecondDoctorThreshold},
		{RoleCommissioner, s.SecondCommissionerThreshold},
	}
	for _, e := range extras {
		if n >= e.threshold && len(roles) < n {
			roles = append(roles, e.role)
		}
	}

	for len(roles) < n {
		roles = append(roles, RoleCivilian)
	}

	return roles
}

// AssignRoles shuffles the role list for the current player count and zips it
// with the players in join order. Every player comes back alive and
// unrevealed; mafia-aligned players join the faction chat. Callers must not
// invoke this below the minimum player count.
func (g *Game) AssignRoles() {
	roles := RoleList(len(g.Players), g.Settings)
	rand.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	for i, p := range g.Players {
		p.Role = roles[i]
		p.IsAlive = true
		p.IsRevealed = false

		if p.Role.IsMafiaAligned() {
			g.FactionChat[p.ID] = true
		}
	}
}

// FactionChatMembers returns the mafia-aligned players in join order
func (g *Game) FactionChatMembers() []*Player {
	members := make([]*Player, 0, len(g.FactionChat))
	for _, p := range g.Players {
		if g.FactionChat[p.ID] {
			members = append(members, p)
		}
	}
	return members
}
