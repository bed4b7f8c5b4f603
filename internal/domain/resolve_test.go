package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newActiveGame builds an active game with the given roles assigned in order
func newActiveGame(t *testing.T, roles ...Role) *Game {
	t.Helper()

	g := NewGame("chat-1", DefaultSettings())
	for i, role := range roles {
		p := NewPlayer(fmt.Sprintf("p%d", i), fmt.Sprintf("player %d", i))
		p.Role = role
		require.NoError(t, g.AddPlayer(p))
		if role.IsMafiaAligned() {
			g.FactionChat[p.ID] = true
		}
	}
	g.Status = StatusActive
	g.Phase = PhaseNight
	g.NightCount = 1
	return g
}

func TestResolveNightKillUnprotectedTarget(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian)

	g.RecordAction(&Action{ActorID: "p0", TargetID: "p3", Kind: ActionKill, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	require.Len(t, deaths, 1)
	assert.Equal(t, "p3", deaths[0].PlayerID)

	target, err := g.GetPlayer("p3")
	require.NoError(t, err)
	assert.False(t, target.IsAlive)
}

func TestResolveNightHealBlocksKill(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian)

	g.RecordAction(&Action{ActorID: "p0", TargetID: "p3", Kind: ActionKill, Night: 1, Outcome: true})
	g.RecordAction(&Action{ActorID: "p1", TargetID: "p3", Kind: ActionHeal, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	assert.Empty(t, deaths)
	target, err := g.GetPlayer("p3")
	require.NoError(t, err)
	assert.True(t, target.IsAlive)
}

func TestResolveNightProtectBlocksKill(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleLawyer, RoleCommissioner, RoleCivilian)

	g.RecordAction(&Action{ActorID: "p1", TargetID: "p0", Kind: ActionProtect, Night: 1, Outcome: true})
	g.RecordAction(&Action{ActorID: "p2", TargetID: "p0", Kind: ActionKill, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	assert.Empty(t, deaths)
	mafia, err := g.GetPlayer("p0")
	require.NoError(t, err)
	assert.True(t, mafia.IsAlive)
}

func TestResolveNightMultipleKillsAllResolve(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian, RoleCivilian)

	g.RecordAction(&Action{ActorID: "p0", TargetID: "p4", Kind: ActionKill, Night: 1, Outcome: true})
	g.RecordAction(&Action{ActorID: "p1", TargetID: "p5", Kind: ActionKill, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	require.Len(t, deaths, 2)
	assert.Equal(t, "p4", deaths[0].PlayerID)
	assert.Equal(t, "p5", deaths[1].PlayerID)
}

func TestResolveNightIgnoresOtherNights(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian)
	g.NightCount = 2

	// Recorded during night one; must not leak into night two
	g.RecordAction(&Action{ActorID: "p0", TargetID: "p3", Kind: ActionKill, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	assert.Empty(t, deaths)
	target, err := g.GetPlayer("p3")
	require.NoError(t, err)
	assert.True(t, target.IsAlive)
}

func TestResolveNightSkipsAlreadyDeadTarget(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian, RoleCivilian)

	target, err := g.GetPlayer("p4")
	require.NoError(t, err)
	target.IsAlive = false

	g.RecordAction(&Action{ActorID: "p0", TargetID: "p4", Kind: ActionKill, Night: 1, Outcome: true})

	deaths := g.ResolveNight()

	assert.Empty(t, deaths)
}
