package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRoles(roles []Role) map[Role]int {
	counts := make(map[Role]int)
	for _, r := range roles {
		counts[r]++
	}
	return counts
}

func TestRoleListCounts(t *testing.T) {
	s := DefaultSettings()

	for n := s.MinPlayers; n <= s.MaxPlayers; n++ {
		t.Run(fmt.Sprintf("players_%d", n), func(t *testing.T) {
			roles := RoleList(n, s)
			require.Len(t, roles, n)

			counts := countRoles(roles)

			wantAligned := n / s.MafiaRatio
			if wantAligned < 1 {
				wantAligned = 1
			}
			assert.Equal(t, wantAligned, counts[RoleMafia]+counts[RoleDon], "mafia-aligned count")

			// The don takes one of the mafia slots, never an extra one
			wantDon := 0
			if n >= s.DonThreshold {
				wantDon = 1
			}
			assert.Equal(t, wantDon, counts[RoleDon], "don count")
			assert.Equal(t, wantAligned-wantDon, counts[RoleMafia], "mafia count")

			wantLawyer := 0
			if n >= s.LawyerThreshold {
				wantLawyer = 1
			}
			assert.Equal(t, wantLawyer, counts[RoleLawyer], "lawyer count")

			wantDoctors := 1
			if n >= s.SecondDoctorThreshold {
				wantDoctors = 2
			}
			assert.Equal(t, wantDoctors, counts[RoleDoctor], "doctor count")

			wantCommissioners := 1
			if n >= s.SecondCommissionerThreshold {
				wantCommissioners = 2
			}
			assert.Equal(t, wantCommissioners, counts[RoleCommissioner], "commissioner count")

			specials := counts[RoleMafia] + counts[RoleDon] + counts[RoleLawyer] +
				counts[RoleDoctor] + counts[RoleCommissioner]
			assert.Equal(t, n-specials, counts[RoleCivilian], "civilians fill the rest")
		})
	}
}

func TestRoleListFourPlayers(t *testing.T) {
	roles := RoleList(4, DefaultSettings())

	counts := countRoles(roles)
	assert.Equal(t, 1, counts[RoleMafia])
	assert.Equal(t, 1, counts[RoleDoctor])
	assert.Equal(t, 1, counts[RoleCommissioner])
	assert.Equal(t, 1, counts[RoleCivilian])
	assert.Zero(t, counts[RoleDon])
	assert.Zero(t, counts[RoleLawyer])
}

func TestRoleListSixPlayersKeepsTownMajority(t *testing.T) {
	roles := RoleList(6, DefaultSettings())

	counts := countRoles(roles)
	assert.Equal(t, 1, counts[RoleDon])
	assert.Equal(t, 1, counts[RoleMafia])
	assert.Equal(t, 1, counts[RoleDoctor])
	assert.Equal(t, 1, counts[RoleCommissioner])
	assert.Equal(t, 2, counts[RoleCivilian])
}

func TestAssignRolesIsPermutation(t *testing.T) {
	g := NewGame("chat-1", DefaultSettings())
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddPlayer(NewPlayer(fmt.Sprintf("p%d", i), fmt.Sprintf("player %d", i))))
	}

	g.AssignRoles()

	assigned := make([]Role, 0, len(g.Players))
	for _, p := range g.Players {
		assigned = append(assigned, p.Role)
	}

	assert.Equal(t, countRoles(RoleList(9, g.Settings)), countRoles(assigned))
}

func TestAssignRolesResetsPlayersAndFillsFactionChat(t *testing.T) {
	g := NewGame("chat-1", DefaultSettings())
	for i := 0; i < 7; i++ {
		p := NewPlayer(fmt.Sprintf("p%d", i), fmt.Sprintf("player %d", i))
		p.IsAlive = false
		p.IsRevealed = true
		require.NoError(t, g.AddPlayer(p))
	}

	g.AssignRoles()

	for _, p := range g.Players {
		assert.True(t, p.IsAlive)
		assert.False(t, p.IsRevealed)
		assert.NotEmpty(t, p.Role)
		assert.Equal(t, p.Role.IsMafiaAligned(), g.FactionChat[p.ID])
	}

	members := g.FactionChatMembers()
	assert.Len(t, members, len(g.FactionChat))
	for _, m := range members {
		assert.True(t, m.Role.IsMafiaAligned())
	}
}
