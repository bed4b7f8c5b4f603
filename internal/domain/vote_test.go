package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyVotesSingleMaximum(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian, RoleCivilian)
	g.Phase = PhaseVoting

	g.Votes.Cast("p1", "p0")
	g.Votes.Cast("p2", "p0")
	g.Votes.Cast("p3", "p4")

	eliminated := g.TallyVotes()

	require.NotNil(t, eliminated)
	assert.Equal(t, "p0", eliminated.PlayerID)

	mafia, err := g.GetPlayer("p0")
	require.NoError(t, err)
	assert.False(t, mafia.IsAlive)
}

func TestTallyVotesDiscardsDeadTargets(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian, RoleCivilian)
	g.Phase = PhaseVoting

	g.Votes.Cast("p1", "p4")
	g.Votes.Cast("p2", "p4")
	g.Votes.Cast("p0", "p3")

	// p4 dies after the votes were cast; its votes no longer count
	dead, err := g.GetPlayer("p4")
	require.NoError(t, err)
	dead.IsAlive = false

	eliminated := g.TallyVotes()

	require.NotNil(t, eliminated)
	assert.Equal(t, "p3", eliminated.PlayerID)
}

func TestTallyVotesTieGoesToFirstReached(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian, RoleCivilian, RoleCivilian)
	g.Phase = PhaseVoting

	// p3 and p4 end up with two votes each; p3 reaches two first
	g.Votes.Cast("p0", "p3")
	g.Votes.Cast("p1", "p3")
	g.Votes.Cast("p2", "p4")
	g.Votes.Cast("p5", "p4")

	eliminated := g.TallyVotes()

	require.NotNil(t, eliminated)
	assert.Equal(t, "p3", eliminated.PlayerID)
}

func TestTallyVotesNoVotesNoElimination(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian)
	g.Phase = PhaseVoting

	assert.Nil(t, g.TallyVotes())

	for _, p := range g.Players {
		assert.True(t, p.IsAlive)
	}
}

func TestVoteLogLastVoteCounts(t *testing.T) {
	g := newActiveGame(t, RoleMafia, RoleDoctor, RoleCommissioner, RoleCivilian)
	g.Phase = PhaseVoting

	g.Votes.Cast("p1", "p0")
	g.Votes.Cast("p1", "p3") // changes mind
	g.Votes.Cast("p2", "p3")

	assert.Equal(t, 2, g.Votes.Len())

	eliminated := g.TallyVotes()

	require.NotNil(t, eliminated)
	assert.Equal(t, "p3", eliminated.PlayerID)
}

func TestVoteLogReset(t *testing.T) {
	votes := NewVoteLog()
	votes.Cast("a", "b")
	votes.Cast("c", "b")
	require.Equal(t, 2, votes.Len())

	votes.Reset()
	assert.Zero(t, votes.Len())
}
