package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMafiaKillAlwaysSucceeds(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleMafia]

	kind, ok := handler.NightAction()
	require.True(t, ok)
	assert.Equal(t, ActionKill, kind)

	actor := NewPlayer("m1", "mafia")
	target := NewPlayer("c1", "civilian")
	target.Role = RoleCivilian

	assert.True(t, handler.Resolve(actor, target, nil))
}

func TestDonCheckFindsCommissioner(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleDon]

	don := NewPlayer("d1", "don")
	commissioner := NewPlayer("c1", "commissioner")
	commissioner.Role = RoleCommissioner
	civilian := NewPlayer("v1", "civilian")
	civilian.Role = RoleCivilian

	assert.False(t, handler.Resolve(don, civilian, nil))
	assert.False(t, civilian.IsRevealed)

	assert.True(t, handler.Resolve(don, commissioner, nil))
	assert.True(t, commissioner.IsRevealed)
}

func TestDoctorCannotHealSameTargetTwiceInARow(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleDoctor]

	doctor := NewPlayer("doc", "doctor")
	a := NewPlayer("a", "alice")
	b := NewPlayer("b", "bob")

	assert.True(t, handler.Resolve(doctor, a, nil), "first heal succeeds")
	assert.False(t, handler.Resolve(doctor, a, nil), "repeat heal on same target fails")
	assert.True(t, handler.Resolve(doctor, b, nil), "different target succeeds")
	assert.True(t, handler.Resolve(doctor, a, nil), "original target allowed again later")
}

func TestCommissionerCheckCountsInvestigations(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleCommissioner].(*CommissionerHandler)

	commissioner := NewPlayer("c1", "commissioner")
	suspect := NewPlayer("s1", "suspect")
	suspect.Role = RoleMafia

	assert.False(t, handler.CanEliminate())
	for i := 0; i < 3; i++ {
		assert.True(t, handler.Resolve(commissioner, suspect, nil))
	}
	assert.True(t, handler.CanEliminate())
}

func TestLawyerProtectsOnlyMafiaAligned(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleLawyer]

	lawyer := NewPlayer("l1", "lawyer")
	mafia := NewPlayer("m1", "mafia")
	mafia.Role = RoleMafia
	don := NewPlayer("d1", "don")
	don.Role = RoleDon
	civilian := NewPlayer("v1", "civilian")
	civilian.Role = RoleCivilian

	assert.True(t, handler.Resolve(lawyer, mafia, nil))
	assert.True(t, handler.Resolve(lawyer, don, nil))
	assert.False(t, handler.Resolve(lawyer, civilian, nil))
}

func TestCivilianHasNoNightAction(t *testing.T) {
	registry := NewRegistry()
	handler := registry[RoleCivilian]

	_, ok := handler.NightAction()
	assert.False(t, ok)
}

// The handler table carries doctor and commissioner state per role, not per
// player. Sessions sharing a registry therefore share that state: a doctor in
// one game blocks a doctor in another from healing the same identity twice in
// a row. Fresh registries (NewRegistry) are isolated.
func TestDoctorStateIsSharedWithinARegistry(t *testing.T) {
	shared := NewRegistry()
	handler := shared[RoleDoctor]

	doctorOne := NewPlayer("doc1", "first doctor")
	doctorTwo := NewPlayer("doc2", "second doctor")
	target := NewPlayer("t1", "target")

	assert.True(t, handler.Resolve(doctorOne, target, nil))
	assert.False(t, handler.Resolve(doctorTwo, target, nil),
		"second doctor inherits the first doctor's last target")

	isolated := NewRegistry()
	assert.True(t, isolated[RoleDoctor].Resolve(doctorTwo, target, nil),
		"a fresh registry has no accumulated state")
}
