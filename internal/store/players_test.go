package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mafia/internal/domain"
)

func TestAttachCreatesOnFirstJoin(t *testing.T) {
	s := NewPlayerStore()

	p := s.Attach("u1", "alice")

	require.NotNil(t, p)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "alice", p.Name)
	assert.True(t, p.IsAlive)
	assert.Equal(t, 1, s.Count())
}

func TestAttachHandsOutSessionLocalInstances(t *testing.T) {
	s := NewPlayerStore()

	first := s.Attach("u1", "alice")
	first.Role = domain.RoleMafia
	first.IsAlive = false
	first.IsRevealed = true

	second := s.Attach("u1", "alice the second")

	// The old session's state stays untouched; the new instance starts clean
	assert.NotSame(t, first, second)
	assert.Equal(t, domain.RoleMafia, first.Role)
	assert.False(t, first.IsAlive)

	assert.Equal(t, "u1", second.ID)
	assert.Equal(t, "alice the second", second.Name)
	assert.Empty(t, second.Role)
	assert.True(t, second.IsAlive)
	assert.False(t, second.IsRevealed)

	assert.Equal(t, 1, s.Count())
}

func TestGetReturnsCanonicalRecord(t *testing.T) {
	s := NewPlayerStore()
	s.Attach("u1", "alice")
	s.Attach("u1", "renamed")

	p, ok := s.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "renamed", p.Name)

	_, ok = s.Get("u2")
	assert.False(t, ok)
}
