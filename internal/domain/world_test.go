package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

func TestWorld_SpawnDespawn(t *testing.T) {
	w := NewWorld(NewMap(10, 10))

	orc := w.Spawn(enums.EntityKindMonster)
	potion := w.Spawn(enums.EntityKindItem)
	assert.True(t, w.IsAlive(orc))
	assert.Equal(t, enums.EntityKindItem, potion.Kind())
	assert.Equal(t, 2, w.EntityCount())

	w.Positions.Set(orc, Position{X: 3, Y: 3})
	w.Monsters.Set(orc, Monster{})
	w.Stats.Set(orc, NewCombatStats(16, 1, 4))

	require.NoError(t, w.Despawn(orc))
	assert.False(t, w.IsAlive(orc))
	assert.False(t, w.Positions.Has(orc))
	assert.False(t, w.Monsters.Has(orc))
	assert.False(t, w.Stats.Has(orc))
	assert.Equal(t, 1, w.EntityCount())

	assert.ErrorIs(t, w.Despawn(orc), ErrEntityNotAlive)
}

func TestWorld_SlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld(NewMap(10, 10))

	first := w.Spawn(enums.EntityKindMonster)
	require.NoError(t, w.Despawn(first))
	second := w.Spawn(enums.EntityKindItem)

	assert.Equal(t, first.Index(), second.Index())
	assert.Equal(t, first.Generation()+1, second.Generation())
	assert.False(t, w.IsAlive(first), "stale handle must stay dead")
	assert.True(t, w.IsAlive(second))
}

func TestWorld_AddDamageAccumulates(t *testing.T) {
	w := NewWorld(NewMap(10, 10))
	orc := w.Spawn(enums.EntityKindMonster)

	w.AddDamage(orc, 3)
	w.AddDamage(orc, 5)

	sd, ok := w.SufferDamage.Get(orc)
	require.True(t, ok)
	assert.Equal(t, []int{3, 5}, sd.Amounts)

	w.WantsToMelee.Set(orc, WantsToMelee{Target: orc})
	assert.Equal(t, 2, w.PendingIntents())
	w.ClearIntents()
	assert.Zero(t, w.PendingIntents())
}

func TestWorld_MustStatsPanics(t *testing.T) {
	w := NewWorld(NewMap(10, 10))
	ghost := w.Spawn(enums.EntityKindMonster)

	assert.PanicsWithError(t, (&MissingComponentError{Entity: ghost, Component: "CombatStats"}).Error(), func() {
		w.MustStats(ghost)
	})
}

func TestWorld_NameOf(t *testing.T) {
	w := NewWorld(NewMap(10, 10))
	orc := w.Spawn(enums.EntityKindMonster)
	assert.Equal(t, orc.String(), w.NameOf(orc))

	w.Names.Set(orc, Name{Name: "Orc #1"})
	assert.Equal(t, "Orc #1", w.NameOf(orc))
}

func TestGameLog_Ring(t *testing.T) {
	l := NewGameLog(2)
	l.Add("one")
	l.Addf("%s", "two")
	l.Add("three")

	assert.Equal(t, []string{"two", "three"}, l.Last(5))
	assert.Equal(t, []string{"three"}, l.Last(1))
	assert.Equal(t, 3, l.Total())
}
