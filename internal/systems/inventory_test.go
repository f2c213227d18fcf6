package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
)

func TestPickupAndDrop(t *testing.T) {
	w := openWorld(10, 10)
	p := dungeon.CreatePlayer(w, at(2, 2))
	potion := dungeon.HealthPotion.SpawnItem(w, at(2, 2))
	settle(w)

	item, err := TryPickup(w, p)
	require.NoError(t, err)
	assert.Equal(t, potion, item)

	RunItemCollection(w)
	assert.False(t, w.Positions.Has(potion))
	assert.Equal(t, []types.EntityID{potion}, Backpack(w, p))
	assert.Zero(t, w.WantsToPickup.Len())

	MoveEntity(w, p, at(4, 4))
	w.WantsToDrop.Set(p, domain.WantsToDropItem{Item: potion})
	RunItemDrop(w)

	pos, ok := w.Positions.Get(potion)
	require.True(t, ok)
	assert.Equal(t, at(4, 4), pos)
	assert.Empty(t, Backpack(w, p))
}

func TestTryPickup_NothingHere(t *testing.T) {
	w := openWorld(10, 10)
	p := dungeon.CreatePlayer(w, at(2, 2))
	settle(w)

	_, err := TryPickup(w, p)
	assert.ErrorIs(t, err, ErrNothingToPickup)
	assert.Zero(t, w.WantsToPickup.Len())
}

func TestTryPickup_BackpackFull(t *testing.T) {
	w := openWorld(10, 10)
	p := dungeon.CreatePlayer(w, at(2, 2))
	for i := 0; i < domain.MaxBackpackSize; i++ {
		dungeon.HealthPotion.SpawnInBackpack(w, p)
	}
	dungeon.HealthPotion.SpawnItem(w, at(2, 2))
	settle(w)

	_, err := TryPickup(w, p)
	assert.ErrorIs(t, err, ErrBackpackFull)
}

func TestItemUse_HealthPotion(t *testing.T) {
	w := openWorld(10, 10)
	p := dungeon.CreatePlayer(w, at(2, 2))
	potion := dungeon.HealthPotion.SpawnInBackpack(w, p)
	w.MustStats(p).HP = 10

	w.WantsToUse.Set(p, domain.WantsToUseItem{Item: potion})
	effects := RunItemUse(w)

	require.Len(t, effects, 1)
	assert.Equal(t, 8, effects[0].Healed)
	assert.Equal(t, 18, w.MustStats(p).HP)
	assert.False(t, w.IsAlive(potion), "consumed")
	assert.Zero(t, w.WantsToUse.Len())
}

func TestItemUse_FireballHitsArea(t *testing.T) {
	w := openWorld(20, 20)
	p := dungeon.CreatePlayer(w, at(5, 5))
	near := dungeon.Orc.SpawnMonster(w, at(9, 5))
	side := dungeon.Goblin.SpawnMonster(w, at(10, 6))
	far := dungeon.Orc.SpawnMonster(w, at(9, 12))
	fireball := dungeon.FireballScroll.SpawnInBackpack(w, p)
	settle(w)

	target := at(9, 5)
	w.WantsToUse.Set(p, domain.WantsToUseItem{Item: fireball, Target: &target})
	effects := RunItemUse(w)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Area)
	assert.ElementsMatch(t, []types.EntityID{near, side}, effects[0].Targets)

	RunDamage(w)
	DeleteTheDead(w)
	assert.False(t, w.IsAlive(near))
	assert.False(t, w.IsAlive(side))
	assert.True(t, w.IsAlive(far))
	assert.Equal(t, domain.PlayerMaxHP, w.MustStats(p).HP, "player outside the blast")
}

func TestItemUse_MagicMissileOutOfRange(t *testing.T) {
	w := openWorld(30, 10)
	p := dungeon.CreatePlayer(w, at(2, 5))
	orc := dungeon.Orc.SpawnMonster(w, at(9, 5))
	missile := dungeon.MagicMissileScroll.SpawnInBackpack(w, p)
	settle(w)

	target := at(9, 5)
	w.WantsToUse.Set(p, domain.WantsToUseItem{Item: missile, Target: &target})
	assert.Empty(t, RunItemUse(w))

	assert.True(t, w.IsAlive(missile), "rejected use keeps the scroll")
	assert.Zero(t, w.SufferDamage.Len())
	assert.Equal(t, []string{"That is out of range."}, w.Log.Last(1))
	assert.True(t, w.IsAlive(orc))
}

func TestItemUse_ConfusionOnMonster(t *testing.T) {
	w := openWorld(20, 10)
	p := dungeon.CreatePlayer(w, at(2, 5))
	orc := dungeon.Orc.SpawnMonster(w, at(6, 5))
	scroll := dungeon.ConfusionScroll.SpawnInBackpack(w, p)
	settle(w)

	target := at(6, 5)
	w.WantsToUse.Set(p, domain.WantsToUseItem{Item: scroll, Target: &target})
	require.Len(t, RunItemUse(w), 1)

	conf, ok := w.Confusion.Get(orc)
	require.True(t, ok)
	assert.Equal(t, 4, conf.Turns)
	assert.False(t, w.IsAlive(scroll))
}

func TestItemUse_EmptyCellHasNoEffect(t *testing.T) {
	w := openWorld(20, 10)
	p := dungeon.CreatePlayer(w, at(2, 5))
	missile := dungeon.MagicMissileScroll.SpawnInBackpack(w, p)
	settle(w)

	target := at(5, 5)
	w.WantsToUse.Set(p, domain.WantsToUseItem{Item: missile, Target: &target})

	assert.Empty(t, RunItemUse(w))
	assert.True(t, w.IsAlive(missile))
}

func TestValidTargets(t *testing.T) {
	w := openWorld(30, 10)
	p := dungeon.CreatePlayer(w, at(2, 5))
	settle(w)

	targets := ValidTargets(w, p, 3)
	require.NotEmpty(t, targets)
	for _, pos := range targets {
		assert.LessOrEqual(t, pos.DistanceTo(at(2, 5)), 3.0)
	}
	assert.False(t, ValidateTarget(w, p, at(6, 5), 3).Valid)
	assert.True(t, ValidateTarget(w, p, at(5, 5), 3).Valid)
}
