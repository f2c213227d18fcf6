package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
)

// monsterTurn - видимость, ИИ и индексация в порядке конвейера.
func monsterTurn(w *domain.World) {
	RunVisibility(w)
	RunMonsterAI(w, enums.RunStateMonsterTurn)
	IndexMap(w)
}

func TestMonsterAI_ChasesDownCorridor(t *testing.T) {
	w := corridorWorld(20)
	dungeon.CreatePlayer(w, at(12, 2))
	orc := dungeon.Orc.SpawnMonster(w, at(5, 2))
	IndexMap(w)

	gap := 12 - 5
	moves := 0
	for turn := 0; turn < 20; turn++ {
		before, _ := w.Positions.Get(orc)
		blocked := append([]bool(nil), w.Map.Blocked...)

		monsterTurn(w)

		if w.WantsToMelee.Has(orc) {
			break
		}
		after, _ := w.Positions.Get(orc)
		require.NotEqual(t, before, after, "turn %d: orc idled", turn)
		require.False(t, blocked[w.Map.IndexOf(after)], "turn %d: stepped onto blocked %s", turn, after)
		moves++
	}

	assert.Equal(t, gap-1, moves)
	pos, _ := w.Positions.Get(orc)
	assert.Equal(t, at(11, 2), pos)
	melee, _ := w.WantsToMelee.Get(orc)
	assert.Equal(t, w.Player, melee.Target)
}

func TestMonsterAI_AdjacentPlayerGetsMeleeNotMove(t *testing.T) {
	w := openWorld(80, 43)
	for y := 1; y < 42; y++ {
		for x := 1; x < 79; x++ {
			w.Map.SetTile(x, y, domain.TileWall)
		}
	}
	room := domain.NewRect(10, 10, 10, 5)
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			w.Map.SetTile(x, y, domain.TileFloor)
		}
	}
	w.Map.PopulateBlocked()

	dungeon.CreatePlayer(w, at(17, 15))
	orc := dungeon.Orc.SpawnMonster(w, at(15, 15))
	settle(w)

	require.Equal(t, MoveDone, TryMovePlayer(w, -1, 0))
	require.Equal(t, at(16, 15), w.PlayerPos)
	require.InDelta(t, 1.0, at(15, 15).DistanceTo(w.PlayerPos), 1e-9)

	monsterTurn(w)

	pos, _ := w.Positions.Get(orc)
	assert.Equal(t, at(15, 15), pos, "no path-move")
	melee, ok := w.WantsToMelee.Get(orc)
	require.True(t, ok)
	assert.Equal(t, w.Player, melee.Target)
}

func TestMonsterAI_OnlyInMonsterTurn(t *testing.T) {
	w := corridorWorld(20)
	dungeon.CreatePlayer(w, at(12, 2))
	orc := dungeon.Orc.SpawnMonster(w, at(5, 2))
	settle(w)

	for _, state := range []enums.RunState{enums.RunStatePreRun, enums.RunStatePlayerTurn, enums.RunStateAwaitingInput} {
		RunMonsterAI(w, state)
	}

	pos, _ := w.Positions.Get(orc)
	assert.Equal(t, at(5, 2), pos)
	assert.Zero(t, w.WantsToMelee.Len())
}

func TestMonsterAI_IdlesWithoutSight(t *testing.T) {
	w := openWorld(20, 12)
	for y := 1; y <= 10; y++ {
		w.Map.SetTile(8, y, domain.TileWall)
	}
	w.Map.PopulateBlocked()
	dungeon.CreatePlayer(w, at(11, 5))
	orc := dungeon.Orc.SpawnMonster(w, at(5, 5))
	settle(w)

	monsterTurn(w)

	pos, _ := w.Positions.Get(orc)
	assert.Equal(t, at(5, 5), pos)
	assert.False(t, w.WantsToMelee.Has(orc))
}

func TestMonsterAI_FollowerWaitsBehindLead(t *testing.T) {
	w := corridorWorld(20)
	dungeon.CreatePlayer(w, at(11, 2))
	lead := dungeon.Orc.SpawnMonster(w, at(5, 2))
	follower := dungeon.Goblin.SpawnMonster(w, at(4, 2))
	IndexMap(w)

	monsterTurn(w)

	leadPos, _ := w.Positions.Get(lead)
	followerPos, _ := w.Positions.Get(follower)
	assert.Equal(t, at(6, 2), leadPos)
	// Коридор в одну клетку: ведущий по-прежнему перекрывает путь
	assert.Equal(t, at(4, 2), followerPos)
	assert.False(t, w.Map.Blocked[w.Map.Index(5, 2)])
}

func TestMonsterAI_FollowerUsesFreedCell(t *testing.T) {
	// Коридор y=2 с обходом по y=3 от x=6 до x=12. Из (4,2) выйти можно
	// только через (5,2), где стоит ведущий.
	w := corridorWorld(20)
	for x := 6; x <= 12; x++ {
		w.Map.SetTile(x, 3, domain.TileFloor)
	}
	w.Map.PopulateBlocked()
	dungeon.CreatePlayer(w, at(11, 2))
	lead := dungeon.Orc.SpawnMonster(w, at(5, 2))
	follower := dungeon.Goblin.SpawnMonster(w, at(4, 2))
	IndexMap(w)

	monsterTurn(w)

	leadPos, _ := w.Positions.Get(lead)
	followerPos, _ := w.Positions.Get(follower)
	assert.Equal(t, at(6, 2), leadPos)
	assert.Equal(t, at(5, 2), followerPos, "follower steps into the cell the lead just left")
	assert.True(t, w.Map.Blocked[w.Map.Index(6, 2)])
	assert.True(t, w.Map.Blocked[w.Map.Index(5, 2)])
	assert.False(t, w.Map.Blocked[w.Map.Index(4, 2)])
}

func TestMonsterAI_ConfusedSkipsTurns(t *testing.T) {
	w := corridorWorld(20)
	dungeon.CreatePlayer(w, at(12, 2))
	orc := dungeon.Orc.SpawnMonster(w, at(5, 2))
	w.Confusion.Set(orc, &domain.Confusion{Turns: 2})
	IndexMap(w)

	monsterTurn(w)
	monsterTurn(w)
	pos, _ := w.Positions.Get(orc)
	assert.Equal(t, at(5, 2), pos)
	assert.False(t, w.Confusion.Has(orc), "status wears off")

	monsterTurn(w)
	pos, _ = w.Positions.Get(orc)
	assert.Equal(t, at(6, 2), pos)
}

func TestMonsterAI_DeadPlayerStopsAI(t *testing.T) {
	w := corridorWorld(20)
	p := dungeon.CreatePlayer(w, at(6, 2))
	orc := dungeon.Orc.SpawnMonster(w, at(5, 2))
	require.NoError(t, w.Despawn(p))
	settle(w)

	RunMonsterAI(w, enums.RunStateMonsterTurn)
	assert.False(t, w.WantsToMelee.Has(orc))
}
