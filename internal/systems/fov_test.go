package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p5d/RustyRougelike/internal/domain"
)

func contains(tiles []domain.Position, p domain.Position) bool {
	for _, t := range tiles {
		if t == p {
			return true
		}
	}
	return false
}

func TestComputeFOV_OpenRoomWithinRadius(t *testing.T) {
	w := openWorld(20, 20)
	origin := at(9, 9)

	tiles := ComputeFOV(w.Map, origin, 3)

	assert.True(t, contains(tiles, origin), "origin is always visible")
	assert.True(t, contains(tiles, at(12, 9)), "distance 3 is inside")
	assert.True(t, contains(tiles, at(11, 11)), "dx²+dy²=8 is inside")
	assert.False(t, contains(tiles, at(13, 9)), "distance 4 is outside even with clear sight")
	assert.False(t, contains(tiles, at(12, 11)), "dx²+dy²=13 is outside")

	for _, p := range tiles {
		assert.LessOrEqual(t, p.DistanceSquaredTo(origin), 9)
	}
}

func TestComputeFOV_WallOccludes(t *testing.T) {
	w := openWorld(20, 20)
	w.Map.SetTile(7, 5, domain.TileWall)

	tiles := ComputeFOV(w.Map, at(5, 5), 8)

	assert.True(t, contains(tiles, at(7, 5)), "the wall itself is seen")
	assert.False(t, contains(tiles, at(8, 5)), "cell directly behind the wall")
	assert.False(t, contains(tiles, at(10, 5)))
	assert.True(t, contains(tiles, at(8, 7)), "off-axis cell keeps sight")
}

func TestComputeFOV_ClippedToGrid(t *testing.T) {
	w := openWorld(6, 6)
	tiles := ComputeFOV(w.Map, at(1, 1), 10)

	for _, p := range tiles {
		assert.True(t, w.Map.InBounds(p.X, p.Y), "tile %s outside grid", p)
	}
	assert.True(t, contains(tiles, at(0, 0)), "border wall is visible")
}

func TestComputeFOV_NoDuplicates(t *testing.T) {
	w := openWorld(30, 30)
	tiles := ComputeFOV(w.Map, at(15, 15), 8)

	seen := map[domain.Position]bool{}
	for _, p := range tiles {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}
}

func TestHasLineOfSight_EndpointOpaque(t *testing.T) {
	w := openWorld(20, 20)
	w.Map.SetTile(7, 5, domain.TileWall)

	assert.True(t, HasLineOfSight(w.Map, at(5, 5), at(5, 5)))
	assert.True(t, HasLineOfSight(w.Map, at(5, 5), at(7, 5)), "end point is not checked")
	assert.False(t, HasLineOfSight(w.Map, at(5, 5), at(9, 5)))
	assert.True(t, HasLineOfSight(w.Map, at(5, 5), at(9, 9)))
}
