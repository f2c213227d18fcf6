package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

func id(i uint32) types.EntityID {
	return types.PackEntityID(enums.EntityKindMonster, 1, i)
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[Name]()
	s.Set(id(1), Name{Name: "orc"})
	s.Set(id(2), Name{Name: "goblin"})
	s.Set(id(1), Name{Name: "orc chief"})

	assert.Equal(t, 2, s.Len())
	got, ok := s.Get(id(1))
	assert.True(t, ok)
	assert.Equal(t, "orc chief", got.Name)
	assert.Equal(t, []types.EntityID{id(1), id(2)}, s.Entities(), "replace keeps insertion order")

	s.Remove(id(1))
	assert.False(t, s.Has(id(1)))
	assert.Equal(t, []types.EntityID{id(2)}, s.Entities())

	s.Remove(id(42)) // нет такого - не паникуем
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestStore_EntitiesIsCopy(t *testing.T) {
	s := NewStore[Monster]()
	s.Set(id(1), Monster{})
	s.Set(id(2), Monster{})

	for _, e := range s.Entities() {
		s.Remove(e)
	}
	assert.Zero(t, s.Len())
}

func TestQuery_Intersection(t *testing.T) {
	positions := NewStore[Position]()
	monsters := NewStore[Monster]()
	blockers := NewStore[BlocksTile]()

	for i := uint32(1); i <= 5; i++ {
		positions.Set(id(i), Position{X: int(i)})
	}
	monsters.Set(id(4), Monster{})
	monsters.Set(id(2), Monster{})
	monsters.Set(id(9), Monster{})
	blockers.Set(id(2), BlocksTile{})
	blockers.Set(id(4), BlocksTile{})

	assert.Equal(t, []types.EntityID{id(4), id(2)}, Query(positions, monsters))
	assert.Equal(t, []types.EntityID{id(2), id(4)}, Query(positions, monsters, blockers))
	assert.Nil(t, Query())
}
