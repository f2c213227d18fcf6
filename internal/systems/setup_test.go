package systems

import (
	"os"
	"testing"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// openWorld - мир с картой w x h, где всё кроме внешней кромки - пол.
func openWorld(w, h int) *domain.World {
	m := domain.NewMap(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
	m.PopulateBlocked()
	return domain.NewWorld(m)
}

// corridorWorld - горизонтальный коридор y=2 от x=1 до x=w-2.
func corridorWorld(w int) *domain.World {
	m := domain.NewMap(w, 5)
	for x := 1; x < w-1; x++ {
		m.SetTile(x, 2, domain.TileFloor)
	}
	m.PopulateBlocked()
	return domain.NewWorld(m)
}

func at(x, y int) domain.Position {
	return domain.Position{X: x, Y: y}
}

// settle прогоняет видимость и индексацию, как это делает начало хода.
func settle(w *domain.World) {
	RunVisibility(w)
	IndexMap(w)
}

func domainMelee(target types.EntityID) domain.WantsToMelee {
	return domain.WantsToMelee{Target: target}
}
