package engine_test

import (
	"os"
	"testing"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// arena - открытая комната 20x10 с игроком в (5,5).
func arena() *domain.World {
	m := domain.NewMap(20, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 19; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
	m.PopulateBlocked()
	w := domain.NewWorld(m)
	dungeon.CreatePlayer(w, at(5, 5))
	return w
}

func at(x, y int) domain.Position {
	return domain.Position{X: x, Y: y}
}

// issue - ввод, который отдает планировщику одну команду.
func issue(cmd domain.Command) func(s *engine.Scheduler) enums.RunState {
	return func(s *engine.Scheduler) enums.RunState {
		return s.HandleCommand(cmd)
	}
}
