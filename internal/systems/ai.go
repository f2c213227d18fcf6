package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// RunMonsterAI - ход монстров. Работает только в фазе MonsterTurn.
//
// Для каждого монстра: сосед игрока (дистанция < 1.5) атакует;
// иначе, если видит игрока, делает один шаг по пути A*; иначе стоит.
// Сбитый с толку монстр пропускает ход, счетчик уменьшается.
func RunMonsterAI(w *domain.World, state enums.RunState) {
	if state != enums.RunStateMonsterTurn || !w.IsAlive(w.Player) {
		return
	}

	m := w.Map
	playerPos := w.PlayerPos

	for _, e := range domain.Query(w.Monsters, w.Viewsheds, w.Positions) {
		aiLogger := logger.Log.WithFields(logrus.Fields{
			"component": "monster_ai",
			"monster":   w.NameOf(e),
		})

		if conf, ok := w.Confusion.Get(e); ok {
			conf.Turns--
			if conf.Turns <= 0 {
				w.Confusion.Remove(e)
			}
			aiLogger.WithField("turns_left", conf.Turns).Debug("Confused, skipping turn")
			continue
		}

		pos, _ := w.Positions.Get(e)
		if pos.DistanceTo(playerPos) < domain.MeleeRange {
			w.WantsToMelee.Set(e, domain.WantsToMelee{Target: w.Player})
			aiLogger.Debug("Player adjacent, attacking")
			continue
		}

		vs, _ := w.Viewsheds.Get(e)
		if !vs.CanSee(playerPos) {
			continue
		}

		path := AStarSearch(m, m.IndexOf(pos), m.IndexOf(playerPos))
		if !path.Success || len(path.Steps) < 2 {
			aiLogger.Trace("No path to player, idling")
			continue
		}

		next := m.PositionOf(path.Steps[1])
		MoveEntity(w, e, next)
		aiLogger.WithFields(logrus.Fields{
			"from": pos,
			"to":   next,
		}).Trace("Chasing player")
	}
}
