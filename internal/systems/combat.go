package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// Hit - один разрешенный удар в ближнем бою.
type Hit struct {
	Attacker types.EntityID
	Target   types.EntityID
	Damage   int
}

// RunMeleeCombat разрешает все WantsToMelee и очищает их.
// Урон не применяется сразу, а копится в SufferDamage цели.
func RunMeleeCombat(w *domain.World) []Hit {
	var hits []Hit

	for _, e := range domain.Query(w.WantsToMelee, w.Stats) {
		wants, _ := w.WantsToMelee.Get(e)
		attacker := w.MustStats(e)
		if attacker.IsDead() {
			continue
		}

		target, ok := w.Stats.Get(wants.Target)
		if !ok || !w.IsAlive(wants.Target) || target.IsDead() {
			continue
		}

		damage := attacker.MeleeDamageAgainst(target)
		combatLogger := logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"attacker":  w.NameOf(e),
			"target":    w.NameOf(wants.Target),
			"damage":    damage,
		})

		if damage == 0 {
			w.Log.Addf("%s is unable to hurt %s.", w.NameOf(e), w.NameOf(wants.Target))
			combatLogger.Debug("Attack absorbed")
			continue
		}

		w.Log.Addf("%s hits %s, for %d hp.", w.NameOf(e), w.NameOf(wants.Target), damage)
		w.AddDamage(wants.Target, damage)
		hits = append(hits, Hit{Attacker: e, Target: wants.Target, Damage: damage})
		combatLogger.Debug("Attack resolved")
	}

	w.WantsToMelee.Clear()
	return hits
}

// RunDamage применяет накопленный урон и очищает SufferDamage.
func RunDamage(w *domain.World) {
	for _, e := range w.SufferDamage.Entities() {
		sd, _ := w.SufferDamage.Get(e)
		stats, ok := w.Stats.Get(e)
		if !ok {
			continue
		}
		for _, amount := range sd.Amounts {
			stats.TakeDamage(amount)
		}
	}
	w.SufferDamage.Clear()
}

// DeleteTheDead удаляет погибших. Игрок не удаляется: возвращается true,
// и дальше решает планировщик.
func DeleteTheDead(w *domain.World) (playerDied bool) {
	var dead []types.EntityID
	for _, e := range w.Stats.Entities() {
		stats, _ := w.Stats.Get(e)
		if !stats.IsDead() {
			continue
		}
		if e == w.Player {
			if !playerDied {
				w.Log.Add("You are dead!")
			}
			playerDied = true
			continue
		}
		dead = append(dead, e)
	}

	for _, e := range dead {
		w.Log.Addf("%s is dead.", w.NameOf(e))
		if err := w.Despawn(e); err != nil {
			logger.Log.WithError(err).Warn("Unable to delete dead entity")
		}
	}
	return playerDied
}
