package systems

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

var (
	ErrBackpackFull    = errors.New("your backpack is full")
	ErrNothingToPickup = errors.New("there is nothing here to pick up")
)

// --- PICKUP ---

// TryPickup ищет предмет под ногами actor и создает WantsToPickupItem.
func TryPickup(w *domain.World, actor types.EntityID) (types.EntityID, error) {
	pos, ok := w.Positions.Get(actor)
	if !ok {
		return types.NilEntityID, &domain.MissingComponentError{Entity: actor, Component: "Position"}
	}
	if len(Backpack(w, actor)) >= domain.MaxBackpackSize {
		return types.NilEntityID, ErrBackpackFull
	}

	for _, e := range w.EntitiesAt(pos) {
		if w.Items.Has(e) {
			w.WantsToPickup.Set(actor, domain.WantsToPickupItem{CollectedBy: actor, Item: e})
			return e, nil
		}
	}
	return types.NilEntityID, ErrNothingToPickup
}

// RunItemCollection переносит предметы с пола в рюкзак.
func RunItemCollection(w *domain.World) {
	for _, e := range w.WantsToPickup.Entities() {
		pickup, _ := w.WantsToPickup.Get(e)
		if !w.IsAlive(pickup.Item) {
			continue
		}
		w.Positions.Remove(pickup.Item)
		w.Backpack.Set(pickup.Item, domain.InBackpack{Owner: pickup.CollectedBy})

		if pickup.CollectedBy == w.Player {
			w.Log.Addf("You pick up the %s.", w.NameOf(pickup.Item))
		}
	}
	w.WantsToPickup.Clear()
}

// Backpack возвращает предметы владельца в порядке подбора.
func Backpack(w *domain.World, owner types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, e := range w.Backpack.Entities() {
		bp, _ := w.Backpack.Get(e)
		if bp.Owner == owner {
			out = append(out, e)
		}
	}
	return out
}

// --- USE ---

// ItemEffect описывает, что произошло при применении предмета.
type ItemEffect struct {
	User    types.EntityID
	Item    types.EntityID
	Targets []types.EntityID
	Healed  int
	Damage  int
	Area    bool
}

// RunItemUse применяет предметы из WantsToUseItem.
//
// Без клетки-цели предмет действует на применившего. С целью - на всех
// с CombatStats в клетке, а для AreaOfEffect - в видимой области радиуса Radius.
// Расходуемый предмет исчезает, только если эффект сработал.
func RunItemUse(w *domain.World) []ItemEffect {
	var effects []ItemEffect

	for _, user := range w.WantsToUse.Entities() {
		use, _ := w.WantsToUse.Get(user)
		useLogger := logger.Log.WithFields(logrus.Fields{
			"component": "item_use",
			"user":      w.NameOf(user),
			"item":      w.NameOf(use.Item),
		})

		bp, ok := w.Backpack.Get(use.Item)
		if !ok || bp.Owner != user {
			useLogger.Warn("Item is not in user's backpack")
			continue
		}

		if use.Target != nil {
			if ranged, ok := w.Ranged.Get(use.Item); ok {
				if res := ValidateTarget(w, user, *use.Target, ranged.Range); !res.Valid {
					w.Log.Add(res.Message)
					continue
				}
			}
		}

		effect := ItemEffect{User: user, Item: use.Item, Targets: itemTargets(w, user, use)}
		used := false

		if heal, ok := w.Healing.Get(use.Item); ok {
			for _, t := range effect.Targets {
				stats, ok := w.Stats.Get(t)
				if !ok {
					continue
				}
				stats.Heal(heal.HealAmount)
				effect.Healed += heal.HealAmount
				used = true
				if user == w.Player {
					w.Log.Addf("You use the %s, healing %d hp.", w.NameOf(use.Item), heal.HealAmount)
				}
			}
		}

		if dmg, ok := w.Damaging.Get(use.Item); ok {
			for _, t := range effect.Targets {
				if !w.Stats.Has(t) {
					continue
				}
				w.AddDamage(t, dmg.Damage)
				effect.Damage += dmg.Damage
				used = true
				if user == w.Player {
					w.Log.Addf("You use %s on %s, inflicting %d hp.", w.NameOf(use.Item), w.NameOf(t), dmg.Damage)
				}
			}
			effect.Area = w.AreaEffects.Has(use.Item)
		}

		if conf, ok := w.Confusion.Get(use.Item); ok {
			for _, t := range effect.Targets {
				if !w.Monsters.Has(t) {
					continue
				}
				w.Confusion.Set(t, &domain.Confusion{Turns: conf.Turns})
				used = true
				if user == w.Player {
					w.Log.Addf("You use %s on %s, confusing them.", w.NameOf(use.Item), w.NameOf(t))
				}
			}
		}

		if !used {
			w.Log.Addf("The %s has no effect.", w.NameOf(use.Item))
			continue
		}

		effects = append(effects, effect)
		useLogger.WithField("targets", len(effect.Targets)).Debug("Item used")

		if w.Consumables.Has(use.Item) {
			if err := w.Despawn(use.Item); err != nil {
				useLogger.WithError(err).Warn("Unable to consume item")
			}
		}
	}

	w.WantsToUse.Clear()
	return effects
}

func itemTargets(w *domain.World, user types.EntityID, use domain.WantsToUseItem) []types.EntityID {
	if use.Target == nil {
		return []types.EntityID{user}
	}

	m := w.Map
	if !m.InBounds(use.Target.X, use.Target.Y) {
		return nil
	}

	area, ok := w.AreaEffects.Get(use.Item)
	if !ok {
		return withStats(w, m.TileContent[m.IndexOf(*use.Target)])
	}

	var targets []types.EntityID
	for _, p := range ComputeFOV(m, *use.Target, area.Radius) {
		targets = append(targets, withStats(w, m.TileContent[m.IndexOf(p)])...)
	}
	return targets
}

func withStats(w *domain.World, entities []types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, e := range entities {
		if w.Stats.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// --- DROP ---

// RunItemDrop выкладывает предметы из рюкзака под ноги владельцу.
func RunItemDrop(w *domain.World) {
	for _, e := range w.WantsToDrop.Entities() {
		drop, _ := w.WantsToDrop.Get(e)
		bp, ok := w.Backpack.Get(drop.Item)
		if !ok || bp.Owner != e {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}

		w.Backpack.Remove(drop.Item)
		w.Positions.Set(drop.Item, pos)

		if e == w.Player {
			w.Log.Addf("You drop the %s.", w.NameOf(drop.Item))
		}
	}
	w.WantsToDrop.Clear()
}
