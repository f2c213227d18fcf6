package domain

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

// remover - общая часть хранилищ, нужная для удаления сущности целиком.
type remover interface {
	Remove(e types.EntityID)
}

// World - арена сущностей, хранилища компонентов и общие ресурсы уровня.
//
// Мир принадлежит одной горутине симуляции. Системы получают его
// эксклюзивно и по очереди, в порядке конвейера планировщика.
type World struct {
	// Ресурсы
	Map       *Map
	Player    types.EntityID
	PlayerPos Position
	Log       *GameLog

	// Арена
	generations []uint32
	kinds       []enums.EntityKind
	alive       []bool
	free        []uint32
	liveCount   int

	// Компоненты
	Positions   *Store[Position]
	Renderables *Store[Renderable]
	Names       *Store[Name]
	Players     *Store[Player]
	Monsters    *Store[Monster]
	Blockers    *Store[BlocksTile]
	Viewsheds   *Store[*Viewshed]
	Stats       *Store[*CombatStats]

	Items       *Store[Item]
	Consumables *Store[Consumable]
	Healing     *Store[ProvidesHealing]
	Damaging    *Store[InflictsDamage]
	Ranged      *Store[Ranged]
	AreaEffects *Store[AreaOfEffect]
	Confusion   *Store[*Confusion]
	Backpack    *Store[InBackpack]

	// Намерения
	WantsToMelee  *Store[WantsToMelee]
	SufferDamage  *Store[*SufferDamage]
	WantsToPickup *Store[WantsToPickupItem]
	WantsToUse    *Store[WantsToUseItem]
	WantsToDrop   *Store[WantsToDropItem]

	all     []remover
	intents []interface{ Clear() }
}

// NewWorld создает пустой мир вокруг готовой карты.
func NewWorld(m *Map) *World {
	w := &World{
		Map: m,
		Log: NewGameLog(DefaultLogCapacity),

		Positions:   NewStore[Position](),
		Renderables: NewStore[Renderable](),
		Names:       NewStore[Name](),
		Players:     NewStore[Player](),
		Monsters:    NewStore[Monster](),
		Blockers:    NewStore[BlocksTile](),
		Viewsheds:   NewStore[*Viewshed](),
		Stats:       NewStore[*CombatStats](),

		Items:       NewStore[Item](),
		Consumables: NewStore[Consumable](),
		Healing:     NewStore[ProvidesHealing](),
		Damaging:    NewStore[InflictsDamage](),
		Ranged:      NewStore[Ranged](),
		AreaEffects: NewStore[AreaOfEffect](),
		Confusion:   NewStore[*Confusion](),
		Backpack:    NewStore[InBackpack](),

		WantsToMelee:  NewStore[WantsToMelee](),
		SufferDamage:  NewStore[*SufferDamage](),
		WantsToPickup: NewStore[WantsToPickupItem](),
		WantsToUse:    NewStore[WantsToUseItem](),
		WantsToDrop:   NewStore[WantsToDropItem](),
	}

	w.all = []remover{
		w.Positions, w.Renderables, w.Names, w.Players, w.Monsters, w.Blockers,
		w.Viewsheds, w.Stats, w.Items, w.Consumables, w.Healing, w.Damaging,
		w.Ranged, w.AreaEffects, w.Confusion, w.Backpack,
		w.WantsToMelee, w.SufferDamage, w.WantsToPickup, w.WantsToUse, w.WantsToDrop,
	}
	w.intents = []interface{ Clear() }{
		w.WantsToMelee, w.SufferDamage, w.WantsToPickup, w.WantsToUse, w.WantsToDrop,
	}
	return w
}

// Spawn выделяет слот арены и возвращает новый дескриптор.
func (w *World) Spawn(kind enums.EntityKind) types.EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 1)
		w.kinds = append(w.kinds, kind)
		w.alive = append(w.alive, false)
	}
	w.kinds[idx] = kind
	w.alive[idx] = true
	w.liveCount++
	return types.PackEntityID(kind, w.generations[idx], idx)
}

// IsAlive проверяет, что дескриптор указывает на живую сущность текущего поколения.
func (w *World) IsAlive(id types.EntityID) bool {
	idx := id.Index()
	if id.IsNil() || int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// Despawn удаляет сущность из всех хранилищ и освобождает слот.
// Старые дескрипторы этого слота после вызова становятся мертвыми.
func (w *World) Despawn(id types.EntityID) error {
	if !w.IsAlive(id) {
		return fmt.Errorf("despawn %s: %w", id, ErrEntityNotAlive)
	}
	for _, s := range w.all {
		s.Remove(id)
	}

	idx := id.Index()
	w.alive[idx] = false
	w.generations[idx]++
	if w.generations[idx] > types.MaxGeneration {
		w.generations[idx] = 1
	}
	w.free = append(w.free, idx)
	w.liveCount--
	return nil
}

// EntityCount - число живых сущностей.
func (w *World) EntityCount() int {
	return w.liveCount
}

// NameOf возвращает имя сущности или её дескриптор, если имени нет.
func (w *World) NameOf(id types.EntityID) string {
	if n, ok := w.Names.Get(id); ok {
		return n.Name
	}
	return id.String()
}

// MustStats возвращает боевые характеристики, которые вызывающий уже проверил.
// Отсутствие - нарушение инварианта, поэтому паника.
func (w *World) MustStats(id types.EntityID) *CombatStats {
	s, ok := w.Stats.Get(id)
	if !ok {
		panic(&MissingComponentError{Entity: id, Component: "CombatStats"})
	}
	return s
}

// AddDamage добавляет урон в накопитель SufferDamage цели.
func (w *World) AddDamage(victim types.EntityID, amount int) {
	if sd, ok := w.SufferDamage.Get(victim); ok {
		sd.Amounts = append(sd.Amounts, amount)
		return
	}
	w.SufferDamage.Set(victim, &SufferDamage{Amounts: []int{amount}})
}

// ClearIntents сбрасывает все одношаговые намерения.
func (w *World) ClearIntents() {
	for _, s := range w.intents {
		s.Clear()
	}
}

// PendingIntents - сколько намерений ещё не потреблено.
func (w *World) PendingIntents() int {
	return w.WantsToMelee.Len() + w.SufferDamage.Len() + w.WantsToPickup.Len() +
		w.WantsToUse.Len() + w.WantsToDrop.Len()
}

// EntitiesAt возвращает содержимое клетки по индексу пространственного индекса.
func (w *World) EntitiesAt(p Position) []types.EntityID {
	if !w.Map.InBounds(p.X, p.Y) {
		return nil
	}
	return w.Map.TileContent[w.Map.IndexOf(p)]
}
