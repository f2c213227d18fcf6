package systems

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
)

// MoveOutcome - чем закончилась попытка шага игрока
type MoveOutcome uint8

const (
	MoveBlocked  MoveOutcome = iota // стена или блокирующая сущность, ход не потрачен
	MoveDone                        // игрок сменил клетку
	MoveAttacked                    // в клетке был противник, создан WantsToMelee
	MoveWaited                      // шаг (0,0), ход пропущен
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveDone:
		return "DONE"
	case MoveAttacked:
		return "ATTACKED"
	case MoveWaited:
		return "WAITED"
	default:
		return "BLOCKED"
	}
}

// MoveEntity - единственный способ сменить Position.
// Вместе с позицией обновляет Blocked для блокирующих сущностей,
// помечает Viewshed грязным и синхронизирует позицию игрока.
func MoveEntity(w *domain.World, e types.EntityID, to domain.Position) {
	m := w.Map
	from, hadPos := w.Positions.Get(e)

	if w.Blockers.Has(e) {
		if hadPos {
			m.Blocked[m.IndexOf(from)] = false
		}
		m.Blocked[m.IndexOf(to)] = true
	}

	w.Positions.Set(e, to)

	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.MarkDirty()
	}
	if e == w.Player {
		w.PlayerPos = to
	}
}

// TryMovePlayer обрабатывает шаг игрока на (dx, dy).
// Если в целевой клетке есть кто-то с CombatStats - это атака, а не шаг.
func TryMovePlayer(w *domain.World, dx, dy int) MoveOutcome {
	if dx == 0 && dy == 0 {
		return MoveWaited
	}

	m := w.Map
	pos, ok := w.Positions.Get(w.Player)
	if !ok {
		panic(&domain.MissingComponentError{Entity: w.Player, Component: "Position"})
	}

	target := pos.Shift(dx, dy)
	if target.X < 1 || target.X > m.Width-2 || target.Y < 1 || target.Y > m.Height-2 {
		return MoveBlocked
	}

	destination := m.IndexOf(target)
	for _, other := range m.TileContent[destination] {
		if other == w.Player || !w.Stats.Has(other) {
			continue
		}
		w.WantsToMelee.Set(w.Player, domain.WantsToMelee{Target: other})
		return MoveAttacked
	}

	if m.Blocked[destination] {
		return MoveBlocked
	}

	MoveEntity(w, w.Player, target)
	return MoveDone
}
