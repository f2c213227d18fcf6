package agent

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/internal/systems"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он занимает место терминала: отвечает планировщику на запросы ввода
// и обслуживает модальные меню.
//
// Жизненный цикл одного ответа на ввод:
//  1. Пока не исчерпан Script - отдает следующую команду сценария.
//  2. Потом автопилот: поднять предмет под ногами, подлечиться при низком
//     здоровье, выстрелить свитком или догнать ближайшего видимого монстра.
//  3. Если монстров не видно - идет к центру следующей комнаты.
type Bot struct {
	Script []domain.Command

	// MaxInputs - после стольких ответов бот выходит из игры. 0 - без ограничений.
	MaxInputs int

	inputs   int
	pending  types.EntityID // предмет, который выберем в меню инвентаря
	roomGoal int
}

var (
	_ engine.Input = (*Bot)(nil)
	_ engine.Menus = (*Bot)(nil)
)

func NewBot(script []domain.Command, maxInputs int) *Bot {
	return &Bot{Script: script, MaxInputs: maxInputs}
}

// Inputs - сколько раз бот уже отвечал на ввод.
func (b *Bot) Inputs() int {
	return b.inputs
}

// PlayerInput решает, что делать, и отдает команду планировщику.
// Команда, не потратившая ход (стена), заменяется ожиданием, чтобы бот
// не крутился на месте.
func (b *Bot) PlayerInput(s *engine.Scheduler) enums.RunState {
	b.inputs++
	if b.MaxInputs > 0 && b.inputs > b.MaxInputs {
		return s.HandleCommand(domain.Command{Action: domain.ActionQuit})
	}

	cmd := b.decide(s.World)
	logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"input":     b.inputs,
		"command":   cmd.String(),
	}).Debug("Bot decided")

	next := s.HandleCommand(cmd)
	if next == enums.RunStateAwaitingInput && !s.Quit() {
		next = s.HandleCommand(domain.Command{Action: domain.ActionWait})
	}
	return next
}

func (b *Bot) decide(w *domain.World) domain.Command {
	if i := b.inputs - 1; i < len(b.Script) {
		return b.Script[i]
	}

	if len(systems.Backpack(w, w.Player)) < domain.MaxBackpackSize {
		for _, e := range w.EntitiesAt(w.PlayerPos) {
			if w.Items.Has(e) {
				return domain.Command{Action: domain.ActionPickup}
			}
		}
	}

	stats := w.MustStats(w.Player)
	if stats.HP*2 < stats.MaxHP {
		if potion, ok := findInBackpack(w, func(e types.EntityID) bool { return w.Healing.Has(e) }); ok {
			b.pending = potion
			return domain.Command{Action: domain.ActionOpenInventory}
		}
	}

	target, ok := nearestVisibleMonster(w)
	if !ok {
		return b.explore(w)
	}

	if !w.PlayerPos.IsAdjacent(target) {
		scroll, ok := findInBackpack(w, func(e types.EntityID) bool {
			r, ranged := w.Ranged.Get(e)
			return ranged && systems.ValidateTarget(w, w.Player, target, r.Range).Valid
		})
		if ok {
			b.pending = scroll
			return domain.Command{Action: domain.ActionOpenInventory}
		}
	}

	return stepToward(w, target)
}

// explore ведет игрока по центрам комнат по кругу.
func (b *Bot) explore(w *domain.World) domain.Command {
	rooms := w.Map.Rooms
	if len(rooms) == 0 {
		return domain.Command{Action: domain.ActionWait}
	}

	goal := rooms[b.roomGoal%len(rooms)].Center()
	if goal == w.PlayerPos {
		b.roomGoal++
		goal = rooms[b.roomGoal%len(rooms)].Center()
	}

	cmd := stepToward(w, goal)
	if cmd.Action == domain.ActionWait {
		b.roomGoal++
	}
	return cmd
}

// ShowInventory выбирает заранее намеченный предмет.
func (b *Bot) ShowInventory(s *engine.Scheduler) (engine.MenuResult, types.EntityID) {
	item := b.pending
	b.pending = types.NilEntityID

	if item.IsNil() {
		return engine.MenuCancel, types.NilEntityID
	}
	if bp, ok := s.World.Backpack.Get(item); !ok || bp.Owner != s.World.Player {
		return engine.MenuCancel, types.NilEntityID
	}
	return engine.MenuSelected, item
}

// ShowDropItem - бот ничего не выбрасывает.
func (b *Bot) ShowDropItem(s *engine.Scheduler) (engine.MenuResult, types.EntityID) {
	return engine.MenuCancel, types.NilEntityID
}

// SelectTarget целится в ближайшего монстра, в которого можно попасть.
func (b *Bot) SelectTarget(s *engine.Scheduler, rangeCells int) (engine.MenuResult, *domain.Position) {
	target, ok := nearestVisibleMonster(s.World)
	if !ok || !systems.ValidateTarget(s.World, s.World.Player, target, rangeCells).Valid {
		return engine.MenuCancel, nil
	}
	return engine.MenuSelected, &target
}

func findInBackpack(w *domain.World, match func(types.EntityID) bool) (types.EntityID, bool) {
	for _, e := range systems.Backpack(w, w.Player) {
		if match(e) {
			return e, true
		}
	}
	return types.NilEntityID, false
}

// nearestVisibleMonster - ближайший монстр в поле зрения игрока.
func nearestVisibleMonster(w *domain.World) (domain.Position, bool) {
	vs, ok := w.Viewsheds.Get(w.Player)
	if !ok {
		return domain.Position{}, false
	}

	var best domain.Position
	bestDist := -1
	for _, e := range domain.Query(w.Monsters, w.Positions) {
		pos, _ := w.Positions.Get(e)
		if !vs.CanSee(pos) {
			continue
		}
		if d := w.PlayerPos.DistanceSquaredTo(pos); bestDist < 0 || d < bestDist {
			best, bestDist = pos, d
		}
	}
	return best, bestDist >= 0
}

// stepToward - один шаг по пути A* к goal. Соседняя цель - шаг прямо в неё,
// что для монстра означает атаку.
func stepToward(w *domain.World, goal domain.Position) domain.Command {
	from := w.PlayerPos
	if from.IsAdjacent(goal) {
		return domain.Move(goal.X-from.X, goal.Y-from.Y)
	}

	m := w.Map
	if !m.InBounds(goal.X, goal.Y) {
		return domain.Command{Action: domain.ActionWait}
	}

	// Клетка цели может быть занята монстром, на время поиска открываем её
	gi := m.IndexOf(goal)
	wasBlocked := m.Blocked[gi]
	m.Blocked[gi] = false
	path := systems.AStarSearch(m, m.IndexOf(from), gi)
	m.Blocked[gi] = wasBlocked

	if !path.Success || len(path.Steps) < 2 {
		return domain.Command{Action: domain.ActionWait}
	}
	next := m.PositionOf(path.Steps[1])
	return domain.Move(next.X-from.X, next.Y-from.Y)
}
