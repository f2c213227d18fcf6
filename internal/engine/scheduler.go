package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
	"github.com/p5d/RustyRougelike/internal/engine/handlers/actions"
	"github.com/p5d/RustyRougelike/internal/systems"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// Targeting - параметры выбора цели, пока планировщик в ShowTargeting.
type Targeting struct {
	Range int
	Item  types.EntityID
}

// Scheduler - конечный автомат ходов поверх мира.
//
// Один вызов Tick выполняет ровно один шаг автомата. Только фазы PreRun,
// PlayerTurn и MonsterTurn гоняют конвейер систем, остальные отдают
// управление вводу и меню.
type Scheduler struct {
	World *domain.World
	Seed  int64

	state     enums.RunState
	targeting Targeting

	input     Input
	menus     Menus
	observers []Observer
	handlers  map[domain.ActionType]handlers.HandlerFunc

	turn     int
	gameOver bool
	quit     bool
}

// NewScheduler создает планировщик в фазе PreRun.
func NewScheduler(w *domain.World, input Input, menus Menus) *Scheduler {
	s := &Scheduler{
		World:    w,
		state:    enums.RunStatePreRun,
		input:    input,
		menus:    menus,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

func (s *Scheduler) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithDirection(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionPickup] = handlers.WithEmptyPayload(actions.HandlePickup)
	s.handlers[domain.ActionOpenInventory] = handlers.WithEmptyPayload(actions.HandleOpenInventory)
	s.handlers[domain.ActionOpenDrop] = handlers.WithEmptyPayload(actions.HandleOpenDrop)
	s.handlers[domain.ActionQuit] = handlers.WithEmptyPayload(actions.HandleQuit)
}

// Subscribe добавляет наблюдателя за прогонами конвейера.
func (s *Scheduler) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Scheduler) State() enums.RunState { return s.state }
func (s *Scheduler) Turn() int             { return s.turn }
func (s *Scheduler) GameOver() bool        { return s.gameOver }
func (s *Scheduler) Quit() bool            { return s.quit }
func (s *Scheduler) Targeting() Targeting  { return s.targeting }

// Tick выполняет один шаг автомата и возвращает новую фазу.
// После смерти игрока или выхода шаги ничего не делают.
func (s *Scheduler) Tick() enums.RunState {
	if s.gameOver || s.quit {
		return s.state
	}

	prev := s.state
	switch s.state {
	case enums.RunStatePreRun:
		s.RunSystems()
		s.state = enums.RunStateAwaitingInput
	case enums.RunStateAwaitingInput:
		s.state = s.input.PlayerInput(s)
	case enums.RunStatePlayerTurn:
		s.RunSystems()
		s.state = enums.RunStateMonsterTurn
	case enums.RunStateMonsterTurn:
		s.RunSystems()
		s.turn++
		s.state = enums.RunStateAwaitingInput
	case enums.RunStateShowInventory:
		s.state = s.showInventory()
	case enums.RunStateShowDropItem:
		s.state = s.showDropItem()
	case enums.RunStateShowTargeting:
		s.state = s.showTargeting()
	}

	if prev != s.state {
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"from":      prev,
			"to":        s.state,
			"turn":      s.turn,
		}).Trace("State transition")
	}
	return s.state
}

// RunSystems прогоняет конвейер систем в фиксированном порядке и
// сбрасывает непотребленные намерения.
func (s *Scheduler) RunSystems() {
	w := s.World

	systems.RunVisibility(w)
	systems.RunMonsterAI(w, s.state)
	systems.IndexMap(w)
	hits := systems.RunMeleeCombat(w)
	systems.RunItemCollection(w)
	effects := systems.RunItemUse(w)
	systems.RunItemDrop(w)
	systems.RunDamage(w)
	died := systems.DeleteTheDead(w)

	if n := w.PendingIntents(); n > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"pending":   n,
		}).Warn("Unconsumed intents left after pipeline")
	}
	w.ClearIntents()

	if died {
		s.gameOver = true
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"turn":      s.turn,
		}).Info("Player died")
	}

	ev := TurnEvents{
		State:      s.state,
		Turn:       s.turn,
		Hits:       hits,
		Effects:    effects,
		PlayerDied: died,
	}
	for _, o := range s.observers {
		o.OnTurn(s, ev)
	}
}

// HandleCommand исполняет команду игрока и возвращает следующую фазу.
// Коллабораторы ввода только переводят клавиши в domain.Command.
func (s *Scheduler) HandleCommand(cmd domain.Command) enums.RunState {
	if cmd.Action == domain.ActionMove && cmd.Dx == 0 && cmd.Dy == 0 {
		cmd = domain.Command{Action: domain.ActionWait}
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return enums.RunStateAwaitingInput
	}

	return s.apply(handler(s.context(), cmd))
}

func (s *Scheduler) apply(res handlers.Result, err error) enums.RunState {
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"state":     s.state,
		}).WithError(err).Warn("Command rejected")
		return enums.RunStateAwaitingInput
	}
	if res.Msg != "" {
		s.World.Log.Add(res.Msg)
	}
	if res.Quit {
		s.quit = true
	}
	return res.Next
}

func (s *Scheduler) context() handlers.Context {
	return handlers.Context{World: s.World, Actor: s.World.Player}
}

func (s *Scheduler) showInventory() enums.RunState {
	result, item := s.menus.ShowInventory(s)
	switch result {
	case MenuCancel:
		return enums.RunStateAwaitingInput
	case MenuNoResponse:
		return enums.RunStateShowInventory
	}

	if ranged, ok := s.World.Ranged.Get(item); ok {
		s.targeting = Targeting{Range: ranged.Range, Item: item}
		return enums.RunStateShowTargeting
	}
	return s.apply(actions.HandleUse(s.context(), item, nil))
}

func (s *Scheduler) showDropItem() enums.RunState {
	result, item := s.menus.ShowDropItem(s)
	switch result {
	case MenuCancel:
		return enums.RunStateAwaitingInput
	case MenuNoResponse:
		return enums.RunStateShowDropItem
	}
	return s.apply(actions.HandleDrop(s.context(), item))
}

func (s *Scheduler) showTargeting() enums.RunState {
	result, target := s.menus.SelectTarget(s, s.targeting.Range)
	switch result {
	case MenuCancel:
		return enums.RunStateAwaitingInput
	case MenuNoResponse:
		return enums.RunStateShowTargeting
	}
	if target == nil {
		return enums.RunStateAwaitingInput
	}
	return s.apply(actions.HandleUse(s.context(), s.targeting.Item, target))
}
