package engine

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators.go -package=mock

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/systems"
)

// MenuResult - итог одного кадра модального меню.
type MenuResult uint8

const (
	MenuCancel     MenuResult = iota // закрыть меню без действия
	MenuNoResponse                   // ввода еще нет, остаемся в меню
	MenuSelected                     // выбор сделан
)

func (r MenuResult) String() string {
	switch r {
	case MenuCancel:
		return "CANCEL"
	case MenuSelected:
		return "SELECTED"
	default:
		return "NO_RESPONSE"
	}
}

// Input - источник решений игрока в фазе AwaitingInput.
// Обычно переводит клавишу в domain.Command и отдает её в Scheduler.HandleCommand.
type Input interface {
	PlayerInput(s *Scheduler) enums.RunState
}

// Menus обслуживает модальные состояния планировщика.
type Menus interface {
	ShowInventory(s *Scheduler) (MenuResult, types.EntityID)
	ShowDropItem(s *Scheduler) (MenuResult, types.EntityID)
	SelectTarget(s *Scheduler, rangeCells int) (MenuResult, *domain.Position)
}

// TurnEvents - что произошло за один прогон конвейера систем.
type TurnEvents struct {
	State      enums.RunState
	Turn       int
	Hits       []systems.Hit
	Effects    []systems.ItemEffect
	PlayerDied bool
}

// Observer получает события после каждого прогона конвейера.
// Вызывается на горутине симуляции, мир в этот момент согласован.
type Observer interface {
	OnTurn(s *Scheduler, ev TurnEvents)
}
