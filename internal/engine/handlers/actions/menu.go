package actions

import (
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
)

// HandleOpenInventory открывает меню применения предмета.
func HandleOpenInventory(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: enums.RunStateShowInventory}, nil
}

// HandleOpenDrop открывает меню выброса предмета.
func HandleOpenDrop(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: enums.RunStateShowDropItem}, nil
}

// HandleQuit - игрок выходит, состояние мира не трогаем.
func HandleQuit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: enums.RunStateAwaitingInput, Quit: true}, nil
}
