package actions

import (
	"errors"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
	"github.com/p5d/RustyRougelike/internal/systems"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета с земли
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	_, err := systems.TryPickup(ctx.World, ctx.Actor)
	switch {
	case errors.Is(err, systems.ErrNothingToPickup):
		return handlers.Result{Msg: "There is nothing here to pick up.", Next: enums.RunStateAwaitingInput}, nil
	case errors.Is(err, systems.ErrBackpackFull):
		return handlers.Result{Msg: "Your backpack is full.", Next: enums.RunStateAwaitingInput}, nil
	case err != nil:
		return handlers.EmptyResult(), err
	}
	return handlers.TurnResult(""), nil
}
