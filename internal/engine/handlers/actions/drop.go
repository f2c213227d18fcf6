package actions

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
)

// HandleDrop ставит намерение выбросить предмет из рюкзака под ноги.
func HandleDrop(ctx handlers.Context, item types.EntityID) (handlers.Result, error) {
	if err := checkOwnership(ctx, item); err != nil {
		return handlers.EmptyResult(), fmt.Errorf("drop %s: %w", item, err)
	}
	ctx.World.WantsToDrop.Set(ctx.Actor, domain.WantsToDropItem{Item: item})
	return handlers.TurnResult(""), nil
}
