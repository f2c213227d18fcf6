package actions

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// ErrNotInBackpack - выбранный предмет не лежит в рюкзаке актора.
var ErrNotInBackpack = errors.New("item is not in actor's backpack")

// HandleUse ставит намерение применить предмет. target задан только для дальнобойных.
// Сам эффект разрешает система применения предметов на ходе игрока.
func HandleUse(ctx handlers.Context, item types.EntityID, target *domain.Position) (handlers.Result, error) {
	if err := checkOwnership(ctx, item); err != nil {
		return handlers.EmptyResult(), fmt.Errorf("use %s: %w", item, err)
	}

	ctx.World.WantsToUse.Set(ctx.Actor, domain.WantsToUseItem{Item: item, Target: target})

	logger.Log.WithFields(logrus.Fields{
		"component": "use_handler",
		"item":      ctx.World.NameOf(item),
		"targeted":  target != nil,
	}).Debug("Use intent queued")

	return handlers.TurnResult(""), nil
}

func checkOwnership(ctx handlers.Context, item types.EntityID) error {
	if !ctx.World.IsAlive(item) {
		return domain.ErrEntityNotAlive
	}
	bp, ok := ctx.World.Backpack.Get(item)
	if !ok || bp.Owner != ctx.Actor {
		return ErrNotInBackpack
	}
	return nil
}
