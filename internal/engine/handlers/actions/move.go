package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/engine/handlers"
	"github.com/p5d/RustyRougelike/internal/systems"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// HandleMove - шаг игрока или атака того, кто стоит в целевой клетке.
// Упереться в стену хода не стоит.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	outcome := systems.TryMovePlayer(ctx.World, p.Dx, p.Dy)

	logger.Log.WithFields(logrus.Fields{
		"component": "move_handler",
		"dx":        p.Dx,
		"dy":        p.Dy,
		"outcome":   outcome,
	}).Trace("Player move")

	if outcome == systems.MoveBlocked {
		return handlers.EmptyResult(), nil
	}
	return handlers.TurnResult(""), nil
}
