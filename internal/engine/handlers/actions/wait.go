package actions

import (
	"github.com/p5d/RustyRougelike/internal/engine/handlers"
)

// HandleWait - пропуск хода, монстры при этом ходят.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.TurnResult(""), nil
}
