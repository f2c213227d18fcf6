package domain

import "fmt"

// Command - разобранное намерение игрока, с которым работает движок.
// Dx/Dy используются только для ActionMove.
type Command struct {
	Action ActionType
	Dx, Dy int
}

// Move - команда шага в направлении (dx, dy).
func Move(dx, dy int) Command {
	return Command{Action: ActionMove, Dx: dx, Dy: dy}
}

func (c Command) String() string {
	if c.Action == ActionMove {
		return fmt.Sprintf("%s(%d,%d)", c.Action, c.Dx, c.Dy)
	}
	return c.Action.String()
}
