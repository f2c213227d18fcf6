package domain

import (
	"errors"
	"fmt"

	"github.com/p5d/RustyRougelike/internal/core/types"
)

var (
	// ErrOutOfBounds - обращение к клетке вне сетки. Ошибка программиста.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEntityNotAlive - дескриптор устарел или никогда не выдавался.
	ErrEntityNotAlive = errors.New("entity is not alive")
)

// MissingComponentError - у сущности нет компонента, который вызывающий
// уже обязан был проверить. Считается нарушением инварианта.
type MissingComponentError struct {
	Entity    types.EntityID
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("entity %s has no %s component", e.Entity, e.Component)
}
