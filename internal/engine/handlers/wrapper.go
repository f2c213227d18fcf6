package handlers

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/api"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT, PICKUP)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя извлечение данных из команды и Validate.
func WithPayload[T any](extract func(domain.Command) T, handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, cmd domain.Command) (Result, error) {
		payload := extract(cmd)

		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return EmptyResult(), fmt.Errorf("%s: validation failed: %w", cmd.Action, err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithDirection - WithPayload для команд с направлением (MOVE).
func WithDirection(handler TypedHandlerFunc[api.DirectionPayload]) HandlerFunc {
	return WithPayload(func(cmd domain.Command) api.DirectionPayload {
		return api.DirectionPayload{Dx: cmd.Dx, Dy: cmd.Dy}
	}, handler)
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Command) (Result, error) {
		return handler(ctx)
	}
}
