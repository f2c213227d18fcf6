package handlers

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
)

// Context передает хендлеру состояние мира.
// Мир передается по ссылке: хендлер ставит намерения и двигает актора.
type Context struct {
	World *domain.World
	Actor types.EntityID // Тот, кто выполняет команду
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал игры напрямую, он возвращает данные.
type Result struct {
	Msg  string         // Текст для журнала, может быть пустым
	Next enums.RunState // Следующая фаза планировщика
	Quit bool           // Игрок попросил выйти
}

// HandlerFunc - это контракт для любой команды (MOVE, WAIT, PICKUP, ...).
type HandlerFunc func(ctx Context, cmd domain.Command) (Result, error)

// EmptyResult - ход не потрачен, снова ждем ввод.
func EmptyResult() Result {
	return Result{Next: enums.RunStateAwaitingInput}
}

// TurnResult - ход потрачен.
func TurnResult(msg string) Result {
	return Result{Msg: msg, Next: enums.RunStatePlayerTurn}
}
