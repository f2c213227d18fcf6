package systems

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
)

// ValidationResult - результат проверки клетки-цели
type ValidationResult struct {
	Target  domain.Position
	Valid   bool
	Message string // Сообщение для журнала, если Valid == false
}

// ValidateTarget проверяет, может ли actor применить предмет с дальностью
// rangeLimit на клетку target: клетка в его поле зрения, в пределах дальности
// и на прямой видимости.
func ValidateTarget(w *domain.World, actor types.EntityID, target domain.Position, rangeLimit int) ValidationResult {
	pos, ok := w.Positions.Get(actor)
	if !ok {
		return ValidationResult{Message: "You are nowhere."}
	}
	vs, ok := w.Viewsheds.Get(actor)
	if !ok || !vs.CanSee(target) {
		return ValidationResult{Message: "You can't see that."}
	}

	if pos.DistanceTo(target) > float64(rangeLimit) {
		return ValidationResult{Message: "That is out of range."}
	}

	if !HasLineOfSight(w.Map, pos, target) {
		return ValidationResult{Message: "Something is in the way."}
	}

	return ValidationResult{Target: target, Valid: true}
}

// ValidTargets возвращает все клетки, на которые можно навести предмет,
// в порядке поля зрения. Используется меню выбора цели.
func ValidTargets(w *domain.World, actor types.EntityID, rangeLimit int) []domain.Position {
	vs, ok := w.Viewsheds.Get(actor)
	if !ok {
		return nil
	}
	var out []domain.Position
	for _, p := range vs.VisibleTiles {
		if ValidateTarget(w, actor, p, rangeLimit).Valid {
			out = append(out, p)
		}
	}
	return out
}
