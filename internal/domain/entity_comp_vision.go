package domain

// Viewshed - поле зрения актора.
//
// Жизненный цикл: Clean -> (смена позиции) -> Dirty -> (пересчет) -> Clean.
// Dirty выставляет только systems.MoveEntity вместе со сменой Position,
// сбрасывает только система видимости.
type Viewshed struct {
	VisibleTiles []Position
	Range        int
	Dirty        bool
}

// NewViewshed создает поле зрения, требующее расчета на первом шаге.
func NewViewshed(r int) *Viewshed {
	return &Viewshed{Range: r, Dirty: true}
}

// MarkDirty помечает поле зрения устаревшим.
func (v *Viewshed) MarkDirty() {
	v.Dirty = true
}

// CanSee проверяет, входит ли клетка в текущий набор видимых.
func (v *Viewshed) CanSee(p Position) bool {
	for _, t := range v.VisibleTiles {
		if t == p {
			return true
		}
	}
	return false
}
