package systems

import (
	"github.com/p5d/RustyRougelike/internal/domain"
)

// IndexMap пересобирает производные данные карты с нуля:
// Blocked = стены + клетки с BlocksTile, TileContent = кто где стоит.
// Порядок внутри клетки - порядок вставки в хранилище позиций.
// Повторный вызов без перемещений дает тот же результат.
func IndexMap(w *domain.World) {
	m := w.Map
	m.PopulateBlocked()
	m.ClearContentIndex()

	for _, e := range w.Positions.Entities() {
		pos, _ := w.Positions.Get(e)
		idx := m.IndexOf(pos)

		if w.Blockers.Has(e) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], e)
	}
}
