package systems

import (
	"github.com/p5d/RustyRougelike/internal/domain"
)

// HasLineOfSight проверяет прямую видимость между двумя точками
// алгоритмом Брезенхэма. Начальная и конечная клетки не проверяются.
func HasLineOfSight(m *domain.Map, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == p2.X && y0 == p2.Y

		// Вне сетки IsOpaque тоже true
		if !isStartPoint && !isEndPoint && m.IsOpaque(x0, y0) {
			return false
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
