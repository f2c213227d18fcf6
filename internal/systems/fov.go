package systems

import (
	"github.com/p5d/RustyRougelike/internal/domain"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// fovState - накопитель результата одного расчета.
type fovState struct {
	m       *domain.Map
	cx, cy  int
	radius  int
	seen    map[int]struct{}
	visible []domain.Position
}

func (s *fovState) mark(x, y int) {
	if !s.m.InBounds(x, y) {
		return
	}
	idx := y*s.m.Width + x
	if _, ok := s.seen[idx]; ok {
		return
	}
	s.seen[idx] = struct{}{}
	s.visible = append(s.visible, domain.Position{X: x, Y: y})
}

// ComputeFOV возвращает клетки, видимые из origin в радиусе radius
// (dx²+dy² <= radius²), рекурсивным shadowcasting по 8 октантам.
// Стены видимы, но закрывают всё за собой. Результат обрезан по сетке.
func ComputeFOV(m *domain.Map, origin domain.Position, radius int) []domain.Position {
	if radius < 0 || !m.InBounds(origin.X, origin.Y) {
		return nil
	}

	s := &fovState{
		m:      m,
		cx:     origin.X,
		cy:     origin.Y,
		radius: radius,
		seen:   make(map[int]struct{}),
	}

	// Центр всегда виден
	s.mark(origin.X, origin.Y)

	for i := 0; i < 8; i++ {
		s.castLight(1, 1.0, 0.0,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}
	return s.visible
}

func (s *fovState) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := s.radius * s.radius

	for j := row; j <= s.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Наклоны краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := s.cx + dx*xx + dy*xy
			Y := s.cy + dx*yx + dy*yy

			if dx*dx+dy*dy <= radiusSq {
				s.mark(X, Y)
			}

			if blocked {
				// Идем вдоль стены
				if s.m.IsOpaque(X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if s.m.IsOpaque(X, Y) && j < s.radius {
				blocked = true
				s.castLight(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
