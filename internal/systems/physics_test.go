package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p5d/RustyRougelike/internal/domain"
)

func TestHasLineOfSight(t *testing.T) {
	// Карта 5x5
	// . . . . .
	// . . # . .  (2,1) - стена
	// . # # # .  (1,2), (2,2), (3,2) - стена
	// . . # . .  (2,3) - стена
	// . . . . .
	m := domain.NewMap(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
	for _, p := range []domain.Position{at(2, 1), at(1, 2), at(2, 2), at(3, 2), at(2, 3)} {
		m.SetTile(p.X, p.Y, domain.TileWall)
	}

	tests := []struct {
		name string
		p1   domain.Position
		p2   domain.Position
		want bool
	}{
		{"Clear horizontal", at(0, 0), at(4, 0), true},
		{"Blocked horizontal", at(0, 2), at(4, 2), false},
		{"Clear diagonal", at(0, 0), at(1, 1), true},
		{"Blocked diagonal", at(0, 0), at(4, 4), false}, // через (2,2)
		{"Adjacent wall", at(2, 1), at(2, 2), true},     // стоим вплотную и смотрим на стену
		{"Behind wall", at(2, 1), at(2, 3), false},
		{"Same cell", at(3, 3), at(3, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLineOfSight(m, tt.p1, tt.p2))
			assert.Equal(t, tt.want, HasLineOfSight(m, tt.p2, tt.p1), "line of sight is symmetric here")
		})
	}
}
