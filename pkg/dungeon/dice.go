package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// SeededRoller - dice.Roller поверх сидированного генератора уровня.
// Один сид дает один и тот же набор монстров и предметов.
type SeededRoller struct {
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller оборачивает генератор уровня.
func NewSeededRoller(rng *rand.Rand) *SeededRoller {
	return &SeededRoller{rng: rng}
}

// Roll бросает один кубик с гранями 1..size.
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	return r.rng.Intn(size) + 1, nil
}

// RollN бросает count кубиков.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// rollDice - сумма n кубиков dS, как "NdS" в настольных правилах.
func rollDice(roller dice.Roller, n, size int) (int, error) {
	rolls, err := roller.RollN(n, size)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total, nil
}
