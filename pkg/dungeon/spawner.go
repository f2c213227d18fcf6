package dungeon

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/p5d/RustyRougelike/internal/domain"
)

// Лимиты наполнения комнаты
const (
	MaxMonstersPerRoom = 4
	MaxItemsPerRoom    = 2
)

// SpawnRoom заселяет комнату: до MaxMonstersPerRoom монстров и до
// MaxItemsPerRoom предметов, каждый на своей клетке внутри комнаты.
func SpawnRoom(w *domain.World, room domain.Rect, roller dice.Roller) error {
	numMonsters, err := rollCount(roller, MaxMonstersPerRoom)
	if err != nil {
		return err
	}
	numItems, err := rollCount(roller, MaxItemsPerRoom)
	if err != nil {
		return err
	}

	monsterPoints, err := spawnPoints(room, roller, numMonsters)
	if err != nil {
		return err
	}
	itemPoints, err := spawnPoints(room, roller, numItems)
	if err != nil {
		return err
	}

	for _, pos := range monsterPoints {
		roll, err := roller.Roll(len(MonsterTable))
		if err != nil {
			return fmt.Errorf("monster roll: %w", err)
		}
		MonsterTable[roll-1].SpawnMonster(w, pos)
	}
	for _, pos := range itemPoints {
		roll, err := roller.Roll(len(ItemTable))
		if err != nil {
			return fmt.Errorf("item roll: %w", err)
		}
		ItemTable[roll-1].SpawnItem(w, pos)
	}
	return nil
}

// rollCount - 1d(limit+2) - 3: чаще всего в комнате пусто.
func rollCount(roller dice.Roller, limit int) (int, error) {
	n, err := rollDice(roller, 1, limit+2)
	if err != nil {
		return 0, fmt.Errorf("spawn count: %w", err)
	}
	return max(0, n-3), nil
}

// spawnPoints выбирает n различных клеток внутри комнаты.
func spawnPoints(room domain.Rect, roller dice.Roller, n int) ([]domain.Position, error) {
	width, height := room.X2-room.X1, room.Y2-room.Y1
	n = min(n, width*height)

	points := make([]domain.Position, 0, n)
	taken := make(map[domain.Position]bool, n)
	for len(points) < n {
		dx, err := roller.Roll(width)
		if err != nil {
			return nil, fmt.Errorf("spawn point: %w", err)
		}
		dy, err := roller.Roll(height)
		if err != nil {
			return nil, fmt.Errorf("spawn point: %w", err)
		}
		p := domain.Position{X: room.X1 + dx, Y: room.Y1 + dy}
		if taken[p] {
			continue
		}
		taken[p] = true
		points = append(points, p)
	}
	return points, nil
}
