package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// LevelBuilder предоставляет fluent API для создания уровней.
// Первая ошибка запоминается, последующие шаги пропускаются, Build её возвращает.
type LevelBuilder struct {
	cfg    Config
	rng    *rand.Rand
	roller dice.Roller
	world  *domain.World
	err    error
}

// NewLevel создает builder для уровня.
func NewLevel(cfg Config, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		cfg:    cfg,
		rng:    rng,
		roller: NewSeededRoller(rng),
	}
}

// WithRoller подменяет источник бросков для наполнения комнат.
func (b *LevelBuilder) WithRoller(r dice.Roller) *LevelBuilder {
	b.roller = r
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	if b.err != nil {
		return b
	}
	m, err := Generate(b.cfg, b.rng)
	if err != nil {
		b.err = err
		return b
	}
	if len(m.Rooms) == 0 {
		b.err = fmt.Errorf("generate: no room fits: %w", ErrInvalidConfig)
		return b
	}
	b.world = domain.NewWorld(m)
	return b
}

// WithPlayer ставит игрока в центр первой комнаты.
func (b *LevelBuilder) WithPlayer() *LevelBuilder {
	if b.err != nil {
		return b
	}
	if b.world == nil {
		b.err = fmt.Errorf("WithPlayer called before WithRooms")
		return b
	}
	CreatePlayer(b.world, b.world.Map.Rooms[0].Center())
	return b
}

// WithSpawns заселяет все комнаты, кроме первой.
func (b *LevelBuilder) WithSpawns() *LevelBuilder {
	if b.err != nil {
		return b
	}
	if b.world == nil {
		b.err = fmt.Errorf("WithSpawns called before WithRooms")
		return b
	}
	for _, room := range b.world.Map.Rooms[1:] {
		if err := SpawnRoom(b.world, room, b.roller); err != nil {
			b.err = fmt.Errorf("spawn room %v: %w", room, err)
			return b
		}
	}
	return b
}

// Build возвращает готовый мир.
func (b *LevelBuilder) Build() (*domain.World, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.world == nil {
		return nil, fmt.Errorf("build: level has no map")
	}

	logger.Log.WithFields(logrus.Fields{
		"width":    b.cfg.Width,
		"height":   b.cfg.Height,
		"rooms":    len(b.world.Map.Rooms),
		"entities": b.world.EntityCount(),
	}).Debug("Level built")

	b.world.Log.Add("Welcome to Rusty Roguelike")
	return b.world, nil
}
