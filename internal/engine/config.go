package engine

import (
	"fmt"
	"time"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно уровня. От него зависят и генерация, и броски спавна.
	Seed int64

	Width       int
	Height      int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	// ViewRange - радиус обзора игрока.
	ViewRange int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		Width:       dungeon.DefaultWidth,
		Height:      dungeon.DefaultHeight,
		MaxRooms:    dungeon.DefaultMaxRooms,
		MinRoomSize: dungeon.DefaultMinSize,
		MaxRoomSize: dungeon.DefaultMaxSize,
		ViewRange:   domain.DefaultViewRange,
	}
}

// DungeonConfig - параметры генератора.
func (c Config) DungeonConfig() dungeon.Config {
	return dungeon.Config{
		Width:    c.Width,
		Height:   c.Height,
		MaxRooms: c.MaxRooms,
		MinSize:  c.MinRoomSize,
		MaxSize:  c.MaxRoomSize,
	}
}

// Validate проверяет конфиг целиком. Ошибки генератора оборачивают dungeon.ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.DungeonConfig().Validate(); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	if c.ViewRange < 1 {
		return fmt.Errorf("engine config: %w", &dungeon.ConfigError{Field: "view_range", Reason: "must be positive"})
	}
	return nil
}
