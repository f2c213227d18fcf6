package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/p5d/RustyRougelike/internal/domain"
)

// Параметры генерации по умолчанию
const (
	DefaultWidth    = 80
	DefaultHeight   = 43
	DefaultMaxRooms = 30
	DefaultMinSize  = 6
	DefaultMaxSize  = 10
)

// ErrInvalidConfig - параметры, при которых уровень построить нельзя.
var ErrInvalidConfig = errors.New("invalid dungeon config")

// ConfigError описывает конкретное нарушенное ограничение.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config - параметры уровня.
type Config struct {
	Width    int
	Height   int
	MaxRooms int
	MinSize  int
	MaxSize  int
}

// DefaultConfig возвращает классический уровень 80x43.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxRooms: DefaultMaxRooms,
		MinSize:  DefaultMinSize,
		MaxSize:  DefaultMaxSize,
	}
}

// Validate проверяет, что все диапазоны выборки непусты.
// Комната шириной w ставится в x из [1, Width-w-2], поэтому нужен MaxSize+3 <= Width.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("grid %dx%d must be positive", c.Width, c.Height)}
	case c.MaxRooms < 1:
		return &ConfigError{Field: "max_rooms", Reason: fmt.Sprintf("%d < 1", c.MaxRooms)}
	case c.MinSize < 1:
		return &ConfigError{Field: "min_size", Reason: fmt.Sprintf("%d < 1", c.MinSize)}
	case c.MinSize > c.MaxSize:
		return &ConfigError{Field: "max_size", Reason: fmt.Sprintf("min %d > max %d", c.MinSize, c.MaxSize)}
	case c.MaxSize+3 > c.Width:
		return &ConfigError{Field: "max_size", Reason: fmt.Sprintf("room %d does not fit width %d", c.MaxSize, c.Width)}
	case c.MaxSize+3 > c.Height:
		return &ConfigError{Field: "max_size", Reason: fmt.Sprintf("room %d does not fit height %d", c.MaxSize, c.Height)}
	}
	return nil
}

// Generate строит карту из непересекающихся комнат, соединенных L-коридорами.
// Каждая новая комната соединяется с предыдущей принятой, поэтому все комнаты связны.
func Generate(cfg Config, rng *rand.Rand) (*domain.Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	m := domain.NewMap(cfg.Width, cfg.Height)
	m.Rooms = make([]domain.Rect, 0, cfg.MaxRooms)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := randRange(rng, cfg.MinSize, cfg.MaxSize)
		h := randRange(rng, cfg.MinSize, cfg.MaxSize)
		x := randRange(rng, 1, cfg.Width-w-2)
		y := randRange(rng, 1, cfg.Height-h-2)

		newRoom := domain.NewRect(x, y, w, h)

		failed := false
		for _, other := range m.Rooms {
			if newRoom.Intersect(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(m, newRoom)

		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1].Center()
			curr := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(m, prev.X, curr.X, prev.Y)
				createVCorridor(m, prev.Y, curr.Y, curr.X)
			} else {
				createVCorridor(m, prev.Y, curr.Y, prev.X)
				createHCorridor(m, prev.X, curr.X, curr.Y)
			}
		}
		m.Rooms = append(m.Rooms, newRoom)
	}

	m.PopulateBlocked()
	return m, nil
}

// --- Вспомогательные функции ---

// createRoom вырезает внутренность комнаты: X1+1..X2 и Y1+1..Y2.
func createRoom(m *domain.Map, room domain.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
}

func createHCorridor(m *domain.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}

func createVCorridor(m *domain.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
