package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// BuildWorld создает уровень, игрока и население комнат из одного сида.
// Одинаковый конфиг всегда дает одинаковый мир.
func BuildWorld(cfg Config) (*domain.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	w, err := dungeon.NewLevel(cfg.DungeonConfig(), rng).
		WithRooms().
		WithPlayer().
		WithSpawns().
		Build()
	if err != nil {
		return nil, fmt.Errorf("build level (seed %d): %w", cfg.Seed, err)
	}

	if vs, ok := w.Viewsheds.Get(w.Player); ok {
		vs.Range = cfg.ViewRange
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"seed":      cfg.Seed,
		"rooms":     len(w.Map.Rooms),
		"entities":  w.EntityCount(),
	}).Info("World built")

	return w, nil
}

// NewGame - мир по конфигу и планировщик поверх него.
func NewGame(cfg Config, input Input, menus Menus) (*Scheduler, error) {
	w, err := BuildWorld(cfg)
	if err != nil {
		return nil, err
	}
	s := NewScheduler(w, input, menus)
	s.Seed = cfg.Seed
	return s, nil
}
