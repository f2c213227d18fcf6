package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/p5d/RustyRougelike/internal/engine"
)

// seedEnv - сид из окружения, если флаг --seed не задан.
const seedEnv = "ROGUE_SEED"

// addLevelFlags вешает на команду параметры генерации уровня.
func addLevelFlags(cmd *cobra.Command) {
	def := engine.NewConfig()
	f := cmd.Flags()
	f.Int64("seed", 0, "level seed (default: $"+seedEnv+" or current time)")
	f.Int("width", def.Width, "map width")
	f.Int("height", def.Height, "map height")
	f.Int("max-rooms", def.MaxRooms, "room placement attempts")
	f.Int("min-size", def.MinRoomSize, "minimum room side")
	f.Int("max-size", def.MaxRoomSize, "maximum room side")
	f.Int("view-range", def.ViewRange, "player view radius")
}

// levelConfig собирает engine.Config из флагов и окружения и проверяет его.
func levelConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.NewConfig()
	f := cmd.Flags()

	seed, err := resolveSeed(cmd)
	if err != nil {
		return cfg, err
	}
	if seed != nil {
		cfg.Seed = *seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"max-rooms", &cfg.MaxRooms},
		{"min-size", &cfg.MinRoomSize},
		{"max-size", &cfg.MaxRoomSize},
		{"view-range", &cfg.ViewRange},
	}
	for _, it := range ints {
		v, err := f.GetInt(it.name)
		if err != nil {
			return cfg, err
		}
		*it.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveSeed: флаг важнее окружения. nil - оставить случайный сид.
func resolveSeed(cmd *cobra.Command) (*int64, error) {
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return nil, err
		}
		return &seed, nil
	}

	raw, ok := os.LookupEnv(seedEnv)
	if !ok || raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", seedEnv, err)
	}
	return &seed, nil
}
