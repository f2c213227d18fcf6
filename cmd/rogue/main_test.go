package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/version"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
)

func newLevelCmd(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addLevelFlags(cmd)
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestLevelConfig_SeedSources(t *testing.T) {
	t.Setenv(seedEnv, "77")

	cfg, err := levelConfig(newLevelCmd())
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.Seed)

	cfg, err = levelConfig(newLevelCmd("--seed", "5"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed, "flag wins over environment")

	t.Setenv(seedEnv, "not-a-number")
	_, err = levelConfig(newLevelCmd())
	assert.ErrorContains(t, err, seedEnv)
}

func TestLevelConfig_Flags(t *testing.T) {
	t.Setenv(seedEnv, "")

	cfg, err := levelConfig(newLevelCmd("--width", "60", "--height", "30", "--max-size", "8"))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 8, cfg.MaxRoomSize)

	_, err = levelConfig(newLevelCmd("--min-size", "12"))
	assert.ErrorIs(t, err, dungeon.ErrInvalidConfig)
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGenerate_ASCII(t *testing.T) {
	out := execute(t, "generate", "--seed", "1337")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 43)
	assert.True(t, strings.HasPrefix(lines[0], "seed 1337,"))
	assert.Contains(t, out, "@")
	assert.Equal(t, out, execute(t, "generate", "--seed", "1337"), "same seed, same level")
}

func TestGenerate_JSON(t *testing.T) {
	out := execute(t, "generate", "--seed", "3", "--json", "--entities=false")

	var snap api.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, int64(3), snap.Seed)
	assert.Empty(t, snap.Entities)
	require.NotNil(t, snap.Grid)
	assert.Len(t, snap.Map, snap.Grid.Width*snap.Grid.Height)
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, version.String()+"\n", out)

	out = execute(t, "version", "--json")
	var info version.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Info(), info)
}

func TestPlay_Headless(t *testing.T) {
	out := execute(t, "play", "--headless", "--seed", "9", "--turns", "20", "--script", "..")
	assert.Empty(t, out)
}
