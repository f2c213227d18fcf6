// Package main - точка входа Rusty Roguelike.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/p5d/RustyRougelike/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "Rusty Roguelike",
	Long:  `Turn-based dungeon crawler on a grid: rooms and corridors, shadow-cast vision, A* monsters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addLevelFlags(rootCmd)
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
