package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc2023",
		Short: "Advent of Code 2023 solvers",
		Long: `aoc2023 solves Advent of Code 2023 puzzles from their text input.

Run "aoc2023 almanac <input>" for the day 5 seed almanac.`,
		SilenceUsage: true,
	}

	root.AddCommand(newAlmanacCmd())

	return root
}

// newLogger builds the production logger at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
