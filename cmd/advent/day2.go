package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisroyer/adventofcode-2023/internal/cubes"
	"github.com/louisroyer/adventofcode-2023/internal/solve"
)

// The elf's bag for part 1.
var day2Bag = cubes.Bag{Red: 12, Green: 13, Blue: 14}

var day2Input string

var day2Cmd = &cobra.Command{
	Use:   "day2",
	Short: "Day 2: Cube Conundrum",
	Args:  cobra.NoArgs,
	RunE:  runDay2,
}

func init() {
	day2Cmd.Flags().StringVar(&day2Input, "input", "inputs/02.in", "game records")
	rootCmd.AddCommand(day2Cmd)
}

func runDay2(_ *cobra.Command, _ []string) error {
	f, err := os.Open(day2Input)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := solve.Lines(f)
	if err != nil {
		return err
	}
	logger.Debug("game records read", zap.Int("lines", len(lines)))

	idSum, err := cubes.IDSum(lines, day2Bag)
	if err != nil {
		return err
	}
	fmt.Println("Sum of ids of valid games:", idSum)

	powerSum, err := cubes.PowerSum(lines)
	if err != nil {
		return err
	}
	fmt.Println("Sum of cube power of games:", powerSum)
	return nil
}
