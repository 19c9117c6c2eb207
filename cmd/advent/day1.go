package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisroyer/adventofcode-2023/internal/calibration"
	"github.com/louisroyer/adventofcode-2023/internal/solve"
)

var day1Input string

var day1Cmd = &cobra.Command{
	Use:   "day1",
	Short: "Day 1: Trebuchet?!",
	Args:  cobra.NoArgs,
	RunE:  runDay1,
}

func init() {
	day1Cmd.Flags().StringVar(&day1Input, "input", "inputs/01.in", "calibration document")
	rootCmd.AddCommand(day1Cmd)
}

func runDay1(_ *cobra.Command, _ []string) error {
	f, err := os.Open(day1Input)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := solve.Lines(f)
	if err != nil {
		return err
	}
	logger.Debug("calibration document read", zap.Int("lines", len(lines)))

	sum, err := calibration.Sum(lines)
	if err != nil {
		return err
	}
	fmt.Println(sum)
	return nil
}
