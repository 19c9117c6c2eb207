// Command advent runs the Advent of Code 2023 solutions. Each day is
// a subcommand that reads its puzzle input from a file under inputs/
// and prints the answers to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:           "advent",
	Short:         "Advent of Code 2023 solutions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	cobra.OnInitialize(initLogger)
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			initLogger()
		}
		logger.Fatal("solution failed", zap.Error(err))
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
}
