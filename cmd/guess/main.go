// Package main is the entry point for the guess application.
// guess is an interactive number-guessing game played over stdin and stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/guess/internal/config"
	"github.com/randomizedcoder/guess/internal/loop"
)

// version is set at build time via ldflags.
var version = "dev"

// loggerFactory builds the session logger once configuration is final.
type loggerFactory func(cfg *config.Config) (*zap.Logger, error)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand(newLogger)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand(buildLogger loggerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "guess",
		Short:         "Guess the secret number between 1 and 100",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.Bind(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Finalize(cmd.Flags()); err != nil {
			return err
		}

		logger, err := buildLogger(cfg)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		logger.Info("guess starting",
			zap.String("version", version),
			zap.Uint64("seed", cfg.Seed),
			zap.String("log_level", cfg.LogLevel),
		)

		looper := loop.NewWithRng(cmd.InOrStdin(), cmd.OutOrStdout(), logger, loop.NewRng(cfg.Seed))
		res, err := looper.Run(cmd.Context())
		if err != nil {
			logger.Error("session failed",
				zap.Error(err),
				zap.Uint64("attempts", looper.Count()),
			)
			return err
		}

		logger.Info("guess stopped", zap.Uint64("attempts", res.Attempts))
		return nil
	}

	return cmd
}

// newLogger returns a production JSON logger on stderr at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
