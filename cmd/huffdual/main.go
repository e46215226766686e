package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/huffdual/config"
	"github.com/wippyai/huffdual/oracle"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "huffdual",
		Short: "Differential oracle for canonical Huffman decoding tables",
		Long: `huffdual runs two Huffman table implementations on the same input and
reports any observable disagreement between them.

Inputs are laid out as
  [16 counts][values][full-decode][tag flags][pump][payload]
and are usually produced by "huffdual seed" or a fuzzer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "huffdual.yaml", "Path to the YAML config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override logging.level")

	root.AddCommand(newReplayCmd(a), newSeedCmd(a), newPairsCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	logger, err := cfg.Logging.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	oracle.SetLogger(logger.Named("oracle"))

	a.cfg, a.logger = cfg, logger
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
