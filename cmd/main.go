package main

import (
	"fmt"
	"os"

	"github.com/atcidulko/HW4-IB/internal/config"
	"github.com/atcidulko/HW4-IB/internal/logging"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// app carries what every subcommand needs once the root command has run.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *log.Logger
	close  func() error
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger, a.close = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		File:    cfg.LogFile,
		Out:     cmd.ErrOrStderr(),
	})
	a.logger.Debug("loaded config", "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "output_dir", cfg.OutputDir, "quality_threshold", cfg.QualityThreshold)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.close != nil {
		return a.close()
	}
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:                "biotools",
		Short:              "FASTQ filtering and small sequence-file utilities",
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.json (optional)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose (debug) logging")

	root.AddCommand(
		newFilterCommand(a),
		newFastaCommand(a),
		newBlastCommand(a),
		newSeqCommand(a),
		newStatusCommand(a),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
