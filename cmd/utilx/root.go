package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/internal/config"
	"github.com/hasbyte1/go-utils/internal/logger"
)

// app carries the state shared by every subcommand once the root's
// PersistentPreRunE has run.
type app struct {
	configPath string
	debug      bool

	cfg     *config.Config
	cfgPath string
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "utilx",
		Short: "Expression calculator, equation solver and template formatter",
		Long: `utilx wraps the calc and tmpl packages.

Configuration is read from --config, or from [UserConfigDir]/utilx/config.toml
when present. See "utilx config" for the effective values.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log fallbacks at debug level")

	root.AddCommand(
		newEvalCmd(a),
		newSolveCmd(a),
		newFormatCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.LoadConfigWithPriority(a.configPath)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if a.debug {
		level = log.DebugLevel
	}
	a.cfg, a.cfgPath = cfg, path
	a.logger = logger.NewWithConfig(cmd.ErrOrStderr(), "utilx", level, cfg.Log.Timestamp, log.TextFormatter)
	a.logger.Debug("config loaded", "path", path)
	return nil
}
