// SPDX-License-Identifier: MIT

// Package cli implements the stoic command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/internal/config"
	"github.com/katalvlaran/stoic/internal/logger"
	"github.com/katalvlaran/stoic/internal/styles"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	configPath string
	verbose    bool
	noColor    bool
)

// session holds state resolved once per invocation in PersistentPreRunE.
var session struct {
	cfg     config.Config
	styles  *styles.Styles
	options []balance.Option
}

var rootCmd = &cobra.Command{
	Use:   "stoic",
	Short: "Balance chemical equations exactly",
	Long: `stoic balances chemical equations with exact rational arithmetic.

Equations use element symbols with optional subscripts, '+' between
compounds and '=' (or '→') between sides, for example:

  stoic balance "KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2"`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.stoic/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration and wires logger and styles.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(cfg.Verbose)
	logger.Debug("config: strict=%t multi=%s pivoting=%s color=%s",
		cfg.Strict, cfg.MultiSolution, cfg.Pivoting, cfg.Color)

	session.cfg = cfg
	session.options = cfg.BalanceOptions()
	if useColor(cfg.Color, cmd.OutOrStdout()) {
		session.styles = styles.DefaultStyles()
	} else {
		session.styles = styles.PlainStyles()
	}

	return nil
}

// loadConfig reads --config, or the default path. A missing file yields
// the defaults so that "config init" can create it.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Default(), nil
		}
	}
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// useColor resolves the color mode against the output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
