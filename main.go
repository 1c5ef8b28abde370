package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/logger"
)

var version = "dev"

var errNoTerminal = errors.New("burrow needs an interactive terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logLevel string

	cmd := &cobra.Command{
		Use:          "burrow [dir]",
		Short:        "Browse, preview and edit files from the terminal",
		Long:         "burrow lists a directory, previews text files and creates, renames, deletes or opens entries in an editor.",
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(dir, configPath, logLevel)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/burrow/config.toml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the burrow version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "burrow %s\n", version)
		},
	}
}

func run(dir, configPath, logLevel string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}

	// Logging failures are not fatal; the logger stays silent instead
	if err := logger.Init(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer logger.Close()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logger.SetLevel(cfg.LogLevel)
	}

	m, err := newModel(dir, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("program exited with an error")
		return err
	}
	return nil
}
