package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ecoadvisor/internal/config"
	"github.com/rshade/ecoadvisor/internal/logging"
	"github.com/rshade/ecoadvisor/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command. Run without a subcommand it starts the
// interactive advisor session.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		useTUI    bool
	)

	cmd := &cobra.Command{
		Use:     "ecoadvisor",
		Short:   "Smart living energy advisor",
		Long:    "ecoadvisor estimates household energy savings, usage and CO₂ impact from a few daily habits.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			opts := SessionOptions{
				Styled:  styledOutput(),
				TUIMenu: useTUI && tui.IsInputTTY(),
			}
			if useTUI && !opts.TUIMenu {
				logger.Warn().Ctx(ctx).Msg("--tui needs an interactive terminal, using the text menu")
			}

			s := NewSession(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			if err := s.Run(ctx); err != nil {
				return fmt.Errorf("interactive session: %w", err)
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("ecoadvisor {{.Version}}\n")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $HOME/.ecoadvisor/config.yaml)")
	cmd.PersistentFlags().String("color", "", "color output: auto, always or never (overrides config)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "use the arrow-key menu instead of typed selections")

	cmd.AddCommand(NewReportCmd(), NewTipsCmd(), newConfigCmd())
	return cmd
}

// annotationLenientConfig marks commands that must run even when the config
// file does not validate.
const annotationLenientConfig = "ecoadvisor/lenient-config"

// loadConfig loads .env, the config file and flag overrides into the global config.
func loadConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	}

	lenient := cmd.Annotations[annotationLenientConfig] == "true"
	load := config.Load
	if lenient {
		load = config.LoadUnvalidated
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := load(path)
	if err != nil {
		return err
	}

	if color, _ := cmd.Flags().GetString("color"); color != "" {
		cfg.Output.Color = color
		if err = cfg.Validate(); err != nil && !lenient {
			return err
		}
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// styledOutput reports whether output should carry lipgloss styling.
func styledOutput() bool {
	return tui.ShouldStyle(config.GetColorMode())
}

const rootCmdExample = `  # Start the interactive advisor
  ecoadvisor

  # Start it with the arrow-key menu
  ecoadvisor --tui

  # One-shot report as JSON
  ecoadvisor report --name Alex --bulbs 10 --ac-hours 4 --smart-plug --ev --km 20 --output json

  # Show the smart living tips
  ecoadvisor tips

  # Write a default configuration file
  ecoadvisor config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
