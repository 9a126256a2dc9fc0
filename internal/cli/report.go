package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecoadvisor/internal/config"
	"github.com/rshade/ecoadvisor/internal/greenops"
	"github.com/rshade/ecoadvisor/internal/tui"
)

// reportParams holds the report command flags.
type reportParams struct {
	profile greenops.HouseholdProfile
	output  string
}

// NewReportCmd creates the one-shot report command.
func NewReportCmd() *cobra.Command {
	var params reportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print an eco impact report from flags",
		Long: `Computes the monthly eco impact report without prompting.

Counts must be non-negative. The output format defaults to output.format from
the config file.`,
		Example: `  # Text report
  ecoadvisor report --name Alex --bulbs 10 --ac-hours 4 --smart-plug --ev --km 20

  # JSON report for scripts
  ecoadvisor report --bulbs 6 --km 35 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.profile.Name, "name", "", "name shown in the report title")
	cmd.Flags().IntVar(&params.profile.LEDBulbs, "bulbs", 0, "number of LED bulbs in use")
	cmd.Flags().IntVar(&params.profile.ACHoursPerDay, "ac-hours", 0, "air conditioning hours per day")
	cmd.Flags().BoolVar(&params.profile.UseSmartPlug, "smart-plug", false, "smart plugs are in use")
	cmd.Flags().BoolVar(&params.profile.UseEV, "ev", false, "the car driven is electric")
	cmd.Flags().IntVar(&params.profile.KmPerDay, "km", 0, "average km driven per day")
	cmd.Flags().StringVar(&params.output, "output", "", "output format: text or json (default from config)")

	return cmd
}

func executeReport(cmd *cobra.Command, params reportParams) error {
	if err := params.profile.Validate(); err != nil {
		return fmt.Errorf("invalid report input: %w", err)
	}

	format := params.output
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}

	report := greenops.Calculate(params.profile)
	logger.Debug().Ctx(cmd.Context()).
		Str("format", format).
		Float64("net_energy_kwh", report.NetEnergyUsageKWh).
		Msg("report calculated")

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	case config.FormatText:
		r := tui.NewRenderer(styledOutput())
		if _, err := fmt.Fprint(out, r.Report(report)+r.Equivalency(report.Equivalency)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (use text or json)", format)
	}
	return nil
}

// NewTipsCmd creates the tips command.
func NewTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show smart living tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := tui.NewRenderer(styledOutput())
			_, err := fmt.Fprint(cmd.OutOrStdout(), r.Tips(greenops.Tips()))
			return err
		},
	}
}
