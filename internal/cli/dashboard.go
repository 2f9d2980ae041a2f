package cli

import (
	"context"

	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/dashboard"
	"github.com/rileyhilliard/crmdash/internal/logger"
	"github.com/rileyhilliard/crmdash/internal/state"
	"github.com/spf13/cobra"
)

var dashboardFlags DashboardFlags

// dashboardCmd starts the full-screen dashboard. The root command runs the
// same thing when no subcommand is given.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Start the CRM dashboard",
	Long: `Start the full-screen CRM dashboard.

Keyboard shortcuts:
  r           Refresh CRM data
  e           Edit a field (e.g. monthlySales[3]=12000)
  ?           Show help
  Esc         Close the edit prompt or help
  q / Ctrl+C  Quit

When stdout is not a terminal a single frame is printed instead.

Examples:
  crmdash dashboard
  crmdash dashboard --seed 7
  crmdash dashboard --failure-rate 0.5 --no-animation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context(), cmd, dashboardFlags)
	},
}

func init() {
	AddDashboardFlags(dashboardCmd, &dashboardFlags)
}

// prepareDashboard loads config, applies flags and validates the result.
func prepareDashboard(cmd *cobra.Command, flags DashboardFlags) (*config.Config, string, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	ApplyDashboardFlags(cmd.Flags(), cfg, flags)
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newSampler builds the data generator described by cfg.
func newSampler(cfg *config.Config) *crm.RandomSampler {
	return crm.NewRandomSampler(
		crm.WithSeed(cfg.Sampler.Seed),
		crm.WithFailureRate(cfg.Sampler.FailureRate),
	)
}

func dashboardCommand(ctx context.Context, cmd *cobra.Command, flags DashboardFlags) error {
	cfg, path, err := prepareDashboard(cmd, flags)
	if err != nil {
		return err
	}
	applyColorProfile(cfg.Display.Color)

	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	log := logger.NewEnvLogger("[dashboard]")
	sampler := newSampler(cfg)
	if path == "" {
		path = "defaults"
	}
	log.Debug("config=%s seed=%d failure_rate=%.2f animation=%t",
		path, sampler.Seed(), cfg.Sampler.FailureRate, cfg.Animation.Enabled)

	store := state.NewStore(sampler, state.WithLogger(logger.NewEnvLogger("[state]")))

	return dashboard.Run(ctx, store, dashboard.RunOptions{
		Options: dashboard.Options{
			Config: cfg,
			Logger: log,
		},
		Output:      cmd.OutOrStdout(),
		ForceStatic: flags.Static,
	})
}
