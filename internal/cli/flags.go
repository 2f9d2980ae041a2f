package cli

import (
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DashboardFlags holds the flags shared by the root and dashboard commands.
type DashboardFlags struct {
	Seed        uint64
	FailureRate float64
	NoAnimation bool
	Static      bool
}

// AddDashboardFlags registers --seed, --failure-rate, --no-animation and --static on a command.
func AddDashboardFlags(cmd *cobra.Command, flags *DashboardFlags) {
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "seed the data generator (0 picks a random seed)")
	cmd.Flags().Float64Var(&flags.FailureRate, "failure-rate", 0, "probability (0-1) that a refresh fails (overrides sampler.failure_rate)")
	cmd.Flags().BoolVar(&flags.NoAnimation, "no-animation", false, "disable chart and alert transitions")
	cmd.Flags().BoolVar(&flags.Static, "static", false, "print a single frame and exit")
}

// ApplyDashboardFlags copies explicitly set flags over cfg. Flags the user
// did not pass leave the config value alone.
func ApplyDashboardFlags(fs *pflag.FlagSet, cfg *config.Config, flags DashboardFlags) {
	if fs.Changed("seed") {
		cfg.Sampler.Seed = flags.Seed
	}
	if fs.Changed("failure-rate") {
		cfg.Sampler.FailureRate = flags.FailureRate
	}
	if flags.NoAnimation {
		cfg.Animation.Enabled = false
	}
}
