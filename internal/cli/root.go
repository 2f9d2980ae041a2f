package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/rileyhilliard/crmdash/internal/logger"
	"github.com/spf13/cobra"
)

// DebugLogFile receives the standard logger while the dashboard owns the
// terminal and CRMDASH_DEBUG is set.
const DebugLogFile = "crmdash-debug.log"

// cfgFile is the persistent --config flag.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "crmdash",
	Short: "Terminal CRM analytics dashboard",
	Long: `crmdash shows customer, deal and satisfaction metrics with charts in
the terminal. Data is synthetic and regenerated on demand.

Running crmdash with no subcommand starts the dashboard.

Examples:
  crmdash
  crmdash --seed 42 --failure-rate 0.3
  crmdash snapshot --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context(), cmd, dashboardFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./"+config.ConfigFileName+", then ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	AddDashboardFlags(rootCmd, &dashboardFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if machineMode {
		_ = WriteJSONFromError(os.Stdout, err)
	} else {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" && !strings.HasPrefix(err.Error(), "unknown flag") {
				fmt.Fprintf(os.Stderr, "'%s' is not a crmdash command. ", name)
			}
			fmt.Fprintln(os.Stderr, "Run 'crmdash --help' for usage.")
		}
	}
	os.Exit(1)
}

// isUnknownCommandError reports whether err came from cobra's argument parsing.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of a cobra error.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.IndexByte(msg, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(msg[start+1:], '"')
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig finds and parses the config for the current --config flag.
// It returns the path used, or "" when running on defaults.
func loadConfig() (*config.Config, string, error) {
	return config.LoadOrDefault(cfgFile)
}

// colorProfile maps display.color to a termenv profile. ok is false for
// "auto", which keeps lipgloss's own detection.
func colorProfile(mode string) (termenv.Profile, bool) {
	switch mode {
	case "always":
		return termenv.TrueColor, true
	case "never":
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}

// applyColorProfile sets the global lipgloss color profile from display.color.
func applyColorProfile(mode string) {
	if p, ok := colorProfile(mode); ok {
		lipgloss.SetColorProfile(p)
	}
}

// setupLogging keeps the standard logger off the terminal while the
// dashboard runs: with CRMDASH_DEBUG it goes to DebugLogFile, otherwise it
// is discarded. The returned func restores stderr.
func setupLogging() (func(), error) {
	restore := func() { log.SetOutput(os.Stderr) }

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(DebugLogFile, "crmdash")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the debug log",
			"Check that the current directory is writable, or unset "+logger.DebugEnv)
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
