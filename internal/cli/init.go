package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/rileyhilliard/crmdash/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initForce bool

// initCmd writes a .crmdash.yaml with the default settings.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .crmdash.yaml configuration",
	Long: `Write a .crmdash.yaml file in the current directory with every setting
at its default value, ready to edit.

Asks before overwriting an existing file when run in a terminal.

Examples:
  crmdash init
  crmdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
		}, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file, defaults to ./.crmdash.yaml
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt; refuse to overwrite without Overwrite
}

// confirmOverwrite asks whether an existing config may be replaced.
// Replaced in tests.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", filepath.Base(path))).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Init creates a new config file with default settings.
func Init(opts InitOptions, out io.Writer) error {
	path := opts.Path
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		overwrite, err := confirmOverwrite(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprint(out, ui.RenderHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "Terminal CRM analytics dashboard",
	}))
	fmt.Fprintf(out, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), path)
	fmt.Fprintln(out, ui.MutedStyle().Render("Run 'crmdash' to start the dashboard."))
	return nil
}
