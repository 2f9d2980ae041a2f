package dashboard

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/rileyhilliard/crmdash/internal/state"
	"golang.org/x/term"
)

// StaticWidth is the width of the frame printed when stdout is not a terminal.
const StaticWidth = 120

// RunOptions configures the dashboard execution.
type RunOptions struct {
	Options

	// Output receives the static frame when stdout is not a TTY.
	// Defaults to os.Stdout.
	Output io.Writer

	// ForceStatic prints a single frame even on a terminal.
	ForceStatic bool
}

// Run starts the full-screen dashboard and blocks until the user quits or
// ctx is cancelled. When stdout is not a terminal it prints one static frame
// instead.
func Run(ctx context.Context, store *state.Store, opts RunOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.ForceStatic || !term.IsTerminal(int(os.Stdout.Fd())) {
		return RenderStatic(out, store, opts.Options)
	}

	program := tea.NewProgram(
		NewModel(store, opts.Options),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil && stderrors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard stopped unexpectedly",
			"Run with CRMDASH_DEBUG=1 and check crmdash-debug.log")
	}
	return nil
}

// RenderStatic writes a single frame of the dashboard at StaticWidth.
func RenderStatic(w io.Writer, store *state.Store, opts Options) error {
	m := NewModel(store, opts)
	m.width = StaticWidth
	if _, err := fmt.Fprintln(w, m.View()); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to write dashboard output",
			"Check that the output is writable")
	}
	return nil
}
