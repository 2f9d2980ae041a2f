package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crmdash/internal/anim"
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fixture bundles a model with a controllable clock and sampler.
type fixture struct {
	now   time.Time
	fail  bool
	next  *crm.Snapshot
	store *state.Store
	model Model
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	f := &fixture{now: epoch, next: crm.Placeholder()}
	f.next.TotalCustomers = 1234
	f.store = state.NewStore(crm.SamplerFunc(func() (*crm.Snapshot, error) {
		if f.fail {
			return nil, crm.GenerationFailure(errors.New("boom"))
		}
		return f.next.Clone(), nil
	}))
	f.model = NewModel(f.store, Options{
		Config: cfg,
		Clock:  func() time.Time { return f.now },
	})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func (f *fixture) press(k string) tea.Cmd {
	switch k {
	case "enter":
		return f.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return f.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "ctrl+c":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func TestNewModel_RegistersChartsInRenderOrder(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, []string{TargetBar, TargetLine, TargetPie}, f.model.Engine().Targets(anim.RoleChartContainer))
	assert.Empty(t, f.model.Engine().Targets(anim.RoleAlert))
}

func TestRefresh_StartsChartTransition(t *testing.T) {
	f := newFixture(t, nil)

	cmd := f.press("r")
	require.NotNil(t, cmd, "a frame tick should be scheduled")
	assert.True(t, f.model.Animating())
	assert.Equal(t, 1234, f.store.Snapshot().TotalCustomers)

	// Charts start faded out and pushed down.
	props := f.model.Engine().Props(TargetBar, f.now)
	assert.InDelta(t, 0, props.Opacity, 1e-9)
	assert.InDelta(t, 20, props.OffsetY, 1e-9)

	// Pie is last in the stagger.
	f.now = epoch.Add(300 * time.Millisecond)
	assert.InDelta(t, 0, f.model.Engine().Props(TargetPie, f.now).Opacity, 1e-9)
	assert.Greater(t, f.model.Engine().Props(TargetBar, f.now).Opacity, 0.0)

	// Frames keep coming until every chart has settled.
	assert.NotNil(t, f.send(frameMsg(f.now)))
	f.now = epoch.Add(2 * time.Second)
	assert.Nil(t, f.send(frameMsg(f.now)))
	assert.False(t, f.model.Animating())
	assert.Equal(t, anim.RestProps(), f.model.Engine().Props(TargetPie, f.now))
}

func TestRefresh_WhileAnimatingDoesNotStartSecondLoop(t *testing.T) {
	f := newFixture(t, nil)

	require.NotNil(t, f.press("r"))
	f.now = epoch.Add(100 * time.Millisecond)
	assert.Nil(t, f.press("r"), "the running frame loop picks up the new transition")
	assert.True(t, f.model.Animating())
}

func TestRefresh_FailureShowsAlert(t *testing.T) {
	f := newFixture(t, nil)
	before := f.store.Snapshot()
	f.fail = true

	cmd := f.press("r")
	require.NotNil(t, cmd)

	assert.Same(t, before, f.store.Snapshot())
	assert.Equal(t, []string{TargetAlert}, f.model.Engine().Targets(anim.RoleAlert))

	props := f.model.Engine().Props(TargetAlert, f.now)
	assert.InDelta(t, 0, props.Opacity, 1e-9)

	view := f.model.View()
	assert.Contains(t, view, "Error: ")
	assert.Contains(t, view, state.RefreshFailedMessage)
}

func TestRefresh_RepeatedFailureReplaysAlert(t *testing.T) {
	f := newFixture(t, nil)
	f.fail = true

	f.press("r")
	first := f.model.Engine().Running(f.now)
	f.now = epoch.Add(50 * time.Millisecond)
	f.press("r")
	second := f.model.Engine().Running(f.now)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first, second)
	// The new shake restarted from the beginning.
	assert.InDelta(t, 0, f.model.Engine().Props(TargetAlert, f.now).OffsetX, 1e-9)
}

func TestRefresh_SuccessAfterFailureHidesAlert(t *testing.T) {
	f := newFixture(t, nil)
	f.fail = true
	f.press("r")
	require.Contains(t, f.model.View(), state.RefreshFailedMessage)

	f.fail = false
	f.press("r")
	assert.NotContains(t, f.model.View(), state.RefreshFailedMessage)
	assert.Empty(t, f.model.Engine().Targets(anim.RoleAlert))
}

func TestAnimationDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.Enabled = false
	f := newFixture(t, cfg)

	assert.Nil(t, f.press("r"))
	assert.False(t, f.model.Animating())
	assert.Equal(t, anim.RestProps(), f.model.Engine().Props(TargetBar, f.now))
	assert.Equal(t, 1234, f.store.Snapshot().TotalCustomers)
}

func TestEdit_AppliesField(t *testing.T) {
	f := newFixture(t, nil)

	f.press("e")
	require.True(t, f.model.Editing())
	f.press("monthlySales[3]=99999")
	f.press("enter")

	assert.False(t, f.model.Editing())
	snap := f.store.Snapshot()
	assert.Equal(t, 99999, snap.MonthlySales[3])
	assert.Equal(t, 10000, snap.MonthlySales[2])

	status, isErr := f.model.Status()
	assert.Equal(t, "Updated monthlySales[3]", status)
	assert.False(t, isErr)

	// Manual edits update charts without a transition.
	assert.False(t, f.model.Animating())
	assert.Equal(t, 99999, f.model.derived.charts.Bar.Data[3])
}

func TestEdit_HugeSegmentsStillRender(t *testing.T) {
	f := newFixture(t, nil)
	f.send(tea.WindowSizeMsg{Width: 140, Height: 60})

	f.press("e")
	f.press("customerSegments=5000000000000000000,5000000000000000000,10,10")
	f.press("enter")

	status, isErr := f.model.Status()
	require.False(t, isErr, status)
	assert.Equal(t, 5000000000000000000, f.store.Snapshot().CustomerSegments[0])

	var view string
	require.NotPanics(t, func() { view = f.model.View() })
	assert.Contains(t, view, "Customer Segments")
}

func TestEdit_RejectedInputKeepsState(t *testing.T) {
	f := newFixture(t, nil)
	f.fail = true
	f.press("r")
	before := f.store.Snapshot()

	f.press("e")
	f.press("monthlySales[12]=1")
	f.press("enter")

	status, isErr := f.model.Status()
	assert.True(t, isErr)
	assert.Equal(t, "Index 12 is out of range for monthlySales (Use an index between 0 and 11)", status)
	assert.Same(t, before, f.store.Snapshot())

	// The alert is untouched by edit problems.
	msg, ok := f.store.Alert()
	assert.True(t, ok)
	assert.Equal(t, state.RefreshFailedMessage, msg)
}

func TestEdit_EscCancels(t *testing.T) {
	f := newFixture(t, nil)
	before := f.store.Snapshot()

	f.press("e")
	f.press("activeDeals=70")
	f.press("esc")

	assert.False(t, f.model.Editing())
	assert.Same(t, before, f.store.Snapshot())
}

func TestEdit_KeysGoToPrompt(t *testing.T) {
	f := newFixture(t, nil)
	f.press("e")

	// q and r are text while editing.
	assert.Nil(t, f.press("q"))
	f.press("r")
	assert.True(t, f.model.Editing())
	assert.True(t, crm.Placeholder().Equal(f.store.Snapshot()))
	assert.Equal(t, "qr", f.model.input.Value())
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t, nil)

	f.press("?")
	assert.True(t, f.model.ShowingHelp())
	assert.Contains(t, f.model.View(), "Keyboard Shortcuts")

	f.press("esc")
	assert.False(t, f.model.ShowingHelp())

	f.press("?")
	f.press("?")
	assert.False(t, f.model.ShowingHelp())
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			f := newFixture(t, nil)
			cmd := f.press(k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, f.model.View())
		})
	}
}

func TestCtrlCQuitsWhileEditing(t *testing.T) {
	f := newFixture(t, nil)
	f.press("e")
	cmd := f.press("ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLayout_Breakpoint(t *testing.T) {
	f := newFixture(t, nil)

	f.send(tea.WindowSizeMsg{Width: 130, Height: 50})
	assert.True(t, f.model.TwoColumn())
	wide := f.model.View()

	f.send(tea.WindowSizeMsg{Width: 90, Height: 50})
	assert.False(t, f.model.TwoColumn())
	narrow := f.model.View()

	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestView_Content(t *testing.T) {
	f := newFixture(t, nil)
	f.send(tea.WindowSizeMsg{Width: 140, Height: 60})

	view := f.model.View()
	for _, want := range []string{
		"CRM Dashboard",
		"Customer relationship insights",
		"Total Customers",
		"1,000",
		"4.5/5",
		"+5.7%",
		"Monthly Sales",
		"Lead Conversion Rate",
		"Customer Segments",
		"Recent Activities",
		"Top Customers",
		"Refresh CRM Data",
		"placeholder data",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Error:")
}

func TestHeader_RefreshAge(t *testing.T) {
	f := newFixture(t, nil)
	f.press("r")
	assert.Contains(t, f.model.renderHeader(f.now), "refreshed just now")
	assert.Contains(t, f.model.renderHeader(f.now.Add(5*time.Second)), "refreshed 5s ago")
}

func TestRenderStatic(t *testing.T) {
	store := state.NewStore(crm.NewRandomSampler(crm.WithSeed(7)))
	var buf bytes.Buffer

	require.NoError(t, RenderStatic(&buf, store, Options{}))
	assert.Contains(t, buf.String(), "CRM Dashboard")
	assert.Contains(t, buf.String(), "Monthly Sales")
}
