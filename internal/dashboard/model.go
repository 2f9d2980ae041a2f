package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crmdash/internal/anim"
	"github.com/rileyhilliard/crmdash/internal/charts"
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/logger"
	"github.com/rileyhilliard/crmdash/internal/state"
)

// Chart container target ids, registered in render order.
const (
	TargetBar   = "chart:monthly-sales"
	TargetLine  = "chart:lead-conversion"
	TargetPie   = "chart:customer-segments"
	TargetAlert = "alert"
)

// BreakpointTwoColumn is the minimum width for the two-column layout.
const BreakpointTwoColumn = 120

// defaultWidth is used until the first WindowSizeMsg arrives.
const defaultWidth = 100

// clockInterval refreshes the "last refresh" age in the header.
const clockInterval = time.Second

// Options configures a dashboard Model.
type Options struct {
	// Config supplies display, panel and animation settings. nil uses defaults.
	Config *config.Config

	// Logger receives debug output. nil discards it.
	Logger logger.Logger

	// Clock is the time source for animations. nil uses time.Now.
	Clock func() time.Time
}

// frameMsg advances running animations.
type frameMsg time.Time

// clockMsg re-renders the header age.
type clockMsg time.Time

// derived is rebuilt by a store observer whenever the snapshot changes.
// It lives behind a pointer so the observer and every Model copy share it.
type derived struct {
	charts      charts.Set
	refreshedAt time.Time
	refreshes   int
}

// Model is the Bubble Tea model for the CRM dashboard.
type Model struct {
	store   *state.Store
	engine  *anim.Engine
	cfg     *config.Config
	log     logger.Logger
	now     func() time.Time
	derived *derived

	keys  keyMap
	help  help.Model
	input textinput.Model

	width     int
	height    int
	status    string
	statusErr bool
	editing   bool
	showHelp  bool
	animating bool
	quitting  bool
}

// NewModel wires a dashboard around store. It subscribes the layout
// observer (which keeps the alert target registered while the alert is
// visible) and then the choreographer, so targets are current before any
// transition is requested.
func NewModel(store *state.Store, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	engine := anim.NewEngine(anim.WithClock(now), anim.WithEngineLogger(log))
	engine.SetTargets(anim.RoleChartContainer, TargetBar, TargetLine, TargetPie)

	d := &derived{
		charts:      charts.Adapt(store.Snapshot()),
		refreshedAt: now(),
	}

	store.Subscribe(state.ObserverFunc(func(ev state.Event) {
		if ev.Message != "" {
			engine.SetTargets(anim.RoleAlert, TargetAlert)
		} else {
			engine.SetTargets(anim.RoleAlert)
		}
		if ev.Kind == state.EventDataChanged || ev.Kind == state.EventFieldEdited {
			d.charts = charts.Adapt(ev.Snapshot)
		}
		if ev.Kind == state.EventDataChanged {
			d.refreshedAt = now()
			d.refreshes++
		}
	}))
	store.Subscribe(anim.NewChoreographer(engine, cfg.Animation, log))

	h := help.New()
	h.Styles.ShortKey = LabelStyle.Bold(true)
	h.Styles.ShortDesc = FooterStyle.UnsetPadding()
	h.Styles.FullKey = ValueStyle.Bold(true)
	h.Styles.FullDesc = LabelStyle

	return Model{
		store:   store,
		engine:  engine,
		cfg:     cfg,
		log:     log,
		now:     now,
		derived: d,
		keys:    defaultKeyMap(),
		help:    h,
		input:   newEditInput(),
	}
}

// Init starts the header clock.
func (m Model) Init() tea.Cmd {
	return m.clockCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 10)

	case frameMsg:
		// Sample the model clock rather than the tick time so a fake clock
		// drives animations in tests.
		now := m.now()
		m.engine.Prune(now)
		if m.engine.Active(now) {
			return m, m.frameCmd()
		}
		m.animating = false

	case clockMsg:
		return m, m.clockCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard(m.now())
}

// refresh regenerates the data. Failures are reported through the alert, so
// the returned error is only logged.
func (m *Model) refresh() tea.Cmd {
	if err := m.store.Refresh(); err != nil {
		m.log.Debug("refresh failed: %v", err)
	}
	m.status = ""
	return m.startFrames()
}

// startFrames begins the frame loop if a transition is running and no loop
// is active yet.
func (m *Model) startFrames() tea.Cmd {
	if m.animating || !m.engine.Active(m.now()) {
		return nil
	}
	m.animating = true
	return m.frameCmd()
}

func (m Model) frameInterval() time.Duration {
	fps := m.cfg.Animation.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// frameCmd returns a command that sends the next animation frame.
func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// clockCmd returns a command that ticks the header clock.
func (m Model) clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// Engine exposes the animation engine (for tests and the static renderer).
func (m Model) Engine() *anim.Engine {
	return m.engine
}

// Animating reports whether the frame loop is running.
func (m Model) Animating() bool {
	return m.animating
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Editing reports whether the edit prompt has focus.
func (m Model) Editing() bool {
	return m.editing
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}
