// Package dashboard implements the full-screen CRM analytics dashboard.
//
// The dashboard shows KPI tiles, three charts (monthly sales, lead conversion,
// customer segments) and two static info panels, regenerates the data on
// demand and plays short transitions when the data changes or a refresh
// fails.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds UI state (size, edit prompt, help overlay, status line)
//   - Update: Processes messages (keystrokes, animation frames, clock ticks)
//   - View: Renders committed store state plus current animation props
//
// # Key Components
//
//	state.Store         - Committed snapshot and alert; publishes events
//	anim.Choreographer  - Turns store events into animation requests
//	anim.Engine         - Plays requests against registered targets
//	charts              - View models and terminal chart renderers
//
// # Message Flow
//
//  1. The user presses r and Update calls Store.Refresh
//  2. The store commits (new snapshot or alert) and publishes one event
//  3. Observers run in order: the layout observer re-derives chart view
//     models and registers the alert target, then the choreographer
//     requests the matching transition
//  4. If the engine has work, frameMsg ticks at the configured FPS until
//     every timeline has finished
//
// # Layout
//
// At 120 columns or more the dashboard uses two columns; below that the
// right column stacks under the left one. Chart containers are registered
// as animation targets in render order: bar, line, pie.
package dashboard
