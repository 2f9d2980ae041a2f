// Package ui holds the palette, symbols and small renderers shared by the
// dashboard and the non-TUI commands.
//
// # Color Scheme
//
// Colors are hex values from the neon palette:
//
//	ColorSuccess   (neon green) - Positive deltas, confirmations
//	ColorError     (hot red)    - Failures and the refresh alert
//	ColorWarning   (amber)      - Warnings
//	ColorInfo      (cyan)       - Headings and accents
//	ColorMuted     (gray)       - Secondary text
//
// The active color profile is chosen by the CLI from display.color; these
// constants degrade automatically on terminals with fewer colors.
//
// # Tables
//
// RenderSimpleTable wraps the Bubbles table for one-shot CLI output:
//
//	cols := ui.FitColumns([]ui.TableColumn{{Title: "FIELD"}, {Title: "VALUE"}}, rows, 2)
//	fmt.Print(ui.RenderSimpleTable(cols, rows))
package ui
