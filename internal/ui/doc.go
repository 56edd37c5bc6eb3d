// Package ui provides the visual components of the chatgate shell.
//
// # Layout
//
// Once the authorization gate lets the user in, the shell renders one of
// two layouts depending on the terminal width.
//
// Wide:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line, gradient from the theme-color hint) │
//	├──────────────┬──────────────────────────────────────┤
//	│ Navigation   │ Chat (Home and Chat) or Settings     │
//	│ (1/4 width)  │                                      │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line, key hints or flash message)         │
//	└─────────────────────────────────────────────────────┘
//
// Compact: the navigation panel fills the content area on Home; Chat and
// Settings take the full width with no navigation panel.
//
// Before that, the shell shows one of the gate screens from panels.go: the
// hydration placeholder (logo and animated dots), an empty screen while the
// check is in flight, or one of the four access notices.
//
// # Styles
//
// All styles are generated from the active Palette by applyPalette.
// The Document decides which palette is active and is the only caller of
// SetPalette outside tests.
package ui
