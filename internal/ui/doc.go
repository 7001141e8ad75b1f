// Package ui provides the terminal user interface for Threds.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns a nav.Controller, which
// holds the navigation state, the loaded data and the form state; the model
// adds presentation state (cursor, focus, widgets, overlays) on top.
//
// # Package Structure
//
//   - app.go: Model, message handling, key dispatch and the Run function
//   - header.go: Navbar, location line, status line and footer
//   - home.go, board.go, thread.go: Body renderers for the three views
//   - form.go: Thread composer and reply bar widgets
//   - help.go, logs.go: Overlays
//   - theme.go, keys.go: Palettes and key bindings
//
// # Event Flow
//
//  1. Init probes the backend once and loads the data for the starting path
//  2. Keys drive controller transitions; each returns the loads it needs
//  3. Loads and submissions run as tea.Cmd goroutines and come back as
//     messages that the controller applies
//  4. Back and forward move the route.History cursor, then re-derive state
//
// Network results never mutate state off the Update goroutine.
package ui
