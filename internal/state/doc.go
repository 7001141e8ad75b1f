// Package state holds the session's backend liveness snapshot.
//
// The probe runs once per session in a background command and records its
// outcome with Record; the UI and the status command read it back through
// Snapshot. Reads and writes may come from different goroutines, so the
// Store guards its snapshot with a readers-writer lock and hands out copies.
//
// A zero Store is ready to use and reports an unchecked, offline backend.
package state
