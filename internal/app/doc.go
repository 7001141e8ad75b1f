// Package app is the composition root.
//
// Open resolves configuration (file, THREDS_API_URL, --api), opens the log
// file, loads preferences and builds the API client. Run then seeds the
// in-memory history with the start path and hands everything to the UI.
// The liveness probe runs once per session, either from the UI's first
// command or from the status command.
package app
