// Package logging sets up the client's structured logger and reads its
// output back for the in-app log overlay.
//
// The terminal belongs to the TUI while it runs, so records go to a file
// (config log_file) through a slog text handler. Tail returns the newest
// lines of that file without loading all of it.
package logging
