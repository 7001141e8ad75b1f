// Package config loads the client configuration.
//
// # Resolution
//
// Load reads ~/.config/threds/config.toml unless an explicit path is given.
// A missing file is not an error; every field falls back to its default.
// Blank values also fall back. The THREDS_API_URL environment variable
// replaces api_url after the file is applied, and the --api flag (handled by
// the caller) replaces both.
//
// # Fields
//
//	api_url   = "http://127.0.0.1:3000"            # backend base URL, may carry a path prefix
//	log_file  = "~/.local/state/threds/threds.log" # client log, ~ is expanded
//	log_level = "info"                             # debug, info, warn or error
//
// # Errors
//
// Load fails when the home directory cannot be resolved, when the file exists
// but cannot be read, when it is not valid TOML and when log_level names an
// unknown level. Callers abort startup on any of these.
package config
