// Package threds provides an HTTP client for the Threds forum API.
//
// # Overview
//
// The Threds backend owns persistence, id generation and validation. This
// package only issues requests and decodes responses into the data model
// used by the navigation controller and the terminal UI.
//
// # Endpoints
//
//	GET  /boards/{board}/threds   list threads of a board
//	GET  /threds/{id}             one thread with its posts
//	POST /boards/{board}/threds   create a thread {subject, content, imageUrl?}
//	POST /threds/{id}/posts       create a post {content, replyToId?, imageUrl?}
//	POST /upload                  multipart "file" -> {imageUrl}
//	GET  /up                      liveness
//
// # Key Normalization
//
// The backend answers in snake_case. Every response body is decoded
// generically, passed through NormalizeKeys (snake_case to camelCase, applied
// recursively to nested objects and arrays) and then decoded into the typed
// model. Request bodies are sent in camelCase; the server converts them.
//
// # Errors
//
//   - Transport failures: "execute request: ..."
//   - Non-2xx responses: *APIError with method, path and status
//   - Malformed bodies: "decode response: ..."
//   - Uploads: every failure wraps ErrImageUpload
//
// CheckStatus is the exception: it reports false instead of returning errors.
// Ping runs the same probe and returns the failure for logging.
//
// # Identifiers
//
// Thread and post ids are opaque. ID accepts both JSON strings and numbers and
// keeps the text verbatim; nothing in this module parses or generates them.
package threds
