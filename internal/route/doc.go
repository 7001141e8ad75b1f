// Package route maps location paths to navigation state and back.
//
// # Paths
//
// Three shapes are recognized:
//
//	/                         home, all boards
//	/board/{board}            a board's thread list
//	/board/{board}/thread/{id} a single thread
//
// Decode is total: empty paths, unknown prefixes and incomplete thread paths
// degrade to the nearest shape instead of failing. Board and thread ids are
// not checked against anything here; the API decides whether they exist.
//
// # History
//
// History stands in for a browser history stack. Synchronize pushes the
// encoded state after an application-initiated change; Back and Forward move
// the cursor without pushing, and the caller re-derives state from Path.
package route
