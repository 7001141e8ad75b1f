// Package nav owns the client's navigation state machine.
//
// # States
//
// The Controller is always in one of three route shapes:
//
//   - Home: every board, no thread
//   - Board(B): the thread list of B
//   - Thread(B, T): thread T of board B
//
// Transitions are explicit methods (SelectBoard, OpenThread, GoHome,
// CloseThread) that mutate state and then synchronize the location. PopState
// is the one transition driven by the location instead: it decodes the
// current path after a back/forward move and never pushes.
//
// # Side Effects
//
// The Controller performs no I/O. Transitions return a Fetch describing the
// loads they need; the caller runs Load off the UI loop and hands the Result
// back to Apply. Forms work the same way through Begin*/Submit/FinishSubmit.
// Results are applied in arrival order. Thread detail is only applied when it
// belongs to the thread still open.
//
// # Failures
//
// Load failures become LoadErr and leave navigation state and loaded lists
// alone. Submission failures become Form().Err and keep the draft so the user
// can retry.
package nav
