package route

import "strings"

const (
	boardSegment  = "board"
	threadSegment = "thread"
)

// State is the navigation state a location path maps to. Empty Board and
// ThreadID mean absent.
type State struct {
	Home     bool
	Board    string
	ThreadID string
}

// Kind identifies which of the three navigation shapes a State has.
type Kind int

const (
	KindHome Kind = iota
	KindBoard
	KindThread
)

func (k Kind) String() string {
	switch k {
	case KindBoard:
		return "board"
	case KindThread:
		return "thread"
	default:
		return "home"
	}
}

// Home returns the home state.
func Home() State {
	return State{Home: true}
}

// Board returns the state showing the thread list of board.
func Board(board string) State {
	return State{Board: board}
}

// Thread returns the state showing thread id on board.
func Thread(board, id string) State {
	return State{Board: board, ThreadID: id}
}

// Kind reports the shape of s. A state without a board is treated as home,
// the same way Encode treats it.
func (s State) Kind() Kind {
	switch {
	case s.Home || s.Board == "":
		return KindHome
	case s.ThreadID != "":
		return KindThread
	default:
		return KindBoard
	}
}

// Decode maps a location path to a State. Unrecognized or incomplete paths
// fall back to the nearest valid shape, never an error: a missing thread id
// yields the board, anything else yields home.
func Decode(path string) State {
	segments := splitPath(path)
	if len(segments) == 0 {
		return Home()
	}
	if segments[0] == boardSegment && len(segments) > 1 {
		board := segments[1]
		if len(segments) > 3 && segments[2] == threadSegment {
			return Thread(board, segments[3])
		}
		return Board(board)
	}
	return Home()
}

// Encode renders s as a canonical location path.
func Encode(s State) string {
	if s.Home || s.Board == "" {
		return "/"
	}
	path := "/" + boardSegment + "/" + s.Board
	if s.ThreadID != "" {
		path += "/" + threadSegment + "/" + s.ThreadID
	}
	return path
}

// Canonical decodes and re-encodes path.
func Canonical(path string) string {
	return Encode(Decode(path))
}

func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	segments := raw[:0]
	for _, seg := range raw {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
