package nav

import (
	"context"
	"fmt"

	"github.com/five82/threds/internal/threds"
)

// Loader fetches the data navigation needs. *threds.Client implements it.
type Loader interface {
	FetchThreds(ctx context.Context, board threds.BoardID) ([]threds.Thread, error)
	FetchThread(ctx context.Context, id threds.ID) (*threds.Thread, error)
}

// Fetch describes the loads a transition requires.
type Fetch struct {
	Boards   []threds.BoardID
	ThreadID threds.ID
}

// Empty reports whether nothing needs loading.
func (f Fetch) Empty() bool {
	return len(f.Boards) == 0 && f.ThreadID == ""
}

// Result is the outcome of Load.
type Result struct {
	Fetch       Fetch
	ListsLoaded bool
	Threds      []threds.Thread
	Thread      *threds.Thread
	Err         error
}

// Load runs f sequentially: board lists in order, then the thread detail.
// Listed threads without a board id are attributed to the board they came from.
// The first list failure abandons the remaining lists; the detail is still
// attempted.
func Load(ctx context.Context, l Loader, f Fetch) Result {
	res := Result{Fetch: f}
	if len(f.Boards) > 0 {
		var all []threds.Thread
		var listErr error
		for _, board := range f.Boards {
			list, err := l.FetchThreds(ctx, board)
			if err != nil {
				listErr = fmt.Errorf("load board %s: %w", board, err)
				break
			}
			for i := range list {
				if list[i].BoardID == "" {
					list[i].BoardID = board
				}
			}
			all = append(all, list...)
		}
		if listErr != nil {
			res.Err = listErr
		} else {
			res.ListsLoaded = true
			res.Threds = all
		}
	}
	if f.ThreadID != "" {
		thread, err := l.FetchThread(ctx, f.ThreadID)
		if err != nil {
			if res.Err == nil {
				res.Err = fmt.Errorf("load thread %s: %w", f.ThreadID, err)
			}
		} else {
			res.Thread = thread
		}
	}
	return res
}
