package nav

import (
	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

// Controller owns the live navigation state together with the view data and
// form state that hang off it. It is not safe for concurrent use: every
// method is called from the UI loop, and network work happens elsewhere via
// Load and Submit.
type Controller struct {
	loc   route.Location
	state route.State

	threds  []threds.Thread
	active  *threds.Thread
	loadErr error

	form      Form
	submitSeq int

	online bool
}

// New derives the initial state from loc's current path. Nothing is pushed.
func New(loc route.Location) *Controller {
	c := &Controller{loc: loc}
	if loc != nil {
		c.state = route.Decode(loc.Path())
	} else {
		c.state = route.Home()
	}
	return c
}

// State returns the current navigation state.
func (c *Controller) State() route.State { return c.state }

// Kind returns the shape of the current state.
func (c *Controller) Kind() route.Kind { return c.state.Kind() }

// Board returns the active board, empty on the home view.
func (c *Controller) Board() threds.BoardID { return threds.BoardID(c.state.Board) }

// ActiveThreadID returns the open thread id, empty when none.
func (c *Controller) ActiveThreadID() threds.ID { return threds.ID(c.state.ThreadID) }

// Threds returns every loaded thread in load order.
func (c *Controller) Threds() []threds.Thread { return c.threds }

// ThredsFor returns the loaded threads belonging to board.
func (c *Controller) ThredsFor(board threds.BoardID) []threds.Thread {
	var out []threds.Thread
	for _, t := range c.threds {
		if t.BoardID == board {
			out = append(out, t)
		}
	}
	return out
}

// ActiveThread returns the loaded detail of the open thread, or nil while it
// is still loading or when no thread is open.
func (c *Controller) ActiveThread() *threds.Thread {
	if c.state.ThreadID == "" {
		return nil
	}
	return c.active
}

// LoadErr returns the last navigation fetch failure.
func (c *Controller) LoadErr() error { return c.loadErr }

// DismissError clears the navigation fetch failure.
func (c *Controller) DismissError() { c.loadErr = nil }

// Online reports the cached liveness result.
func (c *Controller) Online() bool { return c.online }

// SetOnline records the liveness probe result.
func (c *Controller) SetOnline(up bool) { c.online = up }

// Init returns the loads needed to render the initially decoded state.
func (c *Controller) Init() Fetch {
	switch c.state.Kind() {
	case route.KindThread:
		return Fetch{Boards: []threds.BoardID{c.Board()}, ThreadID: c.ActiveThreadID()}
	case route.KindBoard:
		return Fetch{Boards: []threds.BoardID{c.Board()}}
	default:
		return Fetch{Boards: threds.BoardIDs()}
	}
}

// SelectBoard shows board's thread list from any state.
func (c *Controller) SelectBoard(board threds.BoardID) Fetch {
	prev := c.state
	c.state = route.Board(string(board))
	c.active = nil
	c.resetForm()
	c.syncFrom(prev)
	return Fetch{Boards: []threds.BoardID{board}}
}

// OpenThread shows thread id of board.
func (c *Controller) OpenThread(board threds.BoardID, id threds.ID) Fetch {
	if board == "" || id == "" {
		return Fetch{}
	}
	if c.active != nil && c.active.ID != id {
		c.active = nil
	}
	if c.state.ThreadID != string(id) {
		c.form.ReplyTo = ""
	}
	prev := c.state
	c.state = route.Thread(string(board), string(id))
	c.syncFrom(prev)
	return Fetch{ThreadID: id}
}

// GoHome shows every board.
func (c *Controller) GoHome() Fetch {
	prev := c.state
	c.state = route.Home()
	c.active = nil
	c.resetForm()
	c.syncFrom(prev)
	return Fetch{Boards: threds.BoardIDs()}
}

// CloseThread returns from a thread to its board. It reports false when no
// thread is open.
func (c *Controller) CloseThread() bool {
	if c.state.Kind() != route.KindThread {
		return false
	}
	c.state = route.Board(c.state.Board)
	c.active = nil
	c.form.ReplyTo = ""
	c.sync()
	return true
}

// PopState re-derives the state from the location after a back or forward
// move. It never pushes.
func (c *Controller) PopState() Fetch {
	if c.loc == nil {
		return Fetch{}
	}
	prev := c.state
	next := route.Decode(c.loc.Path())
	c.state = next

	var fetch Fetch
	wasHome := prev.Kind() == route.KindHome
	isHome := next.Kind() == route.KindHome
	if wasHome != isHome || (!isHome && prev.Board != next.Board) {
		if isHome {
			fetch.Boards = threds.BoardIDs()
		} else {
			fetch.Boards = []threds.BoardID{threds.BoardID(next.Board)}
		}
		if !c.form.Busy {
			c.resetForm()
		}
	}

	switch {
	case next.ThreadID == "":
		c.active = nil
		c.form.ReplyTo = ""
	case c.active == nil || c.active.ID != threds.ID(next.ThreadID):
		c.active = nil
		c.form.ReplyTo = ""
		fetch.ThreadID = threds.ID(next.ThreadID)
	}
	return fetch
}

// Apply stores the outcome of a Load. Failures are recorded for display and
// never change the navigation state or the data already loaded.
func (c *Controller) Apply(res Result) {
	if res.ListsLoaded {
		c.threds = res.Threds
	}
	if res.Thread != nil && res.Fetch.ThreadID == c.ActiveThreadID() {
		c.active = res.Thread
	}
	c.loadErr = res.Err
}

func (c *Controller) sync() {
	route.Synchronize(c.loc, c.state)
}

// syncFrom pushes only when the state moved away from prev.
func (c *Controller) syncFrom(prev route.State) {
	if c.state != prev {
		c.sync()
	}
}

func (c *Controller) resetForm() {
	c.form = Form{}
}
