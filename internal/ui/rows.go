package ui

import (
	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

type rowKind int

const (
	rowBoard rowKind = iota
	rowThread
	rowPost
)

// row is one selectable line group in the body.
type row struct {
	kind   rowKind
	board  threds.BoardID
	thread threds.Thread
	post   threds.Post
}

// rows lists the selectable entries of the current view in display order.
func (m Model) rows() []row {
	switch m.ctrl.Kind() {
	case route.KindHome:
		var out []row
		for _, b := range threds.Boards {
			out = append(out, row{kind: rowBoard, board: b.ID})
			for _, t := range m.ctrl.ThredsFor(b.ID) {
				out = append(out, row{kind: rowThread, board: b.ID, thread: t})
			}
		}
		return out
	case route.KindBoard:
		board := m.ctrl.Board()
		var out []row
		for _, t := range m.ctrl.ThredsFor(board) {
			out = append(out, row{kind: rowThread, board: board, thread: t})
		}
		return out
	default:
		thread := m.ctrl.ActiveThread()
		if thread == nil {
			return nil
		}
		out := make([]row, 0, len(thread.Posts))
		for _, p := range thread.Posts {
			out = append(out, row{kind: rowPost, board: m.ctrl.Board(), post: p})
		}
		return out
	}
}

func (m Model) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}
