package route

import "testing"

func TestHistory_SeedIsNotAPush(t *testing.T) {
	h := NewHistory("/board/w")
	if got := h.Path(); got != "/board/w" {
		t.Fatalf("Path = %q, want /board/w", got)
	}
	if got := h.Current().State; got != Board("w") {
		t.Fatalf("Current state = %+v, want board w", got)
	}
	if h.Pushes() != 0 || h.Len() != 1 {
		t.Fatalf("Pushes = %d Len = %d, want 0 and 1", h.Pushes(), h.Len())
	}
	if h.CanBack() {
		t.Fatalf("CanBack = true on a fresh history")
	}
	if got := NewHistory("").Path(); got != "/" {
		t.Fatalf("empty seed Path = %q, want /", got)
	}
}

func TestSynchronize_PushesEncodedState(t *testing.T) {
	h := NewHistory("/")
	Synchronize(h, Thread("r", "abc"))

	if got := h.Pushes(); got != 1 {
		t.Fatalf("Pushes = %d, want 1", got)
	}
	if got := h.Path(); got != "/board/r/thread/abc" {
		t.Fatalf("Path = %q, want /board/r/thread/abc", got)
	}
	if got := h.Current().State; got != Thread("r", "abc") {
		t.Fatalf("Current state = %+v, want thread r/abc", got)
	}

	Synchronize(nil, Home())
}

func TestHistory_BackForwardNeverPush(t *testing.T) {
	h := NewHistory("/")
	Synchronize(h, Board("w"))
	Synchronize(h, Thread("w", "1"))
	if got := h.Pushes(); got != 2 {
		t.Fatalf("Pushes = %d, want 2", got)
	}

	for _, want := range []string{"/board/w", "/"} {
		if !h.Back() {
			t.Fatalf("Back = false, want a move to %s", want)
		}
		if got := h.Path(); got != want {
			t.Fatalf("Path after Back = %q, want %q", got, want)
		}
	}
	if h.Back() {
		t.Fatalf("Back past the first entry = true")
	}

	if !h.Forward() {
		t.Fatalf("Forward = false")
	}
	if got := h.Path(); got != "/board/w" {
		t.Fatalf("Path after Forward = %q, want /board/w", got)
	}
	if h.Pushes() != 2 || h.Len() != 3 {
		t.Fatalf("Pushes = %d Len = %d, want 2 and 3", h.Pushes(), h.Len())
	}
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory("/")
	Synchronize(h, Board("w"))
	Synchronize(h, Board("r"))
	if !h.Back() {
		t.Fatalf("Back = false")
	}

	Synchronize(h, Board("t"))
	if got := h.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if h.CanForward() || h.Forward() {
		t.Fatalf("forward entries survived a push")
	}
	if got := h.Path(); got != "/board/t" {
		t.Fatalf("Path = %q, want /board/t", got)
	}

	if !h.Back() {
		t.Fatalf("Back = false")
	}
	if got := h.Path(); got != "/board/w" {
		t.Fatalf("Path after Back = %q, want /board/w", got)
	}
}
