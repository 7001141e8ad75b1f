package ui

import (
	"testing"

	"github.com/five82/threds/internal/threds"
)

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(true); !got.Dark || got.Name != "Dark" {
		t.Fatalf("ThemeFor(true) = %q dark=%v, want Dark", got.Name, got.Dark)
	}
	if got := ThemeFor(false); got.Dark || got.Name != "Light" {
		t.Fatalf("ThemeFor(false) = %q dark=%v, want Light", got.Name, got.Dark)
	}
}

func TestThemesCoverEveryBoard(t *testing.T) {
	for _, dark := range []bool{false, true} {
		th := ThemeFor(dark)
		for _, id := range threds.BoardIDs() {
			if th.BoardColors[id] == "" {
				t.Fatalf("%s theme has no color for board %q", th.Name, id)
			}
		}
	}
}

func TestStylesBoardFallsBackToAccent(t *testing.T) {
	th := ThemeFor(false)
	styles := th.Styles()

	if got := styles.Board("zz").GetForeground(); got != styles.AccentText.GetForeground() {
		t.Fatalf("Board(unknown) foreground = %v, want accent %v", got, styles.AccentText.GetForeground())
	}
	if got := styles.Board(threds.BoardRandom).GetForeground(); got == styles.AccentText.GetForeground() {
		t.Fatalf("Board(r) foreground = %v, want board color", got)
	}
}
