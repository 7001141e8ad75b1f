package ui

import "strings"

// bodyBuilder collects body lines and remembers where the selected row sits
// so the viewport can follow the cursor.
type bodyBuilder struct {
	lines      []string
	start, end int
}

func (b *bodyBuilder) add(s string) {
	b.lines = append(b.lines, strings.Split(s, "\n")...)
}

// selected adds s and marks it as the cursor row.
func (b *bodyBuilder) selected(s string) {
	b.start = len(b.lines)
	b.add(s)
	b.end = len(b.lines) - 1
}

func (b *bodyBuilder) row(s string, isSelected bool) {
	if isSelected {
		b.selected(s)
		return
	}
	b.add(s)
}

func (b *bodyBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b bodyBuilder) String() string {
	return strings.Join(b.lines, "\n")
}
