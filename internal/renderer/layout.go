package renderer

import (
	"github.com/quilledit/quill/internal/engine"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/wrap"
)

// VisualRow is one display row: a logical line, or one soft-wrapped
// sub-line of it.
type VisualRow struct {
	// Y is the logical line index.
	Y int

	// Start is the visible-text offset of the row's first character
	// within its logical line.
	Start int

	// Text is the row's visible content.
	Text string

	Kind  engine.LineKind
	Level int
}

// Layout computes the visual rows of the whole document wrapped at
// width. Lines that cannot be soft-wrapped fall back to hard
// character breaks rather than overflowing.
func Layout(e *engine.Editor, width int) []VisualRow {
	var rows []VisualRow
	for y, line := range e.Lines() {
		visible := line.VisibleText()

		var subs []string
		soft := true
		if w, err := wrap.New(visible, width); err == nil {
			subs = w.Lines()
		} else {
			subs = wrap.HardWrap(visible, width)
			soft = false
		}

		start := 0
		for _, sub := range subs {
			rows = append(rows, VisualRow{
				Y:     y,
				Start: start,
				Text:  sub,
				Kind:  line.Kind,
				Level: line.Level,
			})
			start += len([]rune(sub))
			if soft {
				// The break consumed one whitespace character.
				start++
			}
		}
	}
	return rows
}

// Locate maps a document position onto (row index, column) in the
// laid-out rows. Hidden marker columns collapse onto column 0.
func Locate(rows []VisualRow, pos cursor.Position) (int, int) {
	x := pos.X
	if x < 0 {
		x = 0
	}

	last := -1
	for i, row := range rows {
		if row.Y != pos.Y {
			continue
		}
		last = i
		if x <= row.Start+len([]rune(row.Text)) {
			col := x - row.Start
			if col < 0 {
				col = 0
			}
			return i, col
		}
	}
	if last >= 0 {
		return last, len([]rune(rows[last].Text))
	}
	return 0, 0
}
