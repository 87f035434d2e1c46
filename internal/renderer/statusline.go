package renderer

import (
	"fmt"
	"strings"

	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/rivo/uniseg"
)

// StatusText builds the status line: document name and dirty marker on
// the left, cursor position on the right, padded to width columns.
// Width accounting is grapheme-aware so names with wide characters
// still align.
func StatusText(name string, dirty bool, pos cursor.Position, width int) string {
	if name == "" {
		name = "[untitled]"
	}
	left := " " + name
	if dirty {
		left += " [+]"
	}
	right := fmt.Sprintf("%d:%d ", pos.Y, pos.X)

	leftW := uniseg.StringWidth(left)
	rightW := uniseg.StringWidth(right)

	for leftW+rightW+1 > width && left != "" {
		left = trimLastCluster(left)
		leftW = uniseg.StringWidth(left)
	}

	pad := width - leftW - rightW
	if pad < 0 {
		pad = 0
	}
	return left + strings.Repeat(" ", pad) + right
}

// trimLastCluster removes the final grapheme cluster from s.
func trimLastCluster(s string) string {
	g := uniseg.NewGraphemes(s)
	last := 0
	for g.Next() {
		from, _ := g.Positions()
		last = from
	}
	return s[:last]
}
