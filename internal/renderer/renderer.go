// Package renderer draws the document and status line onto a terminal
// backend.
//
// Layout is a pure function of the editor state and the screen width;
// the Renderer adds scrolling, styling, and the actual cell writes.
// Heading markers are never drawn: rows carry visible text only, the
// same column space the engine addresses.
package renderer

import (
	"github.com/quilledit/quill/internal/engine"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/renderer/backend"
	"github.com/quilledit/quill/internal/renderer/core"
	"github.com/rivo/uniseg"
)

// Theme holds the styles the renderer draws with.
type Theme struct {
	Text      core.Style
	Heading   core.Style
	Selection core.Style
	Status    core.Style
}

// DefaultTheme returns the standard theme: bold headings, reverse
// video selection and status line.
func DefaultTheme() Theme {
	return Theme{
		Text:      core.DefaultStyle(),
		Heading:   core.DefaultStyle().WithAttr(core.AttrBold),
		Selection: core.DefaultStyle().WithAttr(core.AttrReverse),
		Status:    core.DefaultStyle().WithAttr(core.AttrReverse),
	}
}

// Renderer draws editor state onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	scroll  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// New creates a Renderer drawing to b.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend: b,
		theme:   DefaultTheme(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scroll returns the index of the first visible row.
func (r *Renderer) Scroll() int {
	return r.scroll
}

// Draw renders the document, selection, cursor, and status line, then
// flushes the backend.
func (r *Renderer) Draw(e *engine.Editor, docName string) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	textHeight := height - 1

	wrapWidth := e.WrapWidth()
	if width < wrapWidth {
		wrapWidth = width
	}
	rows := Layout(e, wrapWidth)

	active := e.ActivePosition()
	cursorRow, cursorCol := Locate(rows, active)

	if cursorRow < r.scroll {
		r.scroll = cursorRow
	}
	if textHeight > 0 && cursorRow >= r.scroll+textHeight {
		r.scroll = cursorRow - textHeight + 1
	}

	small, large, hasSel := selectionRange(e.Location())

	r.backend.Clear()
	for i := r.scroll; i < len(rows) && i-r.scroll < textHeight; i++ {
		r.drawRow(i-r.scroll, rows[i], small, large, hasSel, width)
	}

	status := StatusText(docName, e.Dirty(), active, width)
	r.drawStatus(status, height-1)

	screenY := cursorRow - r.scroll
	if screenY >= 0 && screenY < textHeight {
		r.backend.ShowCursor(columnWidth(rows[cursorRow].Text, cursorCol), screenY)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()
}

// drawRow writes one visual row, overlaying the selection style on
// cells inside the selected range.
func (r *Renderer) drawRow(screenY int, row VisualRow, small, large cursor.Position, hasSel bool, width int) {
	base := r.theme.Text
	switch row.Kind {
	case engine.KindNormal:
	case engine.KindHeadlineStart:
		base = r.theme.Heading
	case engine.KindHeadlineContinuation:
		base = r.theme.Heading
	}

	x := 0
	offset := row.Start
	g := uniseg.NewGraphemes(row.Text)
	for g.Next() {
		cluster := g.Str()
		w := g.Width()
		if w <= 0 {
			w = 1
		}
		if x+w > width {
			break
		}

		style := base
		if hasSel {
			p := cursor.NewPosition(row.Y, offset)
			if !p.Before(small) && p.Before(large) {
				style = r.theme.Selection
			}
		}

		r.backend.SetCell(x, screenY, core.NewCell(cluster, w, style))
		x += w
		offset += len([]rune(cluster))
	}
}

func (r *Renderer) drawStatus(status string, screenY int) {
	x := 0
	g := uniseg.NewGraphemes(status)
	for g.Next() {
		cluster := g.Str()
		w := g.Width()
		if w <= 0 {
			w = 1
		}
		r.backend.SetCell(x, screenY, core.NewCell(cluster, w, r.theme.Status))
		x += w
	}
}

// selectionRange extracts the ordered selection endpoints from a
// location.
func selectionRange(loc engine.Location) (cursor.Position, cursor.Position, bool) {
	switch l := loc.(type) {
	case engine.Cursor:
		return cursor.Position{}, cursor.Position{}, false
	case engine.Selection:
		return l.Smallest(), l.Largest(), true
	}
	return cursor.Position{}, cursor.Position{}, false
}

// columnWidth returns the display width of the first col runes of
// text, for cursor placement past wide clusters.
func columnWidth(text string, col int) int {
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}
	return uniseg.StringWidth(string(runes[:col]))
}
