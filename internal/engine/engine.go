package engine

import (
	"io"

	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/document"
	"github.com/quilledit/quill/internal/engine/motion"
	"github.com/quilledit/quill/internal/engine/wrap"
)

// Re-export commonly used types for convenience.
type (
	// Offset is a rune position in the raw text.
	Offset = buffer.Offset

	// LineEnding specifies the line ending style used on save.
	LineEnding = buffer.LineEnding

	// Position is a line/column address in document space.
	Position = cursor.Position

	// Cursor is a position plus a preferred column.
	Cursor = cursor.Cursor

	// Selection is a directed range between two positions.
	Selection = cursor.Selection

	// Location is the current edit location: a Cursor or a Selection.
	Location = cursor.Location

	// Line is a classified logical line.
	Line = document.Line

	// LineKind categorizes lines.
	LineKind = document.LineKind

	// WrappedText is a width-constrained wrapping of one line.
	WrappedText = wrap.WrappedText
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR

	KindNormal               = document.KindNormal
	KindHeadlineStart        = document.KindHeadlineStart
	KindHeadlineContinuation = document.KindHeadlineContinuation
)

// Editor is the main facade for the document engine. It owns the raw
// text and the single edit location, and exposes the command set the
// shell drives: motions, selection variants, and edits.
//
// Editor is not safe for concurrent use; the event loop is the only
// caller.
type Editor struct {
	buf *buffer.Buffer
	loc cursor.Location

	wrapWidth int

	initContent string
}

// New creates an Editor with the given options. The edit location
// starts at the beginning of the document.
func New(opts ...Option) *Editor {
	e := &Editor{
		wrapWidth: wrap.DefaultWidth,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.initContent != "" {
		e.buf = buffer.FromString(e.initContent)
	} else {
		e.buf = buffer.New()
	}
	e.loc = e.cursorAt(motion.BeginningOfFile(e.document()))
	return e
}

// NewFromReader creates an Editor reading initial content from r.
func NewFromReader(r io.Reader, opts ...Option) (*Editor, error) {
	e := New(opts...)
	buf, err := buffer.FromReader(r)
	if err != nil {
		return nil, err
	}
	e.buf = buf
	e.loc = e.cursorAt(motion.BeginningOfFile(e.document()))
	return e, nil
}

// document builds the line view of the current buffer. Lines are
// recomputed per call; the buffer revision is the cache key if a
// caller ever needs one.
func (e *Editor) document() document.Document {
	return document.New(e.buf)
}

func (e *Editor) cursorAt(pos cursor.Position) cursor.Cursor {
	return cursor.NewCursor(pos.Y, pos.X)
}

// setCursor replaces the edit location with a cursor at pos. The
// preferred column resets to the new x.
func (e *Editor) setCursor(pos cursor.Position) {
	e.loc = e.cursorAt(pos)
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full raw text.
func (e *Editor) Text() string {
	return e.buf.String()
}

// Len returns the total rune length of the raw text.
func (e *Editor) Len() Offset {
	return e.buf.Len()
}

// IsEmpty returns true if the document has no content.
func (e *Editor) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// Revision returns the buffer revision counter.
func (e *Editor) Revision() uint64 {
	return e.buf.Revision()
}

// Dirty returns true if the document has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.buf.Dirty()
}

// MarkSaved clears the unsaved-changes flag.
func (e *Editor) MarkSaved() {
	e.buf.MarkSaved()
}

// Lines returns the classified logical lines of the document,
// including the trailing sentinel line.
func (e *Editor) Lines() []Line {
	return e.document().Lines()
}

// Line returns the line at index i, clamped to the document.
func (e *Editor) Line(i int) Line {
	return e.document().Line(i)
}

// LineCount returns the number of logical lines.
func (e *Editor) LineCount() int {
	return e.document().LineCount()
}

// Location returns the current edit location.
func (e *Editor) Location() Location {
	return e.loc
}

// ActivePosition returns the position the next motion starts from:
// the cursor position, or the moving end of a selection.
func (e *Editor) ActivePosition() Position {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		return loc.Position
	case cursor.Selection:
		return loc.End
	}
	return cursor.Position{}
}

// SelectedText returns the text covered by the current selection, or
// "" when the location is a cursor.
func (e *Editor) SelectedText() string {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		return ""
	case cursor.Selection:
		return e.ReadRange(loc.Smallest(), loc.Largest())
	}
	return ""
}

// PositionToOffset converts a document position to a rune offset.
func (e *Editor) PositionToOffset(pos Position) Offset {
	return e.document().PositionToOffset(pos)
}

// OffsetToPosition converts a rune offset to a document position.
func (e *Editor) OffsetToPosition(off Offset) Position {
	return e.document().OffsetToPosition(off)
}

// ReadRange returns the text between two positions. Reversed or
// out-of-range positions are reordered and clamped.
func (e *Editor) ReadRange(start, end Position) string {
	d := e.document()
	so := d.PositionToOffset(start)
	eo := d.PositionToOffset(end)
	if eo < so {
		so, eo = eo, so
	}
	return e.buf.Slice(so, eo)
}

// WrapLine wraps line y's visible text at the configured width.
// Callers handle ErrUnwrappableLine, typically by falling back to
// wrap.HardWrap.
func (e *Editor) WrapLine(y int) (*WrappedText, error) {
	return wrap.New(e.document().Line(y).VisibleText(), e.wrapWidth)
}

// WrapWidth returns the soft-wrap column width.
func (e *Editor) WrapWidth() int {
	return e.wrapWidth
}

// SetWrapWidth sets the soft-wrap column width.
func (e *Editor) SetWrapWidth(width int) {
	if width > 0 {
		e.wrapWidth = width
	}
}

// ============================================================================
// Cursor Motion
// ============================================================================

// MoveTo places the cursor at pos, clamped into the document.
func (e *Editor) MoveTo(pos Position) {
	d := e.document()
	y := pos.Y
	if y < 0 {
		y = 0
	}
	if y > d.LineCount()-1 {
		y = d.LineCount() - 1
	}
	e.setCursor(cursor.NewPosition(y, d.Line(y).ClampX(pos.X)))
}

// MoveLeft moves the cursor one position left. A selection collapses
// to its smallest endpoint without further motion.
func (e *Editor) MoveLeft() {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		e.setCursor(motion.Left(e.document(), loc.Position))
	case cursor.Selection:
		e.setCursor(loc.Smallest())
	}
}

// MoveRight moves the cursor one position right. A selection
// collapses to its largest endpoint without further motion.
func (e *Editor) MoveRight() {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		e.setCursor(motion.Right(e.document(), loc.Position))
	case cursor.Selection:
		e.setCursor(loc.Largest())
	}
}

// MoveUp moves to the previous logical line, honoring the preferred
// column. From a selection the motion starts at the smallest endpoint.
func (e *Editor) MoveUp() {
	d := e.document()
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		pos := motion.Up(d, loc.Position, loc.PreferredX)
		e.loc = loc.MoveTo(pos)
	case cursor.Selection:
		from := loc.Smallest()
		e.setCursor(motion.Up(d, from, from.X))
	}
}

// MoveDown moves to the next logical line, honoring the preferred
// column. From a selection the motion starts at the largest endpoint.
func (e *Editor) MoveDown() {
	d := e.document()
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		pos := motion.Down(d, loc.Position, loc.PreferredX)
		e.loc = loc.MoveTo(pos)
	case cursor.Selection:
		from := loc.Largest()
		e.setCursor(motion.Down(d, from, from.X))
	}
}

// MoveBeginningOfLine moves to the current line's beginning.
func (e *Editor) MoveBeginningOfLine() {
	e.setCursor(motion.BeginningOfLine(e.document(), e.collapseToward(cursor.Backwards)))
}

// MoveEndOfLine moves to the current line's end.
func (e *Editor) MoveEndOfLine() {
	e.setCursor(motion.EndOfLine(e.document(), e.collapseToward(cursor.Forwards)))
}

// MoveBeginningOfFile moves to the beginning of the document.
func (e *Editor) MoveBeginningOfFile() {
	e.setCursor(motion.BeginningOfFile(e.document()))
}

// MoveEndOfFile moves to the end of the document.
func (e *Editor) MoveEndOfFile() {
	e.setCursor(motion.EndOfFile(e.document()))
}

// MoveBeginningOfWord moves to the previous word beginning.
func (e *Editor) MoveBeginningOfWord() {
	e.setCursor(motion.BeginningOfWord(e.document(), e.collapseToward(cursor.Backwards)))
}

// MoveEndOfWord moves to the next word end.
func (e *Editor) MoveEndOfWord() {
	e.setCursor(motion.EndOfWord(e.document(), e.collapseToward(cursor.Forwards)))
}

// collapseToward returns the position a non-extending command starts
// from: the cursor position, or the selection endpoint in the
// command's direction.
func (e *Editor) collapseToward(dir cursor.Direction) cursor.Position {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		return loc.Position
	case cursor.Selection:
		switch dir {
		case cursor.Backwards:
			return loc.Smallest()
		case cursor.Forwards:
			return loc.Largest()
		}
	}
	return cursor.Position{}
}

// ============================================================================
// Selection
// ============================================================================

// SelectLeft extends the selection one position left.
func (e *Editor) SelectLeft() {
	e.extendTo(motion.Left(e.document(), e.ActivePosition()))
}

// SelectRight extends the selection one position right.
func (e *Editor) SelectRight() {
	e.extendTo(motion.Right(e.document(), e.ActivePosition()))
}

// SelectUp extends the selection one logical line up.
func (e *Editor) SelectUp() {
	from := e.ActivePosition()
	e.extendTo(motion.Up(e.document(), from, from.X))
}

// SelectDown extends the selection one logical line down.
func (e *Editor) SelectDown() {
	from := e.ActivePosition()
	e.extendTo(motion.Down(e.document(), from, from.X))
}

// SelectBeginningOfLine extends the selection to the line beginning.
func (e *Editor) SelectBeginningOfLine() {
	e.extendTo(motion.BeginningOfLine(e.document(), e.ActivePosition()))
}

// SelectEndOfLine extends the selection to the line end.
func (e *Editor) SelectEndOfLine() {
	e.extendTo(motion.EndOfLine(e.document(), e.ActivePosition()))
}

// SelectBeginningOfFile extends the selection to the document start.
func (e *Editor) SelectBeginningOfFile() {
	e.extendTo(motion.BeginningOfFile(e.document()))
}

// SelectEndOfFile extends the selection to the document end.
func (e *Editor) SelectEndOfFile() {
	e.extendTo(motion.EndOfFile(e.document()))
}

// SelectBeginningOfWord extends the selection to the previous word
// beginning.
func (e *Editor) SelectBeginningOfWord() {
	e.extendTo(motion.BeginningOfWord(e.document(), e.ActivePosition()))
}

// SelectEndOfWord extends the selection to the next word end.
func (e *Editor) SelectEndOfWord() {
	e.extendTo(motion.EndOfWord(e.document(), e.ActivePosition()))
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	d := e.document()
	e.loc = cursor.NewSelection(motion.BeginningOfFile(d), motion.EndOfFile(d))
}

// CollapseSelection collapses a selection to its moving end. A cursor
// is left unchanged.
func (e *Editor) CollapseSelection() {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
	case cursor.Selection:
		e.setCursor(loc.End)
	}
}

// extendTo grows the selection to end, anchoring at the cursor
// position when the location is a cursor. A selection that collapses
// onto its anchor becomes a cursor again.
func (e *Editor) extendTo(end cursor.Position) {
	var sel cursor.Selection
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		sel = cursor.NewSelection(loc.Position, end)
	case cursor.Selection:
		sel = loc.Extend(end)
	}
	if sel.IsEmpty() {
		e.setCursor(sel.Start)
		return
	}
	e.loc = sel
}

// ============================================================================
// Edits
// ============================================================================

// Insert inserts text at the edit location. A selection is replaced
// by the text. The cursor lands after the inserted text, computed in
// the post-edit document so marker boundaries stay consistent.
func (e *Editor) Insert(text string) {
	start, end := e.editRange()
	e.replaceAndPlace(start, end, text)
}

// Enter inserts a line break at the edit location and places the
// cursor at the beginning of the new line.
func (e *Editor) Enter() {
	e.Insert("\n")
}

// Backspace deletes backward from the edit location.
//
// At a cursor: a no-op at the beginning of the file; at column 0 of a
// headline the whole hidden marker is removed in one step; otherwise
// the single preceding character. At a selection: the selected range,
// with the cursor left at the selection's smallest endpoint.
func (e *Editor) Backspace() {
	d := e.document()
	switch loc := e.loc.(type) {
	case cursor.Selection:
		small := loc.Smallest()
		so := d.PositionToOffset(small)
		eo := d.PositionToOffset(loc.Largest())
		e.buf.Replace(so, eo, "")
		x := small.X
		if x < 0 {
			x = 0
		}
		e.setCursor(cursor.NewPosition(small.Y, x))
	case cursor.Cursor:
		pos := loc.Position
		if pos == motion.BeginningOfFile(d) {
			return
		}
		line := d.Line(pos.Y)
		if pos.X == 0 && line.Kind == document.KindHeadlineStart {
			so := d.PositionToOffset(cursor.NewPosition(pos.Y, line.Beginning()))
			eo := d.PositionToOffset(pos)
			e.buf.Replace(so, eo, "")
			e.setCursor(e.document().OffsetToPosition(so))
			return
		}
		off := d.PositionToOffset(pos)
		if off == 0 {
			return
		}
		e.buf.Replace(off-1, off, "")
		e.setCursor(e.document().OffsetToPosition(off - 1))
	}
}

// ReplaceRange replaces the text between two positions and places the
// cursor after the replacement.
func (e *Editor) ReplaceRange(start, end Position, text string) {
	e.replaceAndPlace(start, end, text)
}

// editRange returns the range the next edit applies to: an empty
// range at the cursor, or the selection's span.
func (e *Editor) editRange() (cursor.Position, cursor.Position) {
	switch loc := e.loc.(type) {
	case cursor.Cursor:
		return loc.Position, loc.Position
	case cursor.Selection:
		return loc.Smallest(), loc.Largest()
	}
	return cursor.Position{}, cursor.Position{}
}

// replaceAndPlace performs the single buffer mutation and recomputes
// the cursor in the post-edit document. Offsets are resolved strictly
// before the mutation and the landing position strictly after it,
// which keeps marker columns correct when an edit changes a line's
// kind.
func (e *Editor) replaceAndPlace(start, end cursor.Position, text string) {
	d := e.document()
	so := d.PositionToOffset(start)
	eo := d.PositionToOffset(end)
	if eo < so {
		so, eo = eo, so
	}
	norm := buffer.Normalize(text)
	e.buf.Replace(so, eo, norm)
	e.setCursor(e.document().OffsetToPosition(so + buffer.Offset(len([]rune(norm)))))
}
