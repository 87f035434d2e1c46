package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/wrap"
)

func pos(y, x int) Position {
	return cursor.NewPosition(y, x)
}

func cursorPos(t *testing.T, e *Editor) Position {
	t.Helper()
	loc, ok := e.Location().(Cursor)
	if !ok {
		t.Fatalf("expected cursor location, got %T", e.Location())
	}
	return loc.Position
}

func selection(t *testing.T, e *Editor) Selection {
	t.Helper()
	loc, ok := e.Location().(Selection)
	if !ok {
		t.Fatalf("expected selection location, got %T", e.Location())
	}
	return loc
}

// ============================================================================
// Construction
// ============================================================================

func TestNew(t *testing.T) {
	e := New()
	if !e.IsEmpty() {
		t.Errorf("expected empty editor, got len %d", e.Len())
	}
	if got := cursorPos(t, e); got != pos(0, 0) {
		t.Errorf("expected cursor at (0:0), got %v", got)
	}
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))
	if e.Text() != "## Title\n\nBody text" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("expected cursor at heading marker start (0:-3), got %v", got)
	}
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("one\ntwo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "one\ntwo" {
		t.Errorf("unexpected text %q", e.Text())
	}
}

func TestLineAccessors(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	if e.LineCount() != 4 {
		t.Fatalf("expected 4 lines including sentinel, got %d", e.LineCount())
	}
	if e.Line(0).Kind != KindHeadlineStart || e.Line(0).Level != 2 {
		t.Errorf("line 0 = %v %d, want headline start level 2", e.Line(0).Kind, e.Line(0).Level)
	}
	if e.Line(2).Kind != KindNormal {
		t.Errorf("line 2 kind = %v, want normal", e.Line(2).Kind)
	}
	if lines := e.Lines(); lines[3].Text != "" {
		t.Errorf("expected empty sentinel line, got %q", lines[3].Text)
	}
}

// ============================================================================
// Motion Commands
// ============================================================================

func TestMoveTo(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveTo(pos(2, 4))
	if got := cursorPos(t, e); got != pos(2, 4) {
		t.Errorf("expected (2:4), got %v", got)
	}

	e.MoveTo(pos(100, 100))
	if got := cursorPos(t, e); got != pos(3, 0) {
		t.Errorf("expected clamp to (3:0), got %v", got)
	}

	e.MoveTo(pos(-5, -100))
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("expected clamp to (0:-3), got %v", got)
	}
}

func TestMoveLeftRightAcrossLines(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveTo(pos(0, 5))
	e.MoveRight()
	if got := cursorPos(t, e); got != pos(1, 0) {
		t.Errorf("right from line end: expected (1:0), got %v", got)
	}
	e.MoveLeft()
	if got := cursorPos(t, e); got != pos(0, 5) {
		t.Errorf("left from line start: expected (0:5), got %v", got)
	}
}

func TestMoveFileEdges(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveEndOfFile()
	if got := cursorPos(t, e); got != pos(3, 0) {
		t.Errorf("expected end of file (3:0), got %v", got)
	}
	e.MoveBeginningOfFile()
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("expected beginning of file (0:-3), got %v", got)
	}
	e.MoveLeft()
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("left at beginning of file should not move, got %v", got)
	}
}

func TestMoveVerticalStickyColumn(t *testing.T) {
	e := New(WithContent("alpha beta\nhi\ncharlie delta"))

	e.MoveTo(pos(0, 8))
	e.MoveDown()
	if got := cursorPos(t, e); got != pos(1, 2) {
		t.Errorf("expected clamp to (1:2), got %v", got)
	}
	e.MoveDown()
	if got := cursorPos(t, e); got != pos(2, 8) {
		t.Errorf("expected preferred column restored at (2:8), got %v", got)
	}
	e.MoveUp()
	e.MoveUp()
	if got := cursorPos(t, e); got != pos(0, 8) {
		t.Errorf("expected (0:8) after moving back up, got %v", got)
	}
}

func TestMoveLineEdges(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveTo(pos(0, 2))
	e.MoveBeginningOfLine()
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("expected line beginning (0:-3), got %v", got)
	}
	e.MoveEndOfLine()
	if got := cursorPos(t, e); got != pos(0, 5) {
		t.Errorf("expected line end (0:5), got %v", got)
	}
}

func TestMoveWordCommands(t *testing.T) {
	e := New(WithContent("alpha beta gamma"))

	e.MoveTo(pos(0, 0))
	e.MoveEndOfWord()
	if got := cursorPos(t, e); got != pos(0, 6) {
		t.Errorf("expected next word at (0:6), got %v", got)
	}
	e.MoveTo(pos(0, 11))
	e.MoveBeginningOfWord()
	if got := cursorPos(t, e); got != pos(0, 6) {
		t.Errorf("expected previous word at (0:6), got %v", got)
	}
}

func TestMoveCollapsesSelection(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.loc = cursor.NewSelection(pos(0, 2), pos(0, 8))
	e.MoveLeft()
	if got := cursorPos(t, e); got != pos(0, 2) {
		t.Errorf("left should collapse to smallest (0:2), got %v", got)
	}

	e.loc = cursor.NewSelection(pos(0, 8), pos(0, 2))
	e.MoveRight()
	if got := cursorPos(t, e); got != pos(0, 8) {
		t.Errorf("right should collapse to largest (0:8), got %v", got)
	}
}

func TestMoveVerticalFromSelection(t *testing.T) {
	e := New(WithContent("one two\nthree four\nfive six"))

	e.loc = cursor.NewSelection(pos(1, 2), pos(1, 6))
	e.MoveUp()
	if got := cursorPos(t, e); got != pos(0, 2) {
		t.Errorf("up should move from smallest, expected (0:2), got %v", got)
	}

	e.loc = cursor.NewSelection(pos(1, 2), pos(1, 6))
	e.MoveDown()
	if got := cursorPos(t, e); got != pos(2, 6) {
		t.Errorf("down should move from largest, expected (2:6), got %v", got)
	}
}

// ============================================================================
// Selection Commands
// ============================================================================

func TestSelectExtendAndCollapse(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.MoveTo(pos(0, 0))
	e.SelectRight()
	e.SelectRight()
	sel := selection(t, e)
	if sel.Start != pos(0, 0) || sel.End != pos(0, 2) {
		t.Errorf("expected selection (0:0)-(0:2), got %v", sel)
	}

	e.SelectLeft()
	e.SelectLeft()
	if got := cursorPos(t, e); got != pos(0, 0) {
		t.Errorf("selection shrunk onto anchor should become a cursor at (0:0), got %v", got)
	}
}

func TestSelectDirection(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.MoveTo(pos(0, 5))
	e.SelectLeft()
	sel := selection(t, e)
	if sel.Direction() != cursor.Backwards {
		t.Errorf("expected backwards selection, got %v", sel.Direction())
	}
	if sel.Smallest() != pos(0, 4) || sel.Largest() != pos(0, 5) {
		t.Errorf("unexpected endpoints %v", sel)
	}
}

func TestSelectWordAndLine(t *testing.T) {
	e := New(WithContent("alpha beta gamma"))

	e.MoveTo(pos(0, 6))
	e.SelectEndOfWord()
	sel := selection(t, e)
	if sel.Start != pos(0, 6) || sel.End != pos(0, 11) {
		t.Errorf("expected (0:6)-(0:11), got %v", sel)
	}

	e.SelectEndOfLine()
	sel = selection(t, e)
	if sel.End != pos(0, 16) {
		t.Errorf("expected extension to line end (0:16), got %v", sel)
	}
}

func TestSelectAll(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.SelectAll()
	sel := selection(t, e)
	if sel.Start != pos(0, -3) || sel.End != pos(3, 0) {
		t.Errorf("expected (0:-3)-(3:0), got %v", sel)
	}
	if e.SelectedText() != "## Title\n\nBody text" {
		t.Errorf("unexpected selected text %q", e.SelectedText())
	}
}

func TestCollapseSelection(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.loc = cursor.NewSelection(pos(0, 8), pos(0, 2))
	e.CollapseSelection()
	if got := cursorPos(t, e); got != pos(0, 2) {
		t.Errorf("expected collapse to moving end (0:2), got %v", got)
	}

	e.CollapseSelection()
	if got := cursorPos(t, e); got != pos(0, 2) {
		t.Errorf("collapse on a cursor should be a no-op, got %v", got)
	}
}

func TestSelectedTextEmptyForCursor(t *testing.T) {
	e := New(WithContent("Hello"))
	if e.SelectedText() != "" {
		t.Errorf("expected empty selected text, got %q", e.SelectedText())
	}
}

// ============================================================================
// Edits
// ============================================================================

func TestInsertAtCursor(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.MoveTo(pos(0, 5))
	e.Insert(" big")
	if e.Text() != "Hello big world" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 9) {
		t.Errorf("expected cursor after insert (0:9), got %v", got)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := New(WithContent("Hello world"))

	e.loc = cursor.NewSelection(pos(0, 5), pos(0, 0))
	e.Insert("Howdy")
	if e.Text() != "Howdy world" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 5) {
		t.Errorf("expected cursor at (0:5), got %v", got)
	}
}

func TestInsertNormalizesLineEndings(t *testing.T) {
	e := New()
	e.Insert("one\r\ntwo\rthree")
	if e.Text() != "one\ntwo\nthree" {
		t.Errorf("unexpected text %q", e.Text())
	}
}

func TestInsertCompletesHeadingMarker(t *testing.T) {
	// Typing the space that turns "##X" into a heading relocates the
	// cursor to the visible start, not into the now-hidden marker.
	e := New(WithContent("##X"))

	e.MoveTo(pos(0, 2))
	e.Insert(" ")
	if e.Text() != "## X" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if e.Line(0).Kind != KindHeadlineStart {
		t.Errorf("expected line to become a headline start, got %v", e.Line(0).Kind)
	}
	if got := cursorPos(t, e); got != pos(0, 0) {
		t.Errorf("expected cursor at (0:0), got %v", got)
	}
}

func TestInsertSpaceInsideHeadingBody(t *testing.T) {
	e := New(WithContent("## ab"))

	e.MoveTo(pos(0, 1))
	e.Insert(" ")
	if e.Text() != "## a b" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 2) {
		t.Errorf("expected cursor at (0:2), got %v", got)
	}
}

func TestEnter(t *testing.T) {
	e := New(WithContent("alpha beta"))

	e.MoveTo(pos(0, 5))
	e.Enter()
	if e.Text() != "alpha\n beta" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(1, 0) {
		t.Errorf("expected cursor at beginning of next line (1:0), got %v", got)
	}
}

func TestBackspaceAtBeginningOfFile(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveBeginningOfFile()
	e.Backspace()
	if e.Text() != "## Title\n\nBody text" {
		t.Errorf("backspace at beginning of file should not edit, got %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, -3) {
		t.Errorf("cursor moved to %v", got)
	}
}

func TestBackspaceRemovesHeadingMarker(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	e.MoveTo(pos(0, 0))
	e.Backspace()
	if e.Text() != "Title\n\nBody text" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if e.Line(0).Kind != KindNormal {
		t.Errorf("expected line 0 to become normal, got %v", e.Line(0).Kind)
	}
	if got := cursorPos(t, e); got != pos(0, 0) {
		t.Errorf("expected cursor at new beginning of file (0:0), got %v", got)
	}
}

func TestBackspaceSingleCharacter(t *testing.T) {
	e := New(WithContent("Hello"))

	e.MoveTo(pos(0, 5))
	e.Backspace()
	if e.Text() != "Hell" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 4) {
		t.Errorf("expected cursor at (0:4), got %v", got)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := New(WithContent("one\ntwo"))

	e.MoveTo(pos(1, 0))
	e.Backspace()
	if e.Text() != "onetwo" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 3) {
		t.Errorf("expected cursor at join point (0:3), got %v", got)
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	e := New(WithContent("Line0\n\nHello world"))

	e.loc = cursor.NewSelection(pos(2, 5), pos(2, 1))
	sel := selection(t, e)
	if sel.Smallest() != pos(2, 1) || sel.Largest() != pos(2, 5) {
		t.Fatalf("unexpected endpoints %v", sel)
	}
	if sel.Direction() != cursor.Backwards {
		t.Fatalf("expected backwards direction, got %v", sel.Direction())
	}

	e.Backspace()
	if e.Text() != "Line0\n\nHworld" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(2, 1) {
		t.Errorf("expected cursor at (2:1), got %v", got)
	}
}

func TestBackspaceSelectionMarkerColumnFloorsAtZero(t *testing.T) {
	e := New(WithContent("## Title"))

	e.loc = cursor.NewSelection(pos(0, -3), pos(0, 2))
	e.Backspace()
	if e.Text() != "tle" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 0) {
		t.Errorf("expected cursor floored at (0:0), got %v", got)
	}
}

func TestReplaceRange(t *testing.T) {
	e := New(WithContent("Hello, World!"))

	e.ReplaceRange(pos(0, 12), pos(0, 7), "Go")
	if e.Text() != "Hello, Go!" {
		t.Errorf("unexpected text %q", e.Text())
	}
	if got := cursorPos(t, e); got != pos(0, 9) {
		t.Errorf("expected cursor at (0:9), got %v", got)
	}
}

func TestReadRange(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	if got := e.ReadRange(pos(0, -3), pos(0, 0)); got != "## " {
		t.Errorf("expected hidden marker text, got %q", got)
	}
	if got := e.ReadRange(pos(2, 4), pos(0, 5)); got != "\n\nBody" {
		t.Errorf("reversed range should reorder, got %q", got)
	}
}

// ============================================================================
// Conversion and State
// ============================================================================

func TestOffsetRoundTrip(t *testing.T) {
	e := New(WithContent("## Title\n\nBody text"))

	for _, p := range []Position{pos(0, -3), pos(0, 0), pos(0, 5), pos(1, 0), pos(2, 9), pos(3, 0)} {
		off := e.PositionToOffset(p)
		back := e.OffsetToPosition(off)
		if back != p {
			t.Errorf("round trip %v -> %d -> %v", p, off, back)
		}
	}
}

func TestDirtyTracking(t *testing.T) {
	e := New(WithContent("Hello"))

	if e.Dirty() {
		t.Error("fresh editor should not be dirty")
	}
	e.Insert("!")
	if !e.Dirty() {
		t.Error("expected dirty after insert")
	}
	rev := e.Revision()
	e.MarkSaved()
	if e.Dirty() {
		t.Error("expected clean after MarkSaved")
	}
	if e.Revision() != rev {
		t.Error("MarkSaved should not bump the revision")
	}
}

func TestWrapLine(t *testing.T) {
	e := New(WithContent("alpha beta gamma delta"), WithWrapWidth(11))

	w, err := e.WrapLine(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := w.Lines()
	if len(lines) != 2 || lines[0] != "alpha beta" || lines[1] != "gamma delta" {
		t.Errorf("unexpected wrapping %q", lines)
	}
}

func TestWrapLineUnwrappable(t *testing.T) {
	long := strings.Repeat("a", 60) + " " + strings.Repeat("a", 10)
	e := New(WithContent(long), WithWrapWidth(50))

	_, err := e.WrapLine(0)
	if !errors.Is(err, ErrUnwrappableLine) {
		t.Fatalf("expected ErrUnwrappableLine, got %v", err)
	}

	hard := wrap.HardWrap(long, 50)
	if len(hard) != 2 || len(hard[0]) != 50 {
		t.Errorf("unexpected hard wrap fallback %q", hard)
	}
}

func TestWrapLineSkipsHeadingMarker(t *testing.T) {
	e := New(WithContent("## Title"), WithWrapWidth(60))

	w, err := e.WrapLine(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.String() != "Title" {
		t.Errorf("expected visible text only, got %q", w.String())
	}
}
