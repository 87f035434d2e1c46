// Package engine provides the core document engine for Quill.
//
// The engine package is the main facade. It owns the raw text and the
// single edit location, and exposes the editing command set: cursor
// motions, their selection-extending variants, and the edit
// operations the shell dispatches.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: the raw rune store, sole mutation point, line-ending
//     normalization and revision/dirty tracking
//   - document: line classification (headings and paragraphs) and
//     position/offset conversion
//   - cursor: positions, sticky-column cursors, and selections
//   - motion: pure navigation functions over a document
//   - wrap: width-constrained soft wrapping with word boundaries
//
// # Document Model
//
// Positions are (line, column) pairs over logical lines. Heading
// lines hide their leading marker ("## " and the like) from column
// addressing: column 0 is the first visible character and the marker
// occupies negative columns down to Line.Beginning(). Offsets are
// rune indexes into the raw text; document.PositionToOffset and
// OffsetToPosition convert between the two, and every edit resolves
// its offsets before mutating and its landing position after.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("## Title\n\nBody text"))
//
//	e.MoveEndOfFile()
//	e.Insert(" and more")
//
//	e.SelectAll()
//	text := e.SelectedText()
//
// # Edit Location
//
// The editor holds exactly one Location, a Cursor or a Selection,
// replaced wholesale by every command. Non-extending motions collapse
// a selection toward the motion's direction; Select variants extend
// it from the anchor.
package engine
