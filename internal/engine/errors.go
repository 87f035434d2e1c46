package engine

import "github.com/quilledit/quill/internal/engine/wrap"

// Errors surfaced by editor operations. Position and range arguments
// are clamped rather than rejected, so navigation and edits never
// fail; wrapping is the one operation with a hard error.
var (
	// ErrUnwrappableLine indicates a line contains a word longer than
	// the wrap width with no break opportunity.
	ErrUnwrappableLine = wrap.ErrUnwrappableLine
)
