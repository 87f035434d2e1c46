package engine

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content of the editor.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithWrapWidth sets the soft-wrap column width.
func WithWrapWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.wrapWidth = width
		}
	}
}
