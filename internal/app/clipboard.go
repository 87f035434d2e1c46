package app

import "sync"

// Clipboard is an in-process text register shared by copy, cut, and
// paste. System clipboard integration is out of scope.
type Clipboard struct {
	mu   sync.Mutex
	text string
}

// NewClipboard returns an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Set replaces the clipboard content.
func (c *Clipboard) Set(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

// Get returns the clipboard content.
func (c *Clipboard) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// IsEmpty reports whether the clipboard holds any text.
func (c *Clipboard) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text == ""
}
