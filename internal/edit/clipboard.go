package edit

import (
	"sync"

	"lineedit/internal/text"
)

// Clipboard is the single-entry kill ring described in spec §3 and §9: a
// mutable text slot shared by reference across calls unless the caller
// passes a call-specific one. Only Kill_ring_save writes it and only Yank
// reads it (spec §4.2).
type Clipboard struct {
	mu      sync.Mutex
	content text.Text
}

// NewClipboard returns an empty clipboard cell.
func NewClipboard() *Clipboard { return &Clipboard{} }

// global is the process-wide clipboard used when callers don't supply their
// own (spec §6's `clipboard=global` default parameter).
var global = NewClipboard()

// Global returns the process-wide default clipboard.
func Global() *Clipboard { return global }

// Get returns the currently stored text.
func (c *Clipboard) Get() text.Text {
	if c == nil {
		return text.Text{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// Set replaces the stored text.
func (c *Clipboard) Set(t text.Text) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = t
}
