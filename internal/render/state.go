// Package render implements the diffed terminal redraw described in spec
// §4.4: given the previous render state and the current engine state, it
// rewinds the cursor, erases stale trailing content, and redraws the
// prompt+buffer so the cursor ends up exactly where the edit engine says
// the caret is.
package render

import "lineedit/internal/text"

// State is the cached metrics of the last drawn frame (spec §3's "Render
// state"): the grapheme length of the whole drawn line, and how many rows
// above the cursor the prompt started.
type State struct {
	Length       int
	HeightBefore int
}

// Zero is the render state a fresh read_line call starts from.
var Zero = State{}

// Height returns the number of additional rows a line of n graphemes wraps
// onto at the given terminal width (spec §4.4's height formula).
func Height(cols, n int) int {
	if n == 0 {
		return 0
	}
	if cols <= 0 {
		cols = 1
	}
	return (n - 1) / cols
}

// lastGrapheme reports the final grapheme of t, used by the draw algorithm's
// step 9 newline-glitch workaround.
func lastGrapheme(t text.Text) (string, bool) {
	return t.At(-1)
}
