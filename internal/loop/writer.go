package loop

import "lineedit/internal/term"

// termWriter adapts a term.Terminal's string-based Write into the io.Writer
// the renderer expects.
type termWriter struct {
	t term.Terminal
}

func (w termWriter) Write(p []byte) (int, error) {
	if err := w.t.Write(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
