package loop

import (
	"lineedit/internal/edit"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

// ReadLine implements spec §4.5/§6's read_line: raw-mode-scoped editing
// with history, selection, and completion, falling back to a single plain
// line when stdin/stdout aren't both ttys.
func ReadLine(t term.Terminal, prompt string, history []text.Text, completer Completer, clip *edit.Clipboard) (text.Text, error) {
	if completer == nil {
		completer = NoCompletion
	}
	if !t.StdinIsATTY() || !t.StdoutIsATTY() {
		_ = t.Write(prompt)
		return readPlainLine(t)
	}

	var result editorResult
	err := t.WithRawMode(func() error {
		result = runEditor(t, prompt, editorConfig{
			history:   history,
			clip:      clip,
			completer: completer,
		})
		return nil
	})
	if err != nil {
		return text.Text{}, err
	}
	return result.text, result.err
}
