package loop

import (
	"strings"

	"lineedit/internal/edit"
	"lineedit/internal/render"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

// maskKind distinguishes the three password display styles from spec §4.4.
type maskKind int

const (
	maskChar maskKind = iota
	maskClear
	maskEmpty
)

// PasswordStyle is the `map_text` hook spec §4.4/§6 describe: replace each
// grapheme by a fixed character, show it as typed ("clear"), or hide it
// entirely ("empty").
type PasswordStyle struct {
	kind maskKind
	ch   rune
}

// MaskChar replaces every typed grapheme with ch on screen.
func MaskChar(ch rune) PasswordStyle { return PasswordStyle{kind: maskChar, ch: ch} }

// MaskClear echoes the typed text unmodified.
func MaskClear() PasswordStyle { return PasswordStyle{kind: maskClear} }

// MaskEmpty shows nothing at all while the user types.
func MaskEmpty() PasswordStyle { return PasswordStyle{kind: maskEmpty} }

// DefaultPasswordStyle is spec §6's default, `text("*")`.
func DefaultPasswordStyle() PasswordStyle { return MaskChar('*') }

func (p PasswordStyle) toMapText() render.MapText {
	return func(t text.Text) text.Text {
		switch p.kind {
		case maskClear:
			return t
		case maskEmpty:
			return text.Text{}
		default:
			n := t.Len()
			if n == 0 {
				return t
			}
			var b strings.Builder
			for i := 0; i < n; i++ {
				b.WriteRune(p.ch)
			}
			return text.New(b.String())
		}
	}
}

// ReadPassword implements spec §4.5's read_password: the same loop as
// ReadLine but with no history and no completion, and map_text applied on
// every draw including the final one. Stdin is drained of any buffered
// paste-ahead before the prompt is shown, and a non-tty pair fails outright
// since a masked secret can't be honored there.
func ReadPassword(t term.Terminal, prompt string, style PasswordStyle, clip *edit.Clipboard) (text.Text, error) {
	if !t.StdinIsATTY() || !t.StdoutIsATTY() {
		return text.Text{}, ErrNotATTY
	}

	var result editorResult
	err := t.WithRawMode(func() error {
		if jerr := t.JunkOld(); jerr != nil {
			return jerr
		}
		result = runEditor(t, prompt, editorConfig{
			clip: clip,
			mask: style.toMapText(),
		})
		return nil
	})
	if err != nil {
		return text.Text{}, err
	}
	return result.text, result.err
}
