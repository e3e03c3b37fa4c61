// Package lineedit is the public facade spec §6 describes: read_line,
// read_password, read_keyword, read_yes_no, plus the history load/save
// pair. Everything here delegates to internal/loop; this file only adapts
// the internal types to a small, stable surface.
package lineedit

import (
	"os"

	"lineedit/internal/edit"
	"lineedit/internal/history"
	"lineedit/internal/loop"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

// Text is the grapheme-aware string type every entry point below returns.
type Text = text.Text

// Terminal is the I/O service read_line and friends run against; use
// NewTerminal for the real stdin/stdout implementation.
type Terminal = term.Terminal

// Clipboard is the single-slot kill ring shared across calls unless a
// caller-specific one is passed.
type Clipboard = edit.Clipboard

// Completer is the caller-supplied tab-completion hook raced against
// keystrokes (spec §4.5).
type Completer = loop.Completer

// AbortSignal is the one-shot cancellation token passed to a Completer.
type AbortSignal = loop.AbortSignal

// KeywordEntry pairs a keyword with the value ReadKeyword returns on match.
type KeywordEntry = loop.KeywordEntry

// PasswordStyle selects how ReadPassword echoes typed characters.
type PasswordStyle = loop.PasswordStyle

// Interrupt is raised by ReadLine/ReadPassword/ReadKeyword when the user
// breaks out with C-d (spec §4.1's Break, §7's Interrupt error kind).
var Interrupt = loop.ErrInterrupt

// NewClipboard returns a fresh, empty clipboard cell.
func NewClipboard() *Clipboard { return edit.NewClipboard() }

// DefaultClipboard returns the process-wide clipboard used when callers
// don't pass their own (spec §6's clipboard=global default).
func DefaultClipboard() *Clipboard { return edit.Global() }

// NoCompletion is the default completer (spec §6's complete=const
// No_completion).
var NoCompletion Completer = loop.NoCompletion

// MaskChar, MaskClear, MaskEmpty, and DefaultPasswordStyle construct the
// three ReadPassword display styles named in spec §4.4/§6.
func MaskChar(ch rune) PasswordStyle    { return loop.MaskChar(ch) }
func MaskClear() PasswordStyle          { return loop.MaskClear() }
func MaskEmpty() PasswordStyle          { return loop.MaskEmpty() }
func DefaultPasswordStyle() PasswordStyle { return loop.DefaultPasswordStyle() }

// NewTerminal wraps the process's real stdin/stdout as a Terminal.
func NewTerminal() Terminal { return term.NewTTY(os.Stdin, os.Stdout) }

// ReadLine reads a single edited line with history and completion (spec
// §4.5/§6's read_line). history is most-recent-first; pass nil for none.
// completer may be nil (equivalent to NoCompletion). clip may be nil to use
// the process-wide default clipboard.
func ReadLine(t Terminal, prompt string, history []Text, completer Completer, clip *Clipboard) (Text, error) {
	return loop.ReadLine(t, prompt, history, completer, clip)
}

// ReadPassword reads a masked secret (spec §4.5/§6's read_password). Fails
// with ErrNotATTY-equivalent when stdin/stdout aren't both interactive.
func ReadPassword(t Terminal, prompt string, style PasswordStyle, clip *Clipboard) (Text, error) {
	return loop.ReadPassword(t, prompt, style, clip)
}

// ReadKeyword reads a line and resolves it against an association list
// (spec §4.5/§6's read_keyword), returning the matched value.
func ReadKeyword(t Terminal, prompt string, keywords []KeywordEntry, caseSensitive bool, history []Text) (any, error) {
	return loop.ReadKeyword(t, prompt, keywords, caseSensitive, history)
}

// ReadYesNo wraps ReadKeyword with the {yes,y,no,n} keyword table.
func ReadYesNo(t Terminal, prompt string, history []Text) (bool, error) {
	return loop.ReadYesNo(t, prompt, history)
}

// LoadHistory reads a NUL-delimited history file (spec §6). A missing file
// yields an empty history rather than an error.
func LoadHistory(path string) ([]Text, error) {
	return history.Load(path)
}

// SaveHistory writes lines to a NUL-delimited history file (spec §6).
func SaveHistory(path string, lines []Text) error {
	return history.Save(path, lines)
}
