// Package term models the "terminal service" spec §1 and §6 say is an
// external collaborator: raw-mode acquisition, key decoding, and styled
// writes. Only the operations §6 actually names are exposed.
package term

import (
	"lineedit/internal/command"
	"lineedit/internal/style"
)

// Terminal is the full surface consumed by the input loop (spec §6):
// read_key, write/write_char/write_sequence, printc/printlc, clear_screen,
// columns, with_raw_mode, stdin_is_atty/stdout_is_atty, and junk_old.
type Terminal interface {
	// ReadKey blocks for the next decoded keystroke.
	ReadKey() (command.Key, error)

	// Write emits raw bytes unstyled.
	Write(s string) error
	// WriteChar emits a single rune unstyled.
	WriteChar(r rune) error
	// WriteSequence renders and emits a styled sequence.
	WriteSequence(seq style.Sequence) error

	// Printc writes a styled sequence (alias kept for symmetry with
	// Printlc; spec §6 names both printc and printlc as distinct
	// primitives the renderer calls).
	Printc(seq style.Sequence) error
	// Printlc writes a styled sequence followed by a newline.
	Printlc(seq style.Sequence) error

	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen() error

	// Columns reports the current terminal width, re-queried on every call.
	Columns() int

	// WithRawMode runs body with the terminal in raw mode, guaranteeing
	// restoration of the previous mode on every exit path.
	WithRawMode(body func() error) error

	// StdinIsATTY and StdoutIsATTY report whether the underlying
	// descriptors are interactive terminals.
	StdinIsATTY() bool
	StdoutIsATTY() bool

	// JunkOld drains any bytes already buffered on stdin, so a password
	// prompt cannot be primed by paste-ahead typed for a prior prompt.
	JunkOld() error
}
