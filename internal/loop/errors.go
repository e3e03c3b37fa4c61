package loop

import "errors"

// ErrInterrupt is raised when the user breaks out with C-d (spec §4.1's
// Break command, §7's Interrupt error kind).
var ErrInterrupt = errors.New("lineedit: interrupted")

// ErrNotATTY is returned by read_password when stdin/stdout aren't both
// interactive terminals (spec §6's non-tty fallback: "read_password fails").
var ErrNotATTY = errors.New("lineedit: not a terminal")

// ErrNoMatch is returned by read_keyword's non-tty fallback when the typed
// line doesn't match any keyword (spec §7's Invalid-input error kind).
var ErrNoMatch = errors.New("lineedit: input does not match any keyword")
