// Package history implements the NUL-delimited history file format from
// spec §6: each line is followed by a single 0x00 byte.
package history

import (
	"fmt"
	"os"

	"lineedit/internal/text"
)

// Load reads the history file at path. A missing file is not an error: it
// yields an empty history, per spec §7's "history load specifically
// suppresses open-failure". On load, adjacent NUL bytes (an empty line) are
// skipped rather than turned into an empty-string entry.
func Load(path string) ([]text.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history %s: %w", path, err)
	}

	var lines []text.Text
	start := 0
	for i, b := range data {
		if b != 0x00 {
			continue
		}
		if i > start {
			lines = append(lines, text.New(string(data[start:i])))
		}
		start = i + 1
	}
	return lines, nil
}

// Save writes lines to path, each followed by a NUL byte, in order. Unlike
// Load, Save performs no suppression: an empty-string line is written as a
// bare NUL.
func Save(path string, lines []text.Text) error {
	buf := make([]byte, 0, 64*len(lines))
	for _, l := range lines {
		buf = append(buf, l.String()...)
		buf = append(buf, 0x00)
	}
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return fmt.Errorf("save history %s: %w", path, err)
	}
	return nil
}
