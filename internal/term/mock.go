package term

import (
	"errors"
	"strings"
	"sync"

	"lineedit/internal/command"
	"lineedit/internal/style"
)

// ErrNoMoreKeys is returned by Mock.ReadKey once its scripted key queue is
// exhausted, so a scenario with a missing Accept_line/Break surfaces as a
// clear test failure rather than hanging.
var ErrNoMoreKeys = errors.New("term: mock key queue exhausted")

var _ Terminal = (*Mock)(nil)

// Mock is the deterministic Terminal used by the §8 input-loop scenario
// tests: a fixed key script in, a recording of everything written out.
type Mock struct {
	mu sync.Mutex

	keys   []command.Key
	cols   int
	isATTY bool

	written strings.Builder
	cleared int
}

// NewMock builds a Mock with the given scripted keys and terminal width.
func NewMock(cols int, keys ...command.Key) *Mock {
	return &Mock{keys: keys, cols: cols, isATTY: true}
}

// Chars is a convenience scripting helper: one KindRune key per rune.
func Chars(s string) []command.Key {
	keys := make([]command.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, command.Key{Kind: command.KindRune, Rune: r})
	}
	return keys
}

func (m *Mock) ReadKey() (command.Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.keys) == 0 {
		return command.Key{}, ErrNoMoreKeys
	}
	k := m.keys[0]
	m.keys = m.keys[1:]
	return k, nil
}

func (m *Mock) Write(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.written.WriteString(s)
	return nil
}

func (m *Mock) WriteChar(r rune) error {
	return m.Write(string(r))
}

func (m *Mock) WriteSequence(seq style.Sequence) error {
	return m.Write(style.Render(seq))
}

func (m *Mock) Printc(seq style.Sequence) error  { return m.WriteSequence(seq) }
func (m *Mock) Printlc(seq style.Sequence) error { return m.Write(style.Render(seq) + "\n") }

func (m *Mock) ClearScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared++
	return nil
}

func (m *Mock) Columns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cols <= 0 {
		return 80
	}
	return m.cols
}

func (m *Mock) WithRawMode(body func() error) error { return body() }

func (m *Mock) StdinIsATTY() bool  { return m.isATTY }
func (m *Mock) StdoutIsATTY() bool { return m.isATTY }

func (m *Mock) JunkOld() error { return nil }

// SetNotATTY flips the mock to simulate a redirected stdio pair.
func (m *Mock) SetNotATTY() { m.isATTY = false }

// Output returns everything written so far.
func (m *Mock) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written.String()
}

// ClearCount returns how many times ClearScreen was called.
func (m *Mock) ClearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

// PushKeys appends more scripted keys, for scenarios that need to feed keys
// mid-run (e.g. after a simulated completer delay).
func (m *Mock) PushKeys(keys ...command.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, keys...)
}
