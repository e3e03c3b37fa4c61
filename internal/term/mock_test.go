package term

import (
	"testing"

	"lineedit/internal/command"
)

func TestMockReadKeySequence(t *testing.T) {
	m := NewMock(80, append(Chars("hi"), command.Key{Kind: command.KindEnter})...)
	var got []command.Key
	for {
		k, err := m.ReadKey()
		if err != nil {
			break
		}
		got = append(got, k)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(got))
	}
	if got[2].Kind != command.KindEnter {
		t.Fatalf("expected final key to be Enter, got %+v", got[2])
	}
}

func TestMockExhaustedQueueReturnsError(t *testing.T) {
	m := NewMock(80)
	if _, err := m.ReadKey(); err != ErrNoMoreKeys {
		t.Fatalf("expected ErrNoMoreKeys, got %v", err)
	}
}

func TestMockRecordsOutput(t *testing.T) {
	m := NewMock(80)
	_ = m.Write("hello")
	_ = m.WriteChar('!')
	if got := m.Output(); got != "hello!" {
		t.Fatalf("expected recorded output %q, got %q", "hello!", got)
	}
}

func TestMockClearScreenCounts(t *testing.T) {
	m := NewMock(80)
	_ = m.ClearScreen()
	_ = m.ClearScreen()
	if m.ClearCount() != 2 {
		t.Fatalf("expected 2 clears, got %d", m.ClearCount())
	}
}
