package lineedit

import (
	"testing"

	"lineedit/internal/command"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

func TestReadLineFacadeRoundTrips(t *testing.T) {
	m := term.NewMock(80, append(term.Chars("hi"), command.Key{Kind: command.KindEnter})...)
	got, err := ReadLine(m, "> ", nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "hi" {
		t.Fatalf("got %q, want %q", got.String(), "hi")
	}
}

func TestReadYesNoFacade(t *testing.T) {
	m := term.NewMock(80, append(term.Chars("yes"), command.Key{Kind: command.KindEnter})...)
	got, err := ReadYesNo(m, "? ", nil)
	if err != nil || !got {
		t.Fatalf("got (%v,%v), want (true,nil)", got, err)
	}
}

func TestHistoryRoundTripFacade(t *testing.T) {
	path := t.TempDir() + "/hist"
	want := []Text{text.New("one"), text.New("two")}
	if err := SaveHistory(path, want); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}
	got, err := LoadHistory(path)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(got) != 2 || got[0].String() != "one" || got[1].String() != "two" {
		t.Fatalf("got %v, want %v", got, want)
	}
}
