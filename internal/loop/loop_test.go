package loop

import (
	"strings"
	"testing"

	"lineedit/internal/command"
	"lineedit/internal/complete"
	"lineedit/internal/edit"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

func keys(s string) []command.Key {
	return term.Chars(s)
}

func withEnter(ks ...command.Key) []command.Key {
	return append(append([]command.Key(nil), ks...), command.Key{Kind: command.KindEnter})
}

func wordCompleter(candidates []string) Completer {
	return func(_ AbortSignal, before, after text.Text) complete.Result {
		return complete.Complete(text.Text{}, before, after, candidates)
	}
}

func TestReadLinePlain(t *testing.T) {
	m := term.NewMock(80, withEnter(keys("hello")...)...)
	got, err := ReadLine(m, "> ", nil, nil, edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "hello" {
		t.Fatalf("got %q, want %q", got.String(), "hello")
	}
}

func TestReadLineEditInMiddle(t *testing.T) {
	ks := append(keys("abc"),
		command.Key{Kind: command.KindLeft}, command.Key{Kind: command.KindLeft})
	ks = append(ks, keys("x")...)
	ks = append(ks, command.Key{Kind: command.KindEnter})
	m := term.NewMock(80, ks...)
	got, err := ReadLine(m, "> ", nil, nil, edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "axbc" {
		t.Fatalf("got %q, want %q", got.String(), "axbc")
	}
}

func TestReadLineHistoryRecall(t *testing.T) {
	history := []text.Text{text.New("prev1"), text.New("prev2")}
	ks := []command.Key{
		{Kind: command.KindUp}, {Kind: command.KindUp}, {Kind: command.KindEnter},
	}
	m := term.NewMock(80, ks...)
	got, err := ReadLine(m, "> ", history, nil, edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "prev2" {
		t.Fatalf("got %q, want %q", got.String(), "prev2")
	}
}

func TestReadLineCompletionSingleMatch(t *testing.T) {
	ks := append(keys("ap"), command.Key{Kind: command.KindTab}, command.Key{Kind: command.KindEnter})
	m := term.NewMock(80, ks...)
	got, err := ReadLine(m, "> ", nil, wordCompleter([]string{"apricot"}), edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "apricot " {
		t.Fatalf("got %q, want %q", got.String(), "apricot ")
	}
}

func TestReadLineCompletionAmbiguousExtendsPrefix(t *testing.T) {
	ks := append(keys("a"), command.Key{Kind: command.KindTab}, command.Key{Kind: command.KindEnter})
	m := term.NewMock(80, ks...)
	got, err := ReadLine(m, "> ", nil, wordCompleter([]string{"abe", "abet", "above"}), edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "ab" {
		t.Fatalf("got %q, want %q", got.String(), "ab")
	}
}

func TestReadLineCompletionRaceTypingWins(t *testing.T) {
	blocking := func(signal AbortSignal, before, after text.Text) complete.Result {
		<-signal.Done()
		return complete.Result{Kind: complete.NoCompletion}
	}
	ks := append([]command.Key{{Kind: command.KindTab}},
		append(keys("x"), command.Key{Kind: command.KindEnter})...)
	m := term.NewMock(80, ks...)
	got, err := ReadLine(m, "> ", nil, blocking, edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "x" {
		t.Fatalf("got %q, want %q (completion result must be discarded)", got.String(), "x")
	}
}

func TestReadPasswordMasksDisplayButReturnsPlaintext(t *testing.T) {
	ks := withEnter(keys("secret")...)
	m := term.NewMock(80, ks...)
	got, err := ReadPassword(m, "", DefaultPasswordStyle(), edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "secret" {
		t.Fatalf("got %q, want %q", got.String(), "secret")
	}
	if strings.Contains(m.Output(), "secret") {
		t.Fatalf("password leaked into terminal output: %q", m.Output())
	}
	if !strings.Contains(m.Output(), "******") {
		t.Fatalf("expected masked echo, got %q", m.Output())
	}
}

func TestReadYesNo(t *testing.T) {
	m1 := term.NewMock(80, withEnter(keys("y")...)...)
	got, err := ReadYesNo(m1, "? ", nil)
	if err != nil || got != true {
		t.Fatalf("got (%v,%v), want (true,nil)", got, err)
	}

	m2 := term.NewMock(80, withEnter(keys("N")...)...)
	got2, err := ReadYesNo(m2, "? ", nil)
	if err != nil || got2 != false {
		t.Fatalf("got (%v,%v), want (false,nil)", got2, err)
	}
}

func TestReadLineBreakRaisesInterrupt(t *testing.T) {
	ks := append(keys("abc"), command.Key{Kind: command.KindCtrl, Rune: 'd'})
	m := term.NewMock(80, ks...)
	_, err := ReadLine(m, "> ", nil, nil, edit.NewClipboard())
	if err != ErrInterrupt {
		t.Fatalf("got %v, want ErrInterrupt", err)
	}
}

func TestReadLineNonTTYFallback(t *testing.T) {
	m := term.NewMock(80, withEnter(keys("piped")...)...)
	m.SetNotATTY()
	got, err := ReadLine(m, "> ", nil, nil, edit.NewClipboard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "piped" {
		t.Fatalf("got %q, want %q", got.String(), "piped")
	}
}

func TestReadPasswordFailsOnNonTTY(t *testing.T) {
	m := term.NewMock(80)
	m.SetNotATTY()
	if _, err := ReadPassword(m, "", DefaultPasswordStyle(), edit.NewClipboard()); err != ErrNotATTY {
		t.Fatalf("got %v, want ErrNotATTY", err)
	}
}
