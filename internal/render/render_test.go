package render

import (
	"bytes"
	"strings"
	"testing"

	"lineedit/internal/edit"
	"lineedit/internal/style"
	"lineedit/internal/text"
)

func TestHeightFormula(t *testing.T) {
	cases := []struct {
		cols, n, want int
	}{
		{80, 0, 0},
		{80, 1, 0},
		{80, 80, 0},
		{80, 81, 1},
		{80, 160, 1},
		{80, 161, 2},
	}
	for _, c := range cases {
		if got := Height(c.cols, c.n); got != c.want {
			t.Errorf("Height(%d,%d) = %d, want %d", c.cols, c.n, got, c.want)
		}
	}
}

func TestPrepareForDisplayPreservesGraphemes(t *testing.T) {
	seq := style.Sequence{style.Text("ab\ncd")}
	prepared := prepareForDisplay(seq, 4)
	plain := style.StripStyles(prepared.seq)
	plain = strings.ReplaceAll(plain, " ", "")
	if plain != "abcd" {
		t.Fatalf("expected non-space characters preserved in order, got %q", plain)
	}
}

func TestPrepareForDisplayPadsToColumnBoundary(t *testing.T) {
	seq := style.Sequence{style.Text("ab\nc")}
	prepared := prepareForDisplay(seq, 4)
	plain := style.StripStyles(prepared.seq)
	if len(plain) != 5 {
		t.Fatalf("expected padding to next 4-column boundary, got %q (len %d)", plain, len(plain))
	}
}

func TestDrawIsIdempotentOnUnchangedState(t *testing.T) {
	es := editionOf("hello", " world")
	prompt := style.Sequence{style.Text("> ")}

	var buf1 bytes.Buffer
	s1 := Draw(&buf1, 80, Zero, prompt, es, Identity)

	var buf2 bytes.Buffer
	s2 := Draw(&buf2, 80, s1, prompt, es, Identity)

	if s1 != s2 {
		t.Fatalf("expected stable render state on unchanged input, got %+v then %+v", s1, s2)
	}
}

func TestDrawMasksPassword(t *testing.T) {
	es := editionOf("secret", "")
	prompt := style.Sequence{}
	mask := func(t text.Text) text.Text {
		return text.New(strings.Repeat("*", t.Len()))
	}
	var buf bytes.Buffer
	Draw(&buf, 80, Zero, prompt, es, mask)
	if strings.Contains(buf.String(), "secret") {
		t.Fatalf("masked draw leaked plaintext: %q", buf.String())
	}
}

func editionOf(before, after string) edit.State {
	return edit.State{
		Mode:   edit.ModeEdition,
		Before: text.New(before),
		After:  text.New(after),
	}
}
