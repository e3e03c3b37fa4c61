package render

import (
	"strings"
	"testing"
)

func TestLayoutWordsSingleColumnWhenNarrow(t *testing.T) {
	out := LayoutWords(6, []string{"apple", "fig"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one word per row at this width, got %q", out)
	}
}

func TestLayoutWordsPacksMultipleColumns(t *testing.T) {
	out := LayoutWords(40, []string{"a", "b", "c", "d"})
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected all words on one row, got %q", out)
	}
}

func TestLayoutWordsEmpty(t *testing.T) {
	if out := LayoutWords(40, nil); out != "" {
		t.Fatalf("expected empty output for no words, got %q", out)
	}
}
