package history

import (
	"os"
	"path/filepath"
	"testing"

	"lineedit/internal/text"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	lines, err := Load(filepath.Join(t.TempDir(), "nope.hist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty history, got %v", lines)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h")
	want := []text.Text{text.New("first"), text.New("second"), text.New("third")}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("line %d: got %q want %q", i, got[i].String(), want[i].String())
		}
	}
}

func TestLoadSuppressesEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h")
	want := []text.Text{text.New("a"), text.New(""), text.New("b")}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected empty line filtered out, got %v", got)
	}
	if got[0].String() != "a" || got[1].String() != "b" {
		t.Fatalf("unexpected lines: %v", got)
	}
}

func TestSaveWritesNulDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h")
	if err := Save(path, []text.Text{text.New("x"), text.New("yz")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(raw) != "x\x00yz\x00" {
		t.Fatalf("unexpected raw bytes: %q", raw)
	}
}
