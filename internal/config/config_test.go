package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Prompt != "> " {
		t.Fatalf("got prompt %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.MaskChar != "*" {
		t.Fatalf("got mask char %q, want %q", cfg.MaskChar, "*")
	}
}

func TestLoadMissingPathReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Fatalf("got prompt %q, want default", cfg.Prompt)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := normalize(Default())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linedemo.jsonc")
	contents := `{
  // custom prompt
  "prompt": "demo> ",
  "word_list_path": "words.txt"
}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "demo> " {
		t.Fatalf("got prompt %q, want %q", cfg.Prompt, "demo> ")
	}
	if cfg.MaskChar != "*" {
		t.Fatalf("got mask char %q, want default %q", cfg.MaskChar, "*")
	}
	want, err := filepath.Abs(filepath.Join(dir, "words.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WordListPath != want {
		t.Fatalf("got word list path %q, want %q", cfg.WordListPath, want)
	}
}

func TestLoadExpandsHomeDirInHistoryPath(t *testing.T) {
	home := t.TempDir()
	if err := os.Setenv("HOME", home); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "linedemo.json")
	if err := os.WriteFile(path, []byte(`{"history_path": "~/custom_history"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(home, "custom_history")
	if cfg.HistoryPath != want {
		t.Fatalf("got history path %q, want %q", cfg.HistoryPath, want)
	}
}

func TestStripJSONCommentsPreservesStrings(t *testing.T) {
	in := []byte(`{"a": "http://example.com", /* drop */ "b": 1 // trailing
}`)
	out := stripJSONComments(in)
	want := "{\"a\": \"http://example.com\",  \"b\": 1 \n}"
	if string(out) != want {
		t.Fatalf("got %q, want %q", string(out), want)
	}
}
