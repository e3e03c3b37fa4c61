// Package config loads the small JSONC configuration cmd/linedemo runs
// with, adapted from the teacher's config loader: strip // and /* */
// comments, unmarshal over a struct of defaults, expand ~ in paths.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is everything the demo CLI needs: the prompt text, where history
// persists, the word list backing tab completion, and the password mask
// character.
type Config struct {
	Prompt       string `json:"prompt"`
	HistoryPath  string `json:"history_path"`
	WordListPath string `json:"word_list_path"`
	MaskChar     string `json:"mask_char"`
}

// Default mirrors the teacher's Default(): every field pre-populated with a
// sane value so a missing or partial config file still produces a usable
// Config.
func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryPath: "~/.linedemo_history",
		MaskChar:    "*",
	}
}

// Load reads path (JSONC, comments stripped) over Default(). A missing
// file is not an error; path == "" skips file loading entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path == "" {
		return normalize(cfg)
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return normalize(cfg)
		}
		return Config{}, fmt.Errorf("read config %q: %w", resolved, err)
	}

	var fc Config
	if err := json.Unmarshal(stripJSONComments(data), &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyOverrides(&cfg, fc)
	return normalize(cfg)
}

func applyOverrides(cfg *Config, override Config) {
	if strings.TrimSpace(override.Prompt) != "" {
		cfg.Prompt = override.Prompt
	}
	if strings.TrimSpace(override.HistoryPath) != "" {
		cfg.HistoryPath = override.HistoryPath
	}
	if strings.TrimSpace(override.WordListPath) != "" {
		cfg.WordListPath = override.WordListPath
	}
	if override.MaskChar != "" {
		cfg.MaskChar = override.MaskChar
	}
}

func normalize(cfg Config) (Config, error) {
	if cfg.HistoryPath != "" {
		expanded, err := expandPath(cfg.HistoryPath)
		if err != nil {
			return Config{}, err
		}
		cfg.HistoryPath = expanded
	}
	if cfg.WordListPath != "" {
		expanded, err := expandPath(cfg.WordListPath)
		if err != nil {
			return Config{}, err
		}
		cfg.WordListPath = expanded
	}
	return cfg, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

// stripJSONComments removes // line comments and /* */ block comments
// outside of JSON string literals.
func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	var out bytes.Buffer

	for i := 0; i < len(data); i++ {
		c := data[i]
		var next byte
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			switch {
			case c == '"':
				state = stateString
				out.WriteByte(c)
			case c == '/' && next == '/':
				state = stateLineComment
				i++
			case c == '/' && next == '*':
				state = stateBlockComment
				i++
			default:
				out.WriteByte(c)
			}
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}
	return out.Bytes()
}
