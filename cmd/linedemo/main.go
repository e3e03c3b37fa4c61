// Command linedemo is a small interactive shell exercising lineedit:
// read_line with history and word-list completion, read_password, and
// read_yes_no, wired the way cmd/agent wires its own REPL loop.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lineedit"
	"lineedit/internal/complete"
	"lineedit/internal/config"
	"lineedit/internal/text"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	words, err := loadWordList(cfg.WordListPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "word list unavailable, completion disabled: %v\n", err)
	}

	history, err := lineedit.LoadHistory(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history unavailable: %v\n", err)
	}

	term := lineedit.NewTerminal()
	clip := lineedit.NewClipboard()
	completer := wordListCompleter(words)

	fmt.Printf("linedemo ready, history: %s\n", cfg.HistoryPath)

	for {
		line, err := lineedit.ReadLine(term, cfg.Prompt, history, completer, clip)
		if err != nil {
			switch {
			case errors.Is(err, lineedit.Interrupt):
				fmt.Fprintln(os.Stdout)
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(os.Stderr, "exit")
				saveHistory(cfg.HistoryPath, history)
				return
			default:
				fmt.Fprintf(os.Stderr, "read line failed: %v\n", err)
				saveHistory(cfg.HistoryPath, history)
				os.Exit(1)
			}
		}

		input := strings.TrimSpace(line.String())
		if input == "" {
			continue
		}
		history = append([]text.Text{line}, history...)

		switch input {
		case "/quit", "/exit":
			saveHistory(cfg.HistoryPath, history)
			return
		case "/secret":
			secret, err := lineedit.ReadPassword(term, "password: ", lineedit.MaskChar(rune(cfg.MaskChar[0])), clip)
			if err != nil {
				fmt.Fprintf(os.Stderr, "read password failed: %v\n", err)
				continue
			}
			fmt.Printf("got %d bytes\n", len(secret.String()))
		case "/confirm":
			ok, err := lineedit.ReadYesNo(term, "proceed? [y/n] ", nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "read yes/no failed: %v\n", err)
				continue
			}
			fmt.Printf("confirmed: %v\n", ok)
		default:
			fmt.Printf("echo: %s\n", input)
		}
	}
}

func wordListCompleter(words []string) lineedit.Completer {
	if len(words) == 0 {
		return lineedit.NoCompletion
	}
	return func(_ lineedit.AbortSignal, before, after text.Text) complete.Result {
		prefix, word := splitLastWord(before)
		return complete.Complete(prefix, word, after, words)
	}
}

// splitLastWord divides before into everything up to the start of its
// trailing word and that trailing word itself, so a completer can extend
// just the word currently being typed.
func splitLastWord(before text.Text) (prefix, word text.Text) {
	s := before.String()
	i := strings.LastIndexAny(s, " \t\n")
	return text.New(s[:i+1]), text.New(s[i+1:])
}

func loadWordList(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

func saveHistory(path string, history []text.Text) {
	if strings.TrimSpace(path) == "" {
		return
	}
	if err := lineedit.SaveHistory(path, history); err != nil {
		fmt.Fprintf(os.Stderr, "save history failed: %v\n", err)
	}
}
