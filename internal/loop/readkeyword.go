package loop

import (
	"strings"

	"lineedit/internal/command"
	"lineedit/internal/edit"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

// KeywordEntry pairs a keyword string with the value read_keyword returns
// when the accepted line matches it (spec §6's `[(text, V)]`).
type KeywordEntry struct {
	Key   string
	Value any
}

// ReadKeyword implements spec §4.5's read_keyword: same loop as ReadLine,
// but Accept_line only returns once the buffer matches a keyword, and
// Complete does a synchronous prefix match over the keyword list instead of
// racing a caller completer.
func ReadKeyword(t term.Terminal, prompt string, keywords []KeywordEntry, caseSensitive bool, history []text.Text) (any, error) {
	if !t.StdinIsATTY() || !t.StdoutIsATTY() {
		return readKeywordFallback(t, prompt, keywords, caseSensitive)
	}
	var result editorResult
	err := t.WithRawMode(func() error {
		result = runEditor(t, prompt, editorConfig{
			history:       history,
			keywordMode:   true,
			keywords:      keywords,
			caseSensitive: caseSensitive,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result.value, result.err
}

// ReadYesNo wraps ReadKeyword with the yes/no/y/n keyword table (spec §6).
func ReadYesNo(t term.Terminal, prompt string, history []text.Text) (bool, error) {
	v, err := ReadKeyword(t, prompt, []KeywordEntry{
		{Key: "yes", Value: true},
		{Key: "y", Value: true},
		{Key: "no", Value: false},
		{Key: "n", Value: false},
	}, false, history)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func lookupKeyword(keywords []KeywordEntry, line text.Text, caseSensitive bool) (any, bool) {
	for _, k := range keywords {
		kt := text.New(k.Key)
		var eq bool
		if caseSensitive {
			eq = text.Compare(kt, line) == 0
		} else {
			eq = text.CompareFold(kt, line) == 0
		}
		if eq {
			return k.Value, true
		}
	}
	return nil, false
}

// completeKeyword implements spec §4.5's read_keyword Complete handling:
// reset out of Selection, then if the typed prefix (the Edition "before"
// side) has exactly one keyword match, replace the buffer with it.
func completeKeyword(es edit.State, keywords []KeywordEntry) edit.State {
	es = edit.Reset(es)
	prefix := es.Before.String()

	var only string
	matches := 0
	for _, k := range keywords {
		if strings.HasPrefix(k.Key, prefix) {
			matches++
			only = k.Key
			if matches > 1 {
				break
			}
		}
	}
	if matches != 1 {
		return es
	}
	return edit.State{
		Mode:    edit.ModeEdition,
		Before:  text.New(only),
		History: es.History,
	}
}

func readKeywordFallback(t term.Terminal, prompt string, keywords []KeywordEntry, caseSensitive bool) (any, error) {
	_ = t.Write(prompt)
	line, err := readPlainLine(t)
	if err != nil {
		return nil, err
	}
	v, ok := lookupKeyword(keywords, line, caseSensitive)
	if !ok {
		return nil, ErrNoMatch
	}
	return v, nil
}

// readPlainLine is the shared non-tty fallback reader (spec §6): collect
// printable runes until Enter or EOF.
func readPlainLine(t term.Terminal) (text.Text, error) {
	var b strings.Builder
	for {
		k, err := t.ReadKey()
		if err != nil {
			if b.Len() == 0 {
				return text.Text{}, err
			}
			return text.New(b.String()), nil
		}
		switch k.Kind {
		case command.KindEnter:
			return text.New(b.String()), nil
		case command.KindRune:
			b.WriteRune(k.Rune)
		}
	}
}
