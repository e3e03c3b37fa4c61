// Package complete implements the `complete` convenience described in
// spec §4.3: common-prefix extension over a caller-supplied word list.
package complete

import (
	"sort"
	"strings"

	"lineedit/internal/text"
)

// Kind distinguishes the three possible completion outcomes.
type Kind int

const (
	NoCompletion Kind = iota
	CompleteWith
	Possibilities
)

// Result is the outcome of a completion attempt.
type Result struct {
	Kind Kind

	// Valid when Kind == CompleteWith.
	Before text.Text
	After  text.Text

	// Valid when Kind == Possibilities: matches sorted by default string
	// order.
	Words []string
}

// Complete matches word (the text already typed before the cursor, taken
// from the tail of Edition.Before up to the nearest word boundary) against
// candidates.
//
// Common prefix is computed byte-wise, not grapheme-wise (spec §4.3, §9
// Open Question (b)): candidates are expected to be ASCII-safe, and a
// non-ASCII candidate list can in principle split a multi-byte sequence.
// That limitation is preserved verbatim rather than fixed.
func Complete(before, word, after text.Text, candidates []string) Result {
	w := word.String()
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, w) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return Result{Kind: NoCompletion}
	}
	if len(matches) == 1 {
		return Result{
			Kind:   CompleteWith,
			Before: text.Concat(before, text.New(matches[0]+" ")),
			After:  after,
		}
	}

	cp := commonPrefix(matches)
	if len(cp) > len(w) {
		return Result{
			Kind:   CompleteWith,
			Before: text.Concat(before, text.New(cp)),
			After:  after,
		}
	}

	sorted := append([]string(nil), matches...)
	sort.Strings(sorted)
	return Result{Kind: Possibilities, Words: sorted}
}

// commonPrefix scans byte-for-byte until one string ends or the bytes
// differ, returning the longest shared prefix of all strs.
func commonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		i := 0
		for i < len(prefix) && i < len(s) && prefix[i] == s[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			break
		}
	}
	return prefix
}
