// Package text implements the "text service" consumed by the rest of this
// module: grapheme-cluster-aware indexing, slicing, and comparison over a
// single line of user input.
//
// All content is stored as a flat slice of grapheme clusters rather than
// runes or bytes, so that a "character" as seen by the editor always matches
// what a terminal shows as one visual cell group (a base letter plus its
// combining marks, a flag emoji, etc).
package text

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Text is an immutable sequence of grapheme clusters. The zero value is the
// empty text.
type Text struct {
	graphemes []string
}

// New segments s into grapheme clusters.
func New(s string) Text {
	if s == "" {
		return Text{}
	}
	seg := graphemes.FromString(s)
	clusters := make([]string, 0, len(s))
	for seg.Next() {
		clusters = append(clusters, seg.Value())
	}
	return Text{graphemes: clusters}
}

// Empty reports whether t has no graphemes.
func (t Text) Empty() bool { return len(t.graphemes) == 0 }

// Len returns the number of grapheme clusters in t.
func (t Text) Len() int { return len(t.graphemes) }

// String joins the graphemes back into a plain Go string.
func (t Text) String() string {
	if len(t.graphemes) == 0 {
		return ""
	}
	var b strings.Builder
	for _, g := range t.graphemes {
		b.WriteString(g)
	}
	return b.String()
}

// Concat returns a⧺b as a new Text.
func Concat(a, b Text) Text {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	out := make([]string, 0, len(a.graphemes)+len(b.graphemes))
	out = append(out, a.graphemes...)
	out = append(out, b.graphemes...)
	return Text{graphemes: out}
}

// ChopPrefix removes the first grapheme of t, returning the remainder and the
// removed grapheme. ok is false if t is empty.
func (t Text) ChopPrefix() (rest Text, removed string, ok bool) {
	if t.Empty() {
		return t, "", false
	}
	return Text{graphemes: t.graphemes[1:]}, t.graphemes[0], true
}

// ChopSuffix removes the last grapheme of t, returning the remainder and the
// removed grapheme. ok is false if t is empty.
func (t Text) ChopSuffix() (rest Text, removed string, ok bool) {
	n := len(t.graphemes)
	if n == 0 {
		return t, "", false
	}
	return Text{graphemes: t.graphemes[:n-1]}, t.graphemes[n-1], true
}

// At returns the grapheme at the signed index i. Negative indices count from
// the end (-1 is the last grapheme). ok is false when i is out of range.
func (t Text) At(i int) (g string, ok bool) {
	n := len(t.graphemes)
	if i < 0 {
		i = n + i
	}
	if i < 0 || i >= n {
		return "", false
	}
	return t.graphemes[i], true
}

// StartsWith reports whether t begins with the graphemes of prefix.
func (t Text) StartsWith(prefix Text) bool {
	if len(prefix.graphemes) > len(t.graphemes) {
		return false
	}
	for i, g := range prefix.graphemes {
		if t.graphemes[i] != g {
			return false
		}
	}
	return true
}

// Compare performs a case-sensitive, byte-wise comparison of a and b's
// rendered strings, returning -1, 0, or 1.
func Compare(a, b Text) int {
	return strings.Compare(a.String(), b.String())
}

// CompareFold performs a Unicode case-insensitive comparison of a and b,
// returning -1, 0, or 1.
func CompareFold(a, b Text) int {
	return strings.Compare(foldCaser.String(a.String()), foldCaser.String(b.String()))
}

// IsPrintable reports whether a single grapheme cluster contains no C0
// control character and no DEL; a space counts as printable. command.Map
// uses it to decide whether a rune key inserts a character.
func IsPrintable(g string) bool {
	if g == "" {
		return false
	}
	for _, r := range g {
		if r <= 0x1f || r == 0x7f {
			return false
		}
	}
	return true
}

// IsBlank reports whether a single grapheme cluster is a space-like
// separator, used for word-boundary scanning.
func IsBlank(g string) bool {
	return g == " " || g == "\t" || g == "\n" || g == "\r"
}
