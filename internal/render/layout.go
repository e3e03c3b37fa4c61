package render

import "strings"

// LayoutWords implements spec §4.4's auxiliary word layout used to print
// Possibilities: words are padded right to a shared column width and
// wrapped once the row's column count is reached. The caller is
// responsible for the newline immediately before the block (spec §4.5's
// Complete handling); this function ends the block with a newline itself.
func LayoutWords(cols int, words []string) string {
	if len(words) == 0 {
		return ""
	}
	maxLen := 0
	for _, w := range words {
		if n := len([]rune(w)); n > maxLen {
			maxLen = n
		}
	}
	width := 1 + maxLen
	if cols <= 0 {
		cols = width
	}
	columns := cols / width
	if columns < 1 {
		columns = 1
	}
	columnWidth := cols / columns

	var b strings.Builder
	justWroteNewline := true
	for i, w := range words {
		col := i % columns
		if col == 0 && i != 0 {
			b.WriteByte('\n')
			justWroteNewline = true
		}
		b.WriteString(w)
		justWroteNewline = false
		if col != columns-1 && i != len(words)-1 {
			pad := columnWidth - len([]rune(w))
			if pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	if !justWroteNewline {
		b.WriteByte('\n')
	}
	return b.String()
}
