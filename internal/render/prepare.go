package render

import (
	"lineedit/internal/style"
	"lineedit/internal/text"
)

// prepared is the result of the pre-display transform: a styled sequence
// with embedded newlines replaced by row-padding spaces, plus the grapheme
// length actually occupied on screen.
type prepared struct {
	seq    style.Sequence
	length int
}

// prepareForDisplay implements spec §4.4's pre-display transform: every
// embedded newline in a Text span is replaced by enough spaces to pad to the
// end of the current (logical, cols-wide) row, so stale characters from a
// prior render on the same physical row are always overwritten. A running
// grapheme counter (not display width) is threaded through, matching the
// spec's literal wording.
func prepareForDisplay(seq style.Sequence, cols int) prepared {
	if cols <= 0 {
		cols = 1
	}
	out := make(style.Sequence, 0, len(seq))
	count := 0
	for _, span := range seq {
		if span.Kind != style.KindText {
			out = append(out, span)
			continue
		}
		remaining := span.Text
		for {
			idx := indexByte(remaining, '\n')
			if idx < 0 {
				out = append(out, style.Text(remaining))
				count += graphemeCount(remaining)
				break
			}
			head := remaining[:idx]
			out = append(out, style.Text(head))
			count += graphemeCount(head)

			colPos := count % cols
			pad := cols - colPos
			out = append(out, style.Text(spaces(pad)))
			count += pad

			remaining = remaining[idx+1:]
		}
	}
	return prepared{seq: out, length: count}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// graphemeCount is the running counter the pre-display transform threads
// through (spec §4.4): the number of grapheme clusters, not bytes or runes.
func graphemeCount(s string) int {
	return text.New(s).Len()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
