package render

import (
	"io"

	"lineedit/internal/edit"
	"lineedit/internal/style"
	"lineedit/internal/text"
)

// MapText is the password-masking hook from spec §4.4: applied to all user
// text (never the prompt) before it is composed for display.
type MapText func(text.Text) text.Text

// Identity is the no-op MapText used by read_line/read_keyword.
func Identity(t text.Text) text.Text { return t }

// styledBuffer splits the engine state into the before/after styled halves
// described in spec §4.4 step 1. In Selection mode the selected range is
// wrapped in Underline/Reset and attached to whichever side keeps the caret
// at the before/after split: the "after" side if cursor sits before mark,
// the "before" side otherwise.
func styledBuffer(es edit.State, mask MapText) (before, after style.Sequence) {
	if es.Mode != edit.ModeSelection {
		return style.Sequence{style.Text(mask(es.Before).String())},
			style.Sequence{style.Text(mask(es.After).String())}
	}

	t := es.SelText
	mark, cursor := es.Mark, es.SelCursor

	if cursor.Before(mark) {
		// cursor < mark: selection attaches to the "after" side.
		left := mask(t.Sub(t.Left(), cursor))
		selected := mask(t.Sub(cursor, mark))
		tail := mask(t.Sub(mark, t.Right()))
		before = style.Sequence{style.Text(left.String())}
		after = style.Sequence{
			style.Underline(), style.Text(selected.String()), style.Reset(),
			style.Text(tail.String()),
		}
		return before, after
	}

	// cursor >= mark: selection attaches to the "before" side.
	head := mask(t.Sub(t.Left(), mark))
	selected := mask(t.Sub(mark, cursor))
	right := mask(t.Sub(cursor, t.Right()))
	before = style.Sequence{
		style.Text(head.String()), style.Underline(), style.Text(selected.String()), style.Reset(),
	}
	after = style.Sequence{style.Text(right.String())}
	return before, after
}

// BeginningOfLine moves the cursor up n rows to column 0 (spec §4.4's
// beginning_of_line): "\r" for n==0, the terminal's previous-line control
// sequence repeated n times otherwise.
func BeginningOfLine(w io.Writer, n int) {
	if n <= 0 {
		io.WriteString(w, "\r")
		return
	}
	for i := 0; i < n; i++ {
		io.WriteString(w, "\x1b[F")
	}
}

// Draw performs one atomic redraw step (spec §4.4's Draw algorithm) and
// returns the new render state.
func Draw(w io.Writer, cols int, old State, prompt style.Sequence, es edit.State, mask MapText) State {
	if mask == nil {
		mask = Identity
	}
	beforeStyled, afterStyled := styledBuffer(es, mask)

	printedBefore := prepareForDisplay(prompt.Append(style.Reset()).Append(beforeStyled...), cols)
	printedTotal := prepareForDisplay(
		prompt.Append(style.Reset()).Append(beforeStyled...).Append(afterStyled...), cols)

	heightBefore := Height(cols, printedBefore.length)
	length := printedTotal.length

	padCount := old.Length - length
	if padCount < 0 {
		padCount = 0
	}
	erase := printedTotal.seq.Append(style.Text(spaces(padCount)))
	eraseLen := printedTotal.length + padCount

	BeginningOfLine(w, old.HeightBefore)
	io.WriteString(w, style.Render(erase))

	BeginningOfLine(w, Height(cols, eraseLen))
	io.WriteString(w, style.Render(printedBefore.seq))

	if endsWithNewline(es) {
		io.WriteString(w, style.Render(style.Sequence{style.Text("\n")}))
		heightBefore++
	}

	return State{Length: length, HeightBefore: heightBefore}
}

// endsWithNewline implements step 9's glitch workaround: true if the
// grapheme immediately before the caret is a newline.
func endsWithNewline(es edit.State) bool {
	if es.Mode == edit.ModeSelection {
		prev, ok := es.SelCursor.Prev()
		if !ok {
			return false
		}
		g, _ := es.SelText.At(prev.Index())
		return g == "\n"
	}
	g, ok := lastGrapheme(es.Before)
	return ok && g == "\n"
}

// LastDraw performs the final draw on accept/break (spec §4.4's last_draw):
// rewind, write the full input followed by a real newline. No further
// editing occurs after this call.
func LastDraw(w io.Writer, cols int, old State, prompt style.Sequence, all text.Text, mask MapText) {
	if mask == nil {
		mask = Identity
	}
	masked := mask(all)
	printed := prepareForDisplay(prompt.Append(style.Reset()).Append(style.Text(masked.String())), cols)

	BeginningOfLine(w, old.HeightBefore)
	io.WriteString(w, style.Render(printed.seq))
	io.WriteString(w, "\r\n")
}
