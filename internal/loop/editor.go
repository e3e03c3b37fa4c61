package loop

import (
	"lineedit/internal/command"
	"lineedit/internal/edit"
	"lineedit/internal/render"
	"lineedit/internal/style"
	"lineedit/internal/term"
	"lineedit/internal/text"
)

// editorConfig is what distinguishes read_line, read_password, and
// read_keyword: all three share the same draw/read/update cycle (spec
// §4.5's "same loop as read_line") and differ only in whether history and
// Complete are wired up, and what Accept_line does.
type editorConfig struct {
	history       []text.Text
	clip          *edit.Clipboard
	mask          render.MapText
	completer     Completer // nil disables the completion race (Tab is Nop)
	keywordMode   bool
	keywords      []KeywordEntry
	caseSensitive bool
}

// editorResult is what a single read_line/read_password/read_keyword run
// produces.
type editorResult struct {
	text  text.Text
	value any // set only in keyword mode
	err   error
}

// runEditor drives the loop described in spec §4.5: initial draw, then
// read-map-update-redraw until Accept_line or Break, with Clear_screen,
// Refresh, and Complete handled specially by the loop rather than the
// engine.
func runEditor(t term.Terminal, prompt string, cfg editorConfig) editorResult {
	mask := cfg.mask
	if mask == nil {
		mask = render.Identity
	}
	if cfg.clip == nil {
		cfg.clip = edit.Global()
	}

	promptSeq := style.Sequence{style.Text(prompt)}
	es := edit.Init(cfg.history)
	rs := render.Zero
	w := termWriter{t}

	draw := func() {
		rs = render.Draw(w, t.Columns(), rs, promptSeq, es, mask)
	}
	draw()

	var dispatch func(key command.Key) (done bool, result editorResult)
	dispatch = func(key command.Key) (bool, editorResult) {
		cmd := command.Map(key)

		if cmd == command.Complete && !cfg.keywordMode && cfg.completer != nil {
			es = edit.Reset(es)
			outcome := runCompletionRace(t, es, cfg.completer)
			switch {
			case outcome.applyState != nil:
				es = *outcome.applyState
				draw()
			case outcome.possibilities != nil:
				_ = t.Write("\n")
				_ = t.Write(render.LayoutWords(t.Columns(), outcome.possibilities))
				draw()
			}
			if outcome.key.err != nil {
				return true, editorResult{err: outcome.key.err}
			}
			return dispatch(outcome.key.key)
		}

		switch cmd {
		case command.ClearScreen:
			_ = t.ClearScreen()
			rs = render.Zero
			draw()
			return false, editorResult{}

		case command.Refresh:
			draw()
			return false, editorResult{}

		case command.AcceptLine:
			all := edit.AllInput(es)
			if cfg.keywordMode {
				v, ok := lookupKeyword(cfg.keywords, all, cfg.caseSensitive)
				if !ok {
					return false, editorResult{}
				}
				render.LastDraw(w, t.Columns(), rs, promptSeq, all, mask)
				return true, editorResult{text: all, value: v}
			}
			render.LastDraw(w, t.Columns(), rs, promptSeq, all, mask)
			return true, editorResult{text: all}

		case command.Break:
			render.LastDraw(w, t.Columns(), rs, promptSeq, edit.AllInput(es), mask)
			return true, editorResult{err: ErrInterrupt}

		case command.Complete:
			if cfg.keywordMode {
				es = completeKeyword(es, cfg.keywords)
				draw()
			}
			return false, editorResult{}

		default:
			action := edit.Simple(cmd)
			if cmd == command.Char {
				action = edit.CharAction(string(key.Rune))
			}
			prev := es
			es = edit.Update(es, cfg.clip, action)
			if !edit.Equal(prev, es) {
				draw()
			}
			return false, editorResult{}
		}
	}

	for {
		key, err := t.ReadKey()
		if err != nil {
			return editorResult{err: err}
		}
		done, result := dispatch(key)
		if done {
			return result
		}
	}
}
